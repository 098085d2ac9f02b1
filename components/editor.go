package components

import (
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// EditorData is the state of an open level in the editor.
type EditorData struct {
	Grid    *leveldata.Grid
	Tool    leveldata.Kind // leveldata.Empty erases
	ViewX   int            // leftmost visible column
	ViewY   int            // bottom visible row
	Path    string         // file being edited, empty for a new level
	Name    string
	Saved   uint64 // checksum of the grid at the last load or save
	Current uint64 // checksum after the last edit
	Status  string
	Cells   *resolv.Space // one resolv cell per grid cell, for mouse hit tests
}

var Editor = donburi.NewComponentType[EditorData]()

// Dirty reports unsaved edits.
func (e *EditorData) Dirty() bool { return e.Current != e.Saved }
