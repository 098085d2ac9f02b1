package components

import (
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Current  *leveldata.Level
	Checksum uint64 // of Current when it was loaded
	Resets   int    // world resets since the level was loaded
}

var Level = donburi.NewComponentType[LevelData]()
