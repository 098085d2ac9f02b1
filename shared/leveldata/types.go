// Package leveldata reads and writes level layouts: the plain-text record
// format, the editor's cell grid and Tiled TMX imports. It has no
// dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import (
	"errors"
	"sort"

	"github.com/zeebo/xxh3"
)

// ErrNoLevels is returned when a directory holds no level files.
var ErrNoLevels = errors.New("no levels found")

// Kind is the single-letter type of a level record.
type Kind byte

const (
	KindGround   Kind = 'g'
	KindPlatform Kind = 'p'
	KindBox      Kind = 'b'
	KindPlayer   Kind = 'P'
	KindEnemy    Kind = 'E'
)

// Valid reports whether k is one of the known record types.
func (k Kind) Valid() bool {
	switch k {
	case KindGround, KindPlatform, KindBox, KindPlayer, KindEnemy:
		return true
	}
	return false
}

// IsActor reports whether k spawns an actor rather than geometry.
func (k Kind) IsActor() bool { return k == KindPlayer || k == KindEnemy }

func (k Kind) String() string { return string(rune(k)) }

// Record is one line of a level file. Width and Height are in tiles, X and
// Y are tile coordinates of the bottom-left corner.
type Record struct {
	Kind   Kind
	Width  float64
	Height float64
	X, Y   int
}

// Level is a parsed level file.
type Level struct {
	Name    string
	Records []Record
	Skipped int // lines dropped by the parser
}

// Player returns the player spawn. Later records override earlier ones.
func (l *Level) Player() (Record, bool) {
	var (
		rec Record
		ok  bool
	)
	for _, r := range l.Records {
		if r.Kind == KindPlayer {
			rec, ok = r, true
		}
	}
	return rec, ok
}

// Count returns how many records of kind k the level holds.
func (l *Level) Count(k Kind) int {
	n := 0
	for _, r := range l.Records {
		if r.Kind == k {
			n++
		}
	}
	return n
}

// Bounds returns the level extent in tiles.
func (l *Level) Bounds() (w, h int) {
	for _, r := range l.Records {
		if x := r.X + int(r.Width+0.5); x > w {
			w = x
		}
		if y := r.Y + int(r.Height+0.5); y > h {
			h = y
		}
	}
	return w, h
}

// Checksum hashes the encoded records. Two levels that write the same file
// have the same checksum.
func (l *Level) Checksum() uint64 {
	return xxh3.Hash(Encode(l))
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	out := *l
	out.Records = append([]Record(nil), l.Records...)
	return &out
}

// sortRecords orders records by row then column.
func sortRecords(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Y != recs[j].Y {
			return recs[i].Y < recs[j].Y
		}
		return recs[i].X < recs[j].X
	})
}
