package leveldata

import (
	"math"
	"sort"
)

// Empty marks a grid cell with nothing in it.
const Empty Kind = '.'

// actorHeight is the number of cells an actor covers in the editor.
const actorHeight = 2

// Grid is the editor's authoring model: a fixed block of cells holding
// geometry, plus actor spawns that each cover two cells vertically.
// Row 0 is the bottom of the level.
type Grid struct {
	W, H int

	cells  []Kind
	actors []Record
}

func NewGrid(w, h int) *Grid {
	g := &Grid{W: w, H: h, cells: make([]Kind, w*h)}
	for i := range g.cells {
		g.cells[i] = Empty
	}
	return g
}

// GridFromLevel expands a level's records into cells. Anything outside the
// grid is dropped.
func GridFromLevel(l *Level, w, h int) *Grid {
	g := NewGrid(w, h)
	for _, r := range l.Records {
		if r.Kind.IsActor() {
			g.Paint(r.Kind, r.X, r.Y)
			continue
		}
		// only the part of the record inside the grid is painted
		x1 := int(math.Min(float64(r.X)+math.Round(r.Width), float64(g.W)))
		y1 := int(math.Min(float64(r.Y)+math.Round(r.Height), float64(g.H)))
		for y := max(r.Y, 0); y < y1; y++ {
			for x := max(r.X, 0); x < x1; x++ {
				g.Paint(r.Kind, x, y)
			}
		}
	}
	return g
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns what occupies a cell.
func (g *Grid) At(x, y int) Kind {
	if !g.inside(x, y) {
		return Empty
	}
	if i := g.actorAt(x, y); i >= 0 {
		return g.actors[i].Kind
	}
	return g.cells[y*g.W+x]
}

func (g *Grid) actorAt(x, y int) int {
	for i, a := range g.actors {
		if a.X == x && y >= a.Y && y < a.Y+actorHeight {
			return i
		}
	}
	return -1
}

func (g *Grid) removeActor(i int) {
	g.actors = append(g.actors[:i], g.actors[i+1:]...)
}

// Paint puts kind at a cell. Actors occupy the cell and the one above it;
// painting the player moves the existing one. It reports whether anything
// changed.
func (g *Grid) Paint(kind Kind, x, y int) bool {
	if !kind.Valid() || !g.inside(x, y) {
		return false
	}

	if !kind.IsActor() {
		if g.At(x, y) == kind {
			return false
		}
		if i := g.actorAt(x, y); i >= 0 {
			g.removeActor(i)
		}
		g.cells[y*g.W+x] = kind
		return true
	}

	if !g.inside(x, y+actorHeight-1) {
		return false
	}
	if kind == KindPlayer {
		for i := len(g.actors) - 1; i >= 0; i-- {
			if g.actors[i].Kind == KindPlayer {
				g.removeActor(i)
			}
		}
	}
	for dy := 0; dy < actorHeight; dy++ {
		g.cells[(y+dy)*g.W+x] = Empty
		if i := g.actorAt(x, y+dy); i >= 0 {
			g.removeActor(i)
		}
	}
	g.actors = append(g.actors, Record{Kind: kind, Width: 1, Height: actorHeight, X: x, Y: y})
	return true
}

// Erase clears a cell, removing a whole actor if one covers it.
func (g *Grid) Erase(x, y int) bool {
	if !g.inside(x, y) {
		return false
	}
	if i := g.actorAt(x, y); i >= 0 {
		g.removeActor(i)
		return true
	}
	if g.cells[y*g.W+x] == Empty {
		return false
	}
	g.cells[y*g.W+x] = Empty
	return true
}

type span struct {
	kind Kind
	x, w int
}

// rowSpans splits one row into runs of the same kind. Boxes stay single.
func (g *Grid) rowSpans(y int) []span {
	var out []span
	for x := 0; x < g.W; {
		k := g.cells[y*g.W+x]
		if k == Empty {
			x++
			continue
		}
		end := x + 1
		if k != KindBox {
			for end < g.W && g.cells[y*g.W+end] == k {
				end++
			}
		}
		out = append(out, span{kind: k, x: x, w: end - x})
		x = end
	}
	return out
}

// Level flattens the grid into records: geometry runs merged across rows
// first, then the actors.
func (g *Grid) Level(name string) *Level {
	var recs []*Record
	open := map[span]*Record{}
	for y := 0; y < g.H; y++ {
		next := map[span]*Record{}
		for _, s := range g.rowSpans(y) {
			if r, ok := open[s]; ok && s.kind != KindBox {
				r.Height++
				next[s] = r
				continue
			}
			r := &Record{Kind: s.kind, Width: float64(s.w), Height: 1, X: s.x, Y: y}
			recs = append(recs, r)
			if s.kind != KindBox {
				next[s] = r
			}
		}
		open = next
	}

	lvl := &Level{Name: name}
	for _, r := range recs {
		lvl.Records = append(lvl.Records, *r)
	}

	actors := append([]Record(nil), g.actors...)
	sort.SliceStable(actors, func(i, j int) bool {
		if actors[i].Kind != actors[j].Kind {
			return actors[i].Kind == KindPlayer
		}
		return false
	})
	players := 0
	for players < len(actors) && actors[players].Kind == KindPlayer {
		players++
	}
	sortRecords(actors[players:])
	lvl.Records = append(lvl.Records, actors...)
	return lvl
}
