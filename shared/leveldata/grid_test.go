package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridMergesRuns(t *testing.T) {
	g := NewGrid(8, 4)
	for x := 0; x < 2; x++ {
		g.Paint(KindGround, x, 0)
		g.Paint(KindGround, x, 1)
	}
	g.Paint(KindPlatform, 2, 0)
	g.Paint(KindPlatform, 3, 0)

	lvl := g.Level("merged")
	assert.Equal(t, "merged", lvl.Name)
	assert.Equal(t, []Record{
		{Kind: KindGround, Width: 2, Height: 2, X: 0, Y: 0},
		{Kind: KindPlatform, Width: 2, Height: 1, X: 2, Y: 0},
	}, lvl.Records)
}

func TestGridKeepsDifferentWidthsApart(t *testing.T) {
	g := NewGrid(8, 4)
	for x := 0; x < 3; x++ {
		g.Paint(KindGround, x, 0)
	}
	for x := 0; x < 2; x++ {
		g.Paint(KindGround, x, 1)
	}

	assert.Equal(t, []Record{
		{Kind: KindGround, Width: 3, Height: 1, X: 0, Y: 0},
		{Kind: KindGround, Width: 2, Height: 1, X: 0, Y: 1},
	}, g.Level("").Records)
}

func TestGridNeverMergesBoxes(t *testing.T) {
	g := NewGrid(4, 4)
	g.Paint(KindBox, 0, 2)
	g.Paint(KindBox, 1, 2)
	g.Paint(KindBox, 0, 3)

	recs := g.Level("").Records
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Equal(t, 1.0, r.Width)
		assert.Equal(t, 1.0, r.Height)
	}
}

func TestGridSinglePlayer(t *testing.T) {
	g := NewGrid(10, 5)
	assert.True(t, g.Paint(KindPlayer, 1, 1))
	assert.True(t, g.Paint(KindPlayer, 4, 2))
	assert.False(t, g.Paint(KindPlayer, 5, 4), "needs room for two cells")

	assert.Equal(t, KindPlayer, g.At(4, 2))
	assert.Equal(t, KindPlayer, g.At(4, 3))
	assert.Equal(t, Empty, g.At(1, 1))

	lvl := g.Level("")
	assert.Equal(t, []Record{{Kind: KindPlayer, Width: 1, Height: 2, X: 4, Y: 2}}, lvl.Records)
}

func TestGridActorsReplaceCells(t *testing.T) {
	g := NewGrid(6, 6)
	g.Paint(KindGround, 2, 2)
	g.Paint(KindEnemy, 2, 1)
	assert.Equal(t, KindEnemy, g.At(2, 2))

	g.Paint(KindBox, 2, 2)
	assert.Equal(t, KindBox, g.At(2, 2))
	assert.Equal(t, Empty, g.At(2, 1), "painting over an actor removes it")
}

func TestGridErase(t *testing.T) {
	g := NewGrid(6, 6)
	g.Paint(KindGround, 0, 0)
	g.Paint(KindEnemy, 3, 0)
	g.Paint(KindEnemy, 4, 0)

	assert.True(t, g.Erase(3, 1))
	assert.True(t, g.Erase(0, 0))
	assert.False(t, g.Erase(0, 0))
	assert.False(t, g.Erase(9, 9))

	assert.Equal(t, []Record{{Kind: KindEnemy, Width: 1, Height: 2, X: 4, Y: 0}}, g.Level("").Records)
}

func TestGridOrdersActors(t *testing.T) {
	g := NewGrid(10, 10)
	g.Paint(KindEnemy, 7, 3)
	g.Paint(KindEnemy, 2, 3)
	g.Paint(KindPlayer, 5, 5)
	g.Paint(KindEnemy, 9, 0)

	recs := g.Level("").Records
	require.Len(t, recs, 4)
	assert.Equal(t, KindPlayer, recs[0].Kind)
	assert.Equal(t, 9, recs[1].X)
	assert.Equal(t, 2, recs[2].X)
	assert.Equal(t, 7, recs[3].X)
}

func TestGridFromLevel(t *testing.T) {
	lvl, err := ParseString("g 10 1 0 0\nP 1 2 2 5\n")
	require.NoError(t, err)

	g := GridFromLevel(lvl, 20, 10)
	assert.Equal(t, KindGround, g.At(9, 0))
	assert.Equal(t, Empty, g.At(10, 0))
	assert.Equal(t, KindPlayer, g.At(2, 6))

	assert.Equal(t, lvl.Records, g.Level("").Records)
}

func TestGridFromLevelClipsToGrid(t *testing.T) {
	lvl, err := ParseString("g 5 1 -2 0\ng 1000000000 1 20000000 0\ng 30 1 15 3\n")
	require.NoError(t, err)

	g := GridFromLevel(lvl, 20, 10)
	assert.Equal(t, []Record{
		{Kind: KindGround, Width: 3, Height: 1, X: 0, Y: 0},
		{Kind: KindGround, Width: 5, Height: 1, X: 15, Y: 3},
	}, g.Level("").Records)
}
