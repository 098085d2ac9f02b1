package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// kindByName maps Tiled layer names and object classes to record kinds.
func kindByName(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ground", "g":
		return KindGround, true
	case "platform", "p":
		return KindPlatform, true
	case "box", "b":
		return KindBox, true
	case "player", "playerspawn":
		return KindPlayer, true
	case "enemy", "enemyspawn":
		return KindEnemy, true
	}
	return 0, false
}

// LoadTMX converts a Tiled map into a level. Tile layers named ground,
// platform or box become geometry; objects whose class (or type) names a
// kind become records of their own. Tiled counts rows from the top, so y is
// flipped to count from the bottom.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth == 0 || levelMap.TileHeight == 0 {
		return nil, fmt.Errorf("load TMX %s: zero tile size", tmxPath)
	}

	name := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	grid := NewGrid(levelMap.Width, levelMap.Height)
	for _, layer := range levelMap.Layers {
		kind, ok := kindByName(layer.Name)
		if !ok || kind.IsActor() {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
					continue
				}
				grid.Paint(kind, x, levelMap.Height-1-y)
			}
		}
	}
	lvl := grid.Level(name)

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // older maps use type=
			}
			kind, ok := kindByName(class)
			if !ok {
				kind, ok = kindByName(og.Name)
			}
			if !ok {
				continue
			}

			w, h := o.Width/tileW, o.Height/tileH
			if kind.IsActor() && (w == 0 || h == 0) {
				w, h = 1, actorHeight
			}
			if w <= 0 || h <= 0 {
				continue
			}
			lvl.Records = append(lvl.Records, Record{
				Kind:   kind,
				Width:  w,
				Height: h,
				X:      int(math.Round(o.X / tileW)),
				Y:      levelMap.Height - int(math.Round((o.Y+o.Height)/tileH)),
			})
		}
	}
	return lvl, nil
}
