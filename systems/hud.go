package systems

import (
	"fmt"

	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/core"
	"github.com/automoto/blockhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudPipSize    = 12
	hudPipSpacing = 4
)

// NewDrawHUD renders the level name and the player's remaining life.
func NewDrawHUD(w *core.World) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.Regular.Get()
		name := "-"
		if l := w.Level(); l != nil {
			name = l.Name
		}
		text.Draw(screen, name, face, hudMargin, hudMargin+14, cfg.White)

		p, ok := w.Player()
		if !ok {
			return
		}
		y := float32(hudMargin + 22)
		for i := 0; i < p.Life; i++ {
			x := float32(hudMargin + i*(hudPipSize+hudPipSpacing))
			vector.FillRect(screen, x, y, hudPipSize, hudPipSize, cfg.EnemyRed, false)
		}

		stats := w.Stats()
		line := fmt.Sprintf("resets %d  boxes %d", stats.Resets, stats.BoxesBroken)
		text.Draw(screen, line, fonts.Small.Get(), hudMargin, int(y)+hudPipSize+14, cfg.White)
	}
}
