package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/core"
	"github.com/automoto/blockhop/fonts"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug outlines broad-phase objects and the camera follow box and
// prints the player's flags.
func NewDrawDebug(w *core.World) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateDebug(e).Enabled {
			return
		}

		if space := w.Space(); space != nil {
			for _, obj := range space.Objects() {
				c := cfg.Cyan
				switch {
				case obj.HasTags(tags.ResolvViewport):
					continue
				case obj.HasTags(tags.ResolvBox):
					c = color.RGBA{255, 200, 0, 255}
				case obj.HasTags(tags.ResolvPlatform):
					c = color.RGBA{0, 255, 0, 255}
				}
				r := w.ScreenRect(physics.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H})
				outline(screen, r, c)
			}
		}

		outline(screen, w.ScreenRect(w.Camera().Box()), cfg.Magenta)

		p, ok := w.Player()
		if !ok {
			return
		}
		lines := []string{
			fmt.Sprintf("pos %.0f,%.0f  speed %.2f,%.2f", p.Pos.X, p.Pos.Y, p.Speed.X, p.Speed.Y),
			fmt.Sprintf("ground %t jump %t crouch %t", p.OnGround, p.Jumping, p.Crouched),
			fmt.Sprintf("left %t right %t up %t uncrouch %t", p.CanMoveLeft, p.CanMoveRight, p.CanMoveUp, p.CanUncrouch),
			fmt.Sprintf("origin %.0f,%.0f  tps %.0f", w.Origin().X, w.Origin().Y, ebiten.ActualTPS()),
		}
		face := fonts.Mono.Get()
		y := screen.Bounds().Dy() - 12*len(lines)
		for i, l := range lines {
			text.Draw(screen, l, face, 10, y+12*i, cfg.White)
		}
	}
}

func outline(screen *ebiten.Image, r physics.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
