package systems

import (
	"image/color"

	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/core"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/automoto/blockhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const groundTopStrip = 4 // pixels of grass on ground blocks

// NewDrawLevel renders the sky and every on-screen block.
func NewDrawLevel(w *core.World) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Sky)

		tile := w.Settings().Tile
		lifts := bumpOffsets(e.World)
		components.Static.Each(e.World, func(entry *donburi.Entry) {
			s := components.Static.Get(entry)
			if !s.OnScreen {
				return
			}
			r := w.ScreenRect(s.Rect(tile))
			r.Y -= lifts[entry]
			drawStatic(screen, s.StaticObject, r)
		})
	}
}

func drawStatic(screen *ebiten.Image, s *physics.StaticObject, r physics.Rect) {
	x, y, width, height := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	switch s.Kind {
	case physics.StaticGround:
		vector.FillRect(screen, x, y, width, height, cfg.GroundBrown, false)
		vector.FillRect(screen, x, y, width, groundTopStrip, cfg.GroundTop, false)
	case physics.StaticPlatform:
		vector.FillRect(screen, x, y, width, height, cfg.Platform, false)
	case physics.StaticBox:
		c := cfg.BoxYellow
		if s.Broken() {
			c = cfg.BoxBroken
		}
		vector.FillRect(screen, x, y, width, height, c, false)
		vector.StrokeRect(screen, x+1, y+1, width-2, height-2, 2, cfg.Black, false)
	}
}

// NewDrawActors renders the player and the enemies that are on screen.
func NewDrawActors(w *core.World) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
			drawActor(screen, w, entry, cfg.EnemyRed)
		})
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			drawActor(screen, w, entry, cfg.PlayerBlue)
		})
	}
}

func drawActor(screen *ebiten.Image, w *core.World, entry *donburi.Entry, c color.RGBA) {
	a := components.Actor.Get(entry)
	if !a.OnScreen {
		return
	}
	if f := components.Flash.Get(entry); f.Duration > 0 && (f.Duration/4)%2 == 0 {
		c = cfg.White
	}
	r := w.ScreenRect(a.Rect(w.Settings().Tile))
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)

	// eye on the facing side
	eyeX := r.X + r.W*0.6
	if a.Horizontal == physics.DirectionLeft {
		eyeX = r.X + r.W*0.2
	}
	vector.FillRect(screen, float32(eyeX), float32(r.Y+r.H*0.2), float32(r.W*0.2), float32(r.H*0.1), cfg.White, false)
}
