package main

import (
	"github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/fonts"
	"github.com/automoto/blockhop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps a fixed logical canvas; ebiten scales it to the window.
func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// runGame opens the window with the scene built by first.
func runGame(first func(sc scenes.SceneChanger) scenes.Scene) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	g := &Game{}
	g.scene = first(g)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(g)
}
