package core

import "github.com/yohamta/donburi"

func (w *World) onScrolled(_ donburi.World, ev ScrollEvent) {
	w.stats.Scrolls++
	w.logger.Debug("camera scroll", "dx", ev.Scroll.DX, "dy", ev.Scroll.DY)
}

func (w *World) onBoxBroken(_ donburi.World, ev BoxEvent) {
	w.stats.BoxesBroken++
	w.logger.Debug("box broken", "x", ev.Box.Pos.X, "y", ev.Box.Pos.Y)
}

func (w *World) onActorDied(_ donburi.World, ev DeathEvent) {
	if !ev.Kind.IsPlayer() {
		w.stats.EnemiesRemoved++
	}
	w.logger.Debug("actor died", "kind", ev.Kind, "cause", ev.Cause)
}
