package systems

import (
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton Debug component, seeded from the
// config on first use.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Enabled})
	}
	return components.Debug.Get(entry)
}

// UpdateDebugToggle flips the debug overlay on F1.
func UpdateDebugToggle(e *ecs.ECS) {
	if GetInput(e).JustPressed(cfg.ActionToggleDebug) {
		d := GetOrCreateDebug(e)
		d.Enabled = !d.Enabled
	}
}
