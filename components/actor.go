package components

import (
	"github.com/automoto/blockhop/shared/physics"
	"github.com/yohamta/donburi"
)

// ActorData wraps the simulated body of the player or an enemy.
type ActorData struct {
	*physics.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
