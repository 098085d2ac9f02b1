package components

import (
	"github.com/automoto/blockhop/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Follow  *physics.Camera
	Origin  math.Vec2      // world position of the view's bottom-left corner
	Pending physics.Scroll // applied at the start of the next tick
}

var Camera = donburi.NewComponentType[CameraData]()
