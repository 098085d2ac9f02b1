package systems

import (
	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/shared/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE the world update in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetInput(ecs)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right, down := getAnalogStickState(gamepadIDs)
	if left {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
	}
	if down {
		input.Current[cfg.ActionCrouch] = true
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(ids []ebiten.GamepadID) (left, right, down bool) {
	for _, gpID := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || x < -AnalogDeadzone
		right = right || x > AnalogDeadzone
		down = down || y > AnalogDeadzone
	}
	return left, right, down
}

// GetInput returns the singleton input component, creating it on first use.
func GetInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// PhysicsInput maps the held actions onto one simulation tick. Reset fires
// on the press only.
func PhysicsInput(input *components.InputData) physics.Input {
	return physics.Input{
		Left:   input.Pressed(cfg.ActionMoveLeft),
		Right:  input.Pressed(cfg.ActionMoveRight),
		Jump:   input.Pressed(cfg.ActionJump),
		Crouch: input.Pressed(cfg.ActionCrouch),
		Reset:  input.JustPressed(cfg.ActionReset),
	}
}
