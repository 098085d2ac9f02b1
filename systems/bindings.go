package systems

import (
	cfg "github.com/automoto/blockhop/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding maps an action to physical inputs
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings is the global input mapping
var Bindings map[cfg.ActionID]InputBinding

// AnalogDeadzone for the left stick (0.0 to 1.0)
var AnalogDeadzone = 0.25

func init() {
	Bindings = map[cfg.ActionID]InputBinding{
		cfg.ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			// D-pad Left (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		cfg.ActionMoveRight: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		cfg.ActionJump: {
			Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeySpace, ebiten.KeyUp},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		cfg.ActionCrouch: {
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		cfg.ActionReset: {
			Keys: []ebiten.Key{ebiten.KeyR},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		cfg.ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		cfg.ActionToggleDebug: {
			Keys: []ebiten.Key{ebiten.KeyF1},
		},
		cfg.ActionNextLevel: {
			Keys: []ebiten.Key{ebiten.KeyN},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonFrontTopRight,
			},
		},
		cfg.ActionOpenEditor: {
			Keys: []ebiten.Key{ebiten.KeyE},
		},
		cfg.ActionMenuUp: {
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		cfg.ActionMenuDown: {
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		cfg.ActionMenuSelect: {
			Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
	}
}
