package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionReset
	ActionPause
	ActionToggleDebug
	ActionNextLevel
	ActionOpenEditor
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionJump:        "jump",
	ActionCrouch:      "crouch",
	ActionReset:       "reset",
	ActionPause:       "pause",
	ActionToggleDebug: "toggle_debug",
	ActionNextLevel:   "next_level",
	ActionOpenEditor:  "open_editor",
	ActionMenuUp:      "menu_up",
	ActionMenuDown:    "menu_down",
	ActionMenuSelect:  "menu_select",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
