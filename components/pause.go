package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuExit
	pauseMenuCount
)

// PauseMenuOptions lists the pause menu in display order.
var PauseMenuOptions = [pauseMenuCount]PauseMenuOption{MenuResume, MenuRestart, MenuExit}

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
