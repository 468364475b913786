package components

import "github.com/yohamta/donburi"

// MainMenuOption represents items on the title menu
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuSettings
	MainMenuExit
)

// MenuData stores the title menu selection
type MenuData struct {
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
