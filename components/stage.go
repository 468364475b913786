package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// StageData holds the pre-rendered stage background.
type StageData struct {
	Background *ebiten.Image
	Width      int
	Height     int
}

var Stage = donburi.NewComponentType[StageData]()
