package components

import (
	"github.com/yohamta/donburi"
)

// Vector is a simple 2D vector for facing direction.
type Vector struct {
	X, Y float64
}

type FighterData struct {
	Direction Vector // X is -1 (facing left) or +1 (facing right)
	WalkSpeed float64
}

var Fighter = donburi.NewComponentType[FighterData]()
