package tags

import "github.com/yohamta/donburi"

var (
	Fighter = donburi.NewTag().SetName("Fighter")
	Stage   = donburi.NewTag().SetName("Stage")
	Wall    = donburi.NewTag().SetName("Wall")
)

// Resolv tags for movement bounds
const (
	ResolvSolid   = "solid"
	ResolvFighter = "Fighter"
)
