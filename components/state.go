package components

import (
	"github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type PunchingState struct{}
type KickingState struct{}
type WalkingForwardState struct{}
type WalkingBackwardState struct{}
type BlockingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Punching = donburi.NewComponentType[PunchingState]()
var Kicking = donburi.NewComponentType[KickingState]()
var WalkingForward = donburi.NewComponentType[WalkingForwardState]()
var WalkingBackward = donburi.NewComponentType[WalkingBackwardState]()
var Blocking = donburi.NewComponentType[BlockingState]()
