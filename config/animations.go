package config

// AnimationDef describes one frame sequence.
type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks to hold each frame
	Loop  bool
}

// FighterAnimations maps each fighter state to its frame sequence definition.
// The defaults match the frame counts shipped under assets/images/fighter/;
// assets/fighter.yaml can override them at load time.
var FighterAnimations = map[StateID]AnimationDef{
	Idle:     {First: 0, Last: 5, Step: 1, Speed: 8, Loop: true},
	Punch:    {First: 0, Last: 5, Step: 1, Speed: 4, Loop: false},
	Kick:     {First: 0, Last: 7, Step: 1, Speed: 4, Loop: false},
	Forward:  {First: 0, Last: 5, Step: 1, Speed: 6, Loop: true},
	Backward: {First: 0, Last: 5, Step: 1, Speed: 6, Loop: true},
	Block:    {First: 0, Last: 3, Step: 1, Speed: 3, Loop: false},
}
