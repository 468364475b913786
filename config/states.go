package config

// StateID identifies a fighter state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Fighter animation states
	Idle StateID = iota
	Punch
	Kick
	Forward
	Backward
	Block
)

// AllStates lists every fighter state in HUD/menu order.
var AllStates = []StateID{Idle, Punch, Kick, Forward, Backward, Block}

// StateToFileName maps StateID to the frame-sequence directory name under
// assets/images/fighter/.
var StateToFileName = map[StateID]string{
	Idle:     "idle",
	Punch:    "punch",
	Kick:     "kick",
	Forward:  "forward",
	Backward: "backward",
	Block:    "block",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}
