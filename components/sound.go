package components

import (
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
)

// SoundQueueData collects sound requests raised during the tick; the audio
// system drains it. Gameplay systems never touch the audio context directly.
type SoundQueueData struct {
	Requests []cfg.SoundID
	Volume   float64
}

// Push queues a sound for playback this tick.
func (s *SoundQueueData) Push(id cfg.SoundID) {
	s.Requests = append(s.Requests, id)
}

var SoundQueue = donburi.NewComponentType[SoundQueueData]()
