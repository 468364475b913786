package systems

import (
	"log"

	"github.com/pixeldojo/shadowboxer/assets"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi/ecs"
)

// sfxVolume is the user-facing volume from the settings menu, applied on
// top of the per-sound multipliers.
var sfxVolume = cfg.Audio.DefaultSFXVol

// SetSFXVolume sets the global effect volume (0..1).
func SetSFXVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	sfxVolume = v
}

// SFXVolume returns the current effect volume.
func SFXVolume() float64 {
	return sfxVolume
}

// UpdateAudio drains the sound queue and starts a player per request.
// Players are fire-and-forget so overlapping effects mix freely.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.SoundQueue.First(e.World)
	if !ok {
		return
	}
	queue := components.SoundQueue.Get(entry)
	if len(queue.Requests) == 0 {
		return
	}

	for _, id := range queue.Requests {
		if sfxVolume <= 0 {
			continue
		}
		player, err := assets.SFXPlayer(id)
		if err != nil {
			log.Printf("audio: %v", err)
			continue
		}
		mult, ok := cfg.Sound.VolumeMultipliers[id]
		if !ok {
			mult = 1.0
		}
		player.SetVolume(sfxVolume * mult)
		player.Play()
	}
	queue.Requests = queue.Requests[:0]
}
