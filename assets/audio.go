package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pixeldojo/shadowboxer/config"
)

//go:embed all:audio
var audioFS embed.FS

// AudioLoader handles loading and caching of sound effects
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM bytes keyed by path
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read audio file %s: %w", path, err)
	}

	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode wav %s: %w", path, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return nil
}

// NewSFXPlayer creates a fresh player for a cached sound effect. Players are
// cheap once the PCM bytes are cached; each call returns an independent
// player so overlapping effects don't cut each other off.
func (l *AudioLoader) NewSFXPlayer(path string) (*audio.Player, error) {
	decoded, ok := l.sfxCache[path]
	if !ok {
		if err := l.PreloadSFX(path); err != nil {
			return nil, err
		}
		decoded = l.sfxCache[path]
	}
	return l.context.NewPlayerFromBytes(decoded), nil
}

var (
	audioContext = audio.NewContext(config.Audio.SampleRate)
	audioLoader  = NewAudioLoader(audioContext)
)

// Context returns the shared audio context.
func Context() *audio.Context {
	return audioContext
}

// PreloadAllSFX warms the cache for every configured sound effect.
func PreloadAllSFX() {
	for id, path := range config.Sound.SFXPaths {
		if err := audioLoader.PreloadSFX(path); err != nil {
			log.Printf("Warning: could not preload sfx %d (%s): %v", id, path, err)
		}
	}
}

// SFXPlayer creates a player for the given sound through the shared loader.
func SFXPlayer(id config.SoundID) (*audio.Player, error) {
	path, ok := config.Sound.SFXPaths[id]
	if !ok {
		return nil, fmt.Errorf("no path configured for sound %d", id)
	}
	return audioLoader.NewSFXPlayer(path)
}
