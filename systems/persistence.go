package systems

import (
	"encoding/json"
	"log"

	"github.com/pixeldojo/shadowboxer/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume  float64 `json:"sfxVolume"`
	Muted      bool    `json:"muted"`
	ScaleIndex int     `json:"scaleIndex"`
}

var gdataManager *gdata.Manager

// loadedSettings carries saved settings to scenes configured later.
var loadedSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shadowboxer",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result means defaults.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}

	loadedSettings = &settings
	return &settings
}

// SaveSettings writes the current settings menu state to disk.
func SaveSettings(e *ecs.ECS) {
	if gdataManager == nil {
		return
	}

	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		return
	}
	s := components.SettingsMenu.Get(entry)

	saved := SavedSettings{
		SFXVolume:  s.SFXVolume,
		Muted:      s.Muted,
		ScaleIndex: s.ScaleIndex,
	}

	data, err := json.Marshal(&saved)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}
