package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixeldojo/shadowboxer/config"
	"gopkg.in/yaml.v3"
)

//go:embed fighter.yaml
var manifestFS embed.FS

// ManifestEntry is one animation override in fighter.yaml.
type ManifestEntry struct {
	Frames int     `yaml:"frames"`
	Speed  float32 `yaml:"speed"`
	Loop   bool    `yaml:"loop"`
}

// Manifest is the parsed fighter.yaml.
type Manifest struct {
	Fighter map[string]ManifestEntry `yaml:"fighter"`
}

// ParseManifest decodes and validates manifest YAML. Unknown action names
// and non-positive frame counts are rejected so a bad edit can't wipe the
// animation table.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	known := make(map[string]bool, len(config.StateToFileName))
	for _, name := range config.StateToFileName {
		known[name] = true
	}
	for name, entry := range m.Fighter {
		if !known[name] {
			return nil, fmt.Errorf("manifest: unknown action %q", name)
		}
		if entry.Frames < 1 {
			return nil, fmt.Errorf("manifest: action %q needs at least one frame", name)
		}
		if entry.Speed < 0 {
			return nil, fmt.Errorf("manifest: action %q has negative speed", name)
		}
	}
	return &m, nil
}

// Apply writes the manifest's entries over the animation definition table.
func (m *Manifest) Apply(defs map[config.StateID]config.AnimationDef) {
	byName := make(map[string]config.StateID, len(config.StateToFileName))
	for id, name := range config.StateToFileName {
		byName[name] = id
	}
	for name, entry := range m.Fighter {
		id, ok := byName[name]
		if !ok {
			continue
		}
		defs[id] = config.AnimationDef{
			First: 0,
			Last:  entry.Frames - 1,
			Step:  1,
			Speed: entry.Speed,
			Loop:  entry.Loop,
		}
	}
}

// ManifestDiskPath is where a working-copy manifest overrides the embedded
// one, relative to the working directory.
const ManifestDiskPath = "assets/fighter.yaml"

// LoadManifest reads fighter.yaml, preferring the on-disk copy so edits made
// while developing take effect without re-embedding.
func LoadManifest() (*Manifest, error) {
	if data, err := os.ReadFile(filepath.FromSlash(ManifestDiskPath)); err == nil {
		return ParseManifest(data)
	}
	data, err := manifestFS.ReadFile("fighter.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded manifest: %w", err)
	}
	return ParseManifest(data)
}
