package assets

import (
	"testing"

	"github.com/pixeldojo/shadowboxer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	data := []byte(`
fighter:
  idle:
    frames: 6
    speed: 8
    loop: true
  punch:
    frames: 4
    speed: 3
`)
	m, err := ParseManifest(data)
	require.NoError(t, err)
	require.Len(t, m.Fighter, 2)

	assert.Equal(t, 6, m.Fighter["idle"].Frames)
	assert.True(t, m.Fighter["idle"].Loop)
	assert.Equal(t, float32(3), m.Fighter["punch"].Speed)
	assert.False(t, m.Fighter["punch"].Loop)
}

func TestParseManifestRejectsUnknownAction(t *testing.T) {
	_, err := ParseManifest([]byte("fighter:\n  uppercut:\n    frames: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercut")
}

func TestParseManifestRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero_frames", "fighter:\n  kick:\n    frames: 0\n"},
		{"negative_speed", "fighter:\n  kick:\n    frames: 4\n    speed: -1\n"},
		{"not_yaml", "fighter: [what"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestManifestApplyOverridesTable(t *testing.T) {
	m, err := ParseManifest([]byte("fighter:\n  kick:\n    frames: 10\n    speed: 2\n    loop: true\n"))
	require.NoError(t, err)

	defs := map[config.StateID]config.AnimationDef{
		config.Kick: {First: 0, Last: 7, Step: 1, Speed: 4, Loop: false},
		config.Idle: {First: 0, Last: 5, Step: 1, Speed: 8, Loop: true},
	}
	m.Apply(defs)

	assert.Equal(t, config.AnimationDef{First: 0, Last: 9, Step: 1, Speed: 2, Loop: true}, defs[config.Kick])
	// Untouched states keep their definitions.
	assert.Equal(t, 5, defs[config.Idle].Last)
}

func TestEmbeddedManifestIsValid(t *testing.T) {
	data, err := manifestFS.ReadFile("fighter.yaml")
	require.NoError(t, err)

	m, err := ParseManifest(data)
	require.NoError(t, err)
	assert.NotEmpty(t, m.Fighter)
}
