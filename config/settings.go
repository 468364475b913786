package config

// WindowScale represents a window size multiplier option
type WindowScale struct {
	Factor int
	Label  string
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	WindowScales      []WindowScale
	DefaultScaleIndex int
	VolumeSteps       []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		WindowScales: []WindowScale{
			{Factor: 1, Label: "640 x 360"},
			{Factor: 2, Label: "1280 x 720"},
			{Factor: 3, Label: "1920 x 1080"},
		},
		DefaultScaleIndex: 1,
		VolumeSteps:       []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
