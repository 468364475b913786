package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Movement
	WalkSpeed float64

	// Action queue
	QueueCap int

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int

	// Spawn position relative to stage floor
	SpawnX  float64
	FloorY  float64
	ScaleX  float64
	ScaleY  float64
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin     int
	LineHeight int
	TextColor  color.RGBA
	DimColor   color.RGBA
	QueueColor color.RGBA
}

// MessageConfig contains banner message configuration
type MessageConfig struct {
	DisplayTicks int // ticks at full alpha before fading
	FadeSeconds  float32
	BoxColor     color.RGBA
	TextColor    color.RGBA
	ErrorColor   color.RGBA
	TopMargin    float64
	BoxPadding   float64
}

// StageConfig describes the Tiled stage map.
type StageConfig struct {
	MapPath  string
	TileSize int
	// Walkable x range for the fighter, in pixels.
	LeftWall  float64
	RightWall float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to the demo
	Overlay       bool // Draw the debug overlay
	WatchManifest bool // Hot-reload assets/fighter.yaml on change
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var HUD HUDConfig
var Message MessageConfig
var Stage StageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "shadowboxer",
	}

	Fighter = FighterConfig{
		WalkSpeed:       1.5,
		QueueCap:        3,
		FrameWidth:      96,
		FrameHeight:     96,
		CollisionWidth:  40,
		CollisionHeight: 88,
		SpawnX:          320,
		FloorY:          312,
		ScaleX:          1,
		ScaleY:          1,
	}

	HUD = HUDConfig{
		Margin:     10,
		LineHeight: 14,
		TextColor:  White,
		DimColor:   color.RGBA{R: 160, G: 160, B: 160, A: 255},
		QueueColor: Yellow,
	}

	Message = MessageConfig{
		DisplayTicks: 180, // 3 seconds at 60 TPS
		FadeSeconds:  0.75,
		BoxColor:     color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:    White,
		ErrorColor:   LightRed,
		TopMargin:    30.0,
		BoxPadding:   8.0,
	}

	Stage = StageConfig{
		MapPath:   "stage/stage.tmx",
		TileSize:  32,
		LeftWall:  16,
		RightWall: 624,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:      false,
		Overlay:       false,
		WatchManifest: false,
	}
}
