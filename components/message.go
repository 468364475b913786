package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MessageData is a singleton holding the banner text shown at the top of the
// screen, used for asset load failures and manifest reload notices.
type MessageData struct {
	Text         string
	IsError      bool
	DisplayTimer int // ticks remaining before the fade starts
	Alpha        float64
	FadeTween    *gween.Tween // nil until the fade begins
}

// Show replaces the current banner and resets the fade.
func (m *MessageData) Show(text string, isError bool, displayTicks int) {
	m.Text = text
	m.IsError = isError
	m.DisplayTimer = displayTicks
	m.Alpha = 1
	m.FadeTween = nil
}

// Active reports whether anything should be drawn.
func (m *MessageData) Active() bool {
	return m.Text != "" && m.Alpha > 0
}

var Message = donburi.NewComponentType[MessageData]()
