package events

import (
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi/features/events"
)

// Action is published whenever an input source emits a named action. Sources
// only ever put actions on the bus; consumers decide what the action means.
type Action struct {
	ID     cfg.ActionID
	Source string // "keyboard", "gamepad", "button"
}

var ActionEvent = events.NewEventType[Action]()

// ManifestReloaded is published after the animation manifest has been
// re-applied from disk.
type ManifestReloaded struct {
	Path string
	Err  error
}

var ManifestReloadedEvent = events.NewEventType[ManifestReloaded]()
