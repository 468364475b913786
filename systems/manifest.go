package systems

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/pixeldojo/shadowboxer/assets"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/pixeldojo/shadowboxer/events"
	"github.com/pixeldojo/shadowboxer/systems/factory"
	"github.com/pixeldojo/shadowboxer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var manifestWatcher *assets.Watcher

// StartManifestWatch begins watching the on-disk animation manifest. A failed
// start is logged and hot reload simply stays off.
func StartManifestWatch() {
	if manifestWatcher != nil {
		return
	}
	dir := filepath.Dir(filepath.FromSlash(assets.ManifestDiskPath))
	w, err := assets.NewWatcher(dir)
	if err != nil {
		log.Printf("manifest watch: %v", err)
		return
	}
	manifestWatcher = w
}

// StopManifestWatch shuts the watcher down.
func StopManifestWatch() {
	if manifestWatcher == nil {
		return
	}
	_ = manifestWatcher.Close()
	manifestWatcher = nil
}

// UpdateManifest drains watcher events and re-applies the manifest. A bad
// edit keeps the previous animation table and reports the error on the
// banner instead.
func UpdateManifest(e *ecs.ECS) {
	if manifestWatcher == nil {
		return
	}

	reload := false
	for {
		select {
		case <-manifestWatcher.Events:
			reload = true
		case err := <-manifestWatcher.Errors:
			log.Printf("manifest watch: %v", err)
		default:
			if reload {
				applyManifest(e)
			}
			return
		}
	}
}

func applyManifest(e *ecs.ECS) {
	m, err := assets.LoadManifest()
	if err != nil {
		// Keep the previous animation table; just report the bad edit.
		events.ManifestReloadedEvent.Publish(e.World, events.ManifestReloaded{Path: assets.ManifestDiskPath, Err: err})
		return
	}

	m.Apply(cfg.FighterAnimations)
	rebuildFighterAnimations(e)
	events.ManifestReloadedEvent.Publish(e.World, events.ManifestReloaded{Path: assets.ManifestDiskPath})
}

// SubscribeManifest surfaces manifest reload results on the banner.
func SubscribeManifest(w donburi.World) {
	events.ManifestReloadedEvent.Subscribe(w, func(w donburi.World, m events.ManifestReloaded) {
		if m.Err != nil {
			ShowMessage(w, fmt.Sprintf("manifest error: %v", m.Err), true)
			return
		}
		ShowMessage(w, "animations reloaded", false)
	})
}

// rebuildFighterAnimations regenerates the fighter's animation table from the
// updated definitions, restarting the current state's animation.
func rebuildFighterAnimations(e *ecs.ECS) {
	entry, ok := tags.Fighter.First(e.World)
	if !ok {
		return
	}
	state := components.State.Get(entry)

	animData, errs := factory.GenerateAnimations()
	for _, err := range errs {
		log.Printf("reload frames: %v", err)
	}
	animData.CurrentState = state.CurrentState
	animData.CurrentAnimation = animData.Animations[state.CurrentState]
	if animData.CurrentAnimation != nil {
		animData.CurrentAnimation.Restart()
	}
	components.Animation.Set(entry, animData)
}
