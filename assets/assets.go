package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pixeldojo/shadowboxer/config"
)

//go:embed all:images
var imageFS embed.FS

// FrameLoader loads per-frame PNG sequences and caches each decoded frame by
// its path so no frame is decoded more than once per process.
type FrameLoader struct {
	cache map[string]*ebiten.Image
}

func NewFrameLoader() *FrameLoader {
	return &FrameLoader{cache: make(map[string]*ebiten.Image)}
}

var frameLoader = NewFrameLoader()

// LoadImage loads a single embedded PNG, caching the decoded image by path.
func (l *FrameLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}
	data, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	l.cache[path] = img
	return img, nil
}

// CacheSize returns the number of decoded frames held by the loader.
func (l *FrameLoader) CacheSize() int {
	return len(l.cache)
}

// LoadFighterFrames loads the PNG frame sequence for one fighter state from
// assets/images/fighter/<state>/<state>_NN.png, in filename order.
func (l *FrameLoader) LoadFighterFrames(state config.StateID) ([]*ebiten.Image, error) {
	name, ok := config.StateToFileName[state]
	if !ok {
		return nil, fmt.Errorf("no frame directory for state %d", state)
	}
	dir := fmt.Sprintf("images/fighter/%s", name)
	entries, err := imageFS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frame directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, dir+"/"+e.Name())
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no frames in %s", dir)
	}

	frames := make([]*ebiten.Image, 0, len(paths))
	for _, p := range paths {
		img, err := l.LoadImage(p)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// FighterFrames loads a fighter state's frame sequence through the shared loader.
func FighterFrames(state config.StateID) ([]*ebiten.Image, error) {
	return frameLoader.LoadFighterFrames(state)
}

// FrameCacheSize reports the shared loader's cache size for the debug overlay.
func FrameCacheSize() int {
	return frameLoader.CacheSize()
}

// PlaceholderFrames builds flat-color stand-in frames so the demo keeps
// running when a sequence fails to load.
func PlaceholderFrames(state config.StateID, count int) []*ebiten.Image {
	if count < 1 {
		count = 1
	}
	base := color.RGBA{R: 180, G: 40, B: 180, A: 255}
	frames := make([]*ebiten.Image, count)
	for i := range frames {
		img := ebiten.NewImage(config.Fighter.FrameWidth, config.Fighter.FrameHeight)
		shade := base
		// vary brightness per frame so playback is still visible
		shade.R -= uint8(i * 12 % 60)
		shade.B -= uint8(i * 12 % 60)
		img.Fill(shade)
		frames[i] = img
	}
	return frames
}
