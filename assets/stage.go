package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/pixeldojo/shadowboxer/config"
)

//go:embed all:stage
var stageFS embed.FS

// Stage is the pre-rendered background for the demo.
type Stage struct {
	Background *ebiten.Image
	Width      int
	Height     int
}

// LoadStage loads the Tiled stage map and renders its tile layers into a
// single background image.
func LoadStage() (*Stage, error) {
	stageMap, err := tiled.LoadFile(config.Stage.MapPath, tiled.WithFileSystem(stageFS))
	if err != nil {
		return nil, fmt.Errorf("load stage map %s: %w", config.Stage.MapPath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(stageMap, stageFS)
	if err != nil {
		return nil, fmt.Errorf("create stage renderer: %w", err)
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("render stage layers: %w", err)
	}

	return &Stage{
		Background: ebiten.NewImageFromImage(renderer.Result),
		Width:      stageMap.Width * stageMap.TileWidth,
		Height:     stageMap.Height * stageMap.TileHeight,
	}, nil
}
