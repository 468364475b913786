package factory

import (
	"github.com/pixeldojo/shadowboxer/archetypes"
	"github.com/pixeldojo/shadowboxer/assets"
	"github.com/pixeldojo/shadowboxer/components"
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage loads the tile map, spawns the background entity and the two
// boundary walls.
func CreateStage(ecs *ecs.ECS) (*donburi.Entry, error) {
	entry := archetypes.Stage.Spawn(ecs)

	stage, err := assets.LoadStage()
	if err != nil {
		components.Stage.SetValue(entry, components.StageData{
			Width:  cfg.C.Width,
			Height: cfg.C.Height,
		})
		createBoundaryWalls(ecs)
		return entry, err
	}

	components.Stage.SetValue(entry, components.StageData{
		Background: stage.Background,
		Width:      stage.Width,
		Height:     stage.Height,
	})
	createBoundaryWalls(ecs)
	return entry, nil
}

func createBoundaryWalls(ecs *ecs.ECS) {
	height := float64(cfg.C.Height)
	CreateWall(ecs, cfg.Stage.LeftWall-32, 0, 32, height)
	CreateWall(ecs, cfg.Stage.RightWall, 0, 32, height)
}
