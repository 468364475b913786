package config

import "github.com/yohamta/donburi/ecs"

// ECS render layers.
const (
	Default ecs.LayerID = iota
)
