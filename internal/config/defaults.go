package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultRules returns the built-in arena rules.
func DefaultRules() Rules {
	return Rules{
		Board: BoardConfig{
			Width:  20,
			Height: 10,
		},
		Difficulties: DifficultyTable{
			Easy:    DifficultyRule{IntervalMS: 300, WallCollision: false},
			Medium:  DifficultyRule{IntervalMS: 200, WallCollision: false},
			Hard:    DifficultyRule{IntervalMS: 100, WallCollision: true},
			Extreme: DifficultyRule{IntervalMS: 50, WallCollision: true},
		},
		Food: FoodConfig{
			Normal:  FoodKindConfig{Weight: 70, Points: 1},
			Bonus:   FoodKindConfig{Weight: 20, Points: 3, LifespanSeconds: 5},
			Special: FoodKindConfig{Weight: 10, Points: 2, LifespanSeconds: 7},
		},
		PowerUps: PowerUpConfig{
			SpawnChance:     0.02,
			LifespanSeconds: 10,
			DurationTicks:   20,
		},
		Obstacles: ObstacleConfig{
			Min:        3,
			Max:        10,
			SafeRadius: 3,
		},
		Input: InputConfig{
			QueueCapacity: 3,
		},
	}
}

// DefaultYAML returns the embedded default rules file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
