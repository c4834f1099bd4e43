// Package config provides YAML-based arena rules loading and the difficulty
// table for the snake arena.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinBoardSide is the smallest board edge the rules accept.
const MinBoardSide = 8

// Rules contains all tunable parameters of the simulation.
type Rules struct {
	Board        BoardConfig     `yaml:"board"`
	Difficulties DifficultyTable `yaml:"difficulties"`
	Food         FoodConfig      `yaml:"food"`
	PowerUps     PowerUpConfig   `yaml:"power_ups"`
	Obstacles    ObstacleConfig  `yaml:"obstacles"`
	Input        InputConfig     `yaml:"input"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyRule is one row of the tick-interval table.
type DifficultyRule struct {
	IntervalMS    int  `yaml:"interval_ms"`    // Base tick interval in milliseconds
	WallCollision bool `yaml:"wall_collision"` // Default border lethality
}

// Interval returns the base tick interval as a duration.
func (r DifficultyRule) Interval() time.Duration {
	return time.Duration(r.IntervalMS) * time.Millisecond
}

// DifficultyTable maps every difficulty to its rule.
type DifficultyTable struct {
	Easy    DifficultyRule `yaml:"easy"`
	Medium  DifficultyRule `yaml:"medium"`
	Hard    DifficultyRule `yaml:"hard"`
	Extreme DifficultyRule `yaml:"extreme"`
}

// For returns the rule of a difficulty. Unknown values fall back to Easy.
func (t DifficultyTable) For(d Difficulty) DifficultyRule {
	switch d {
	case DifficultyMedium:
		return t.Medium
	case DifficultyHard:
		return t.Hard
	case DifficultyExtreme:
		return t.Extreme
	default:
		return t.Easy
	}
}

// FoodKindConfig defines one food kind.
type FoodKindConfig struct {
	Weight          int     `yaml:"weight"`           // Relative roll weight
	Points          int     `yaml:"points"`           // Score awarded on eat
	LifespanSeconds float64 `yaml:"lifespan_seconds"` // 0 = never expires
}

// FoodConfig defines the food kinds in roll order: normal, bonus, special.
type FoodConfig struct {
	Normal  FoodKindConfig `yaml:"normal"`
	Bonus   FoodKindConfig `yaml:"bonus"`
	Special FoodKindConfig `yaml:"special"`
}

// TotalWeight returns the sum of all roll weights.
func (f FoodConfig) TotalWeight() int {
	return f.Normal.Weight + f.Bonus.Weight + f.Special.Weight
}

// PowerUpConfig defines power-up spawning and effect duration.
type PowerUpConfig struct {
	SpawnChance     float64 `yaml:"spawn_chance"`     // Per-tick probability while none is active
	LifespanSeconds float64 `yaml:"lifespan_seconds"` // Time on board before it vanishes
	DurationTicks   int     `yaml:"duration_ticks"`   // Effect length after pickup
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	Min        int `yaml:"min"`
	Max        int `yaml:"max"`
	SafeRadius int `yaml:"safe_radius"` // Chebyshev radius kept clear around the spawn point
}

// InputConfig defines input buffering.
type InputConfig struct {
	QueueCapacity int `yaml:"queue_capacity"`
}

// Validate checks that the rules describe a playable arena.
func (r Rules) Validate() error {
	var errs []error

	if r.Board.Width < MinBoardSide || r.Board.Height < MinBoardSide {
		errs = append(errs, fmt.Errorf("board %dx%d is smaller than %dx%d",
			r.Board.Width, r.Board.Height, MinBoardSide, MinBoardSide))
	}
	for _, d := range AllDifficulties() {
		if r.Difficulties.For(d).IntervalMS <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %s: interval_ms must be positive", d))
		}
	}
	if r.Food.Normal.Weight < 0 || r.Food.Bonus.Weight < 0 || r.Food.Special.Weight < 0 {
		errs = append(errs, errors.New("food weights must not be negative"))
	} else if r.Food.TotalWeight() <= 0 {
		errs = append(errs, errors.New("food weights must not all be zero"))
	}
	if r.PowerUps.SpawnChance < 0 || r.PowerUps.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("power_ups.spawn_chance %.3f outside [0,1]", r.PowerUps.SpawnChance))
	}
	if r.PowerUps.DurationTicks < 0 {
		errs = append(errs, errors.New("power_ups.duration_ticks must not be negative"))
	}
	if r.Obstacles.Min < 0 || r.Obstacles.Min > r.Obstacles.Max {
		errs = append(errs, fmt.Errorf("obstacles: invalid range [%d,%d]", r.Obstacles.Min, r.Obstacles.Max))
	}
	if r.Input.QueueCapacity <= 0 {
		errs = append(errs, errors.New("input.queue_capacity must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid rules: %w", errors.Join(errs...))
	}
	return nil
}
