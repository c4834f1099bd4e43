// Package arena implements the snake simulation engine: the authoritative
// game state, the per-tick update, entity placement and the episode state
// machine. It performs no I/O, never reads the clock and never blocks;
// front-ends feed it direction commands and read snapshots.
package arena

import "github.com/vovakirdan/snake-arena/internal/core"

// Position is a cell on the board.
type Position = core.Point

// Direction represents the snake's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit step of the direction. Y grows downwards.
func (d Direction) Vector() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	default:
		return Position{X: 1, Y: 0}
	}
}

// Opposite returns the 180° reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// State is the episode state machine position.
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause names the lethal collision that ended an episode.
type DeathCause string

const (
	CauseNone DeathCause = ""
	// CauseWallCollision is a move off the board while wall collision is on.
	CauseWallCollision DeathCause = "wall-collision"
	// CauseSelfCollision is a move onto the snake's own body.
	CauseSelfCollision DeathCause = "self-collision"
	// CauseObstacleCollision is a move onto an obstacle.
	CauseObstacleCollision DeathCause = "obstacle-collision"
)

// FoodKind represents the food variants.
type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
	FoodSpecial
)

func (k FoodKind) String() string {
	switch k {
	case FoodNormal:
		return "normal"
	case FoodBonus:
		return "bonus"
	case FoodSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Food is the single active food item.
type Food struct {
	Position  Position
	Kind      FoodKind
	Points    int
	SpawnTick uint64
	ExpiresAt uint64 // 0 = never
	Active    bool   // False only when no free cell was left to place it
}

// Expired reports whether the food outlived its lifespan at the given tick.
func (f Food) Expired(tick uint64) bool {
	return f.Active && f.ExpiresAt > 0 && tick > f.ExpiresAt
}

// PowerUpKind represents the power-up variants.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpInvincible
	PowerUpDoubleScore
	powerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpInvincible:
		return "invincible"
	case PowerUpDoubleScore:
		return "double_score"
	default:
		return "unknown"
	}
}

// Label returns the HUD name of the effect.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerUpSpeed:
		return "Speed Boost"
	case PowerUpInvincible:
		return "Invincible"
	case PowerUpDoubleScore:
		return "Double Score"
	default:
		return "?"
	}
}

// PowerUp is the (at most one) power-up lying on the board.
type PowerUp struct {
	Position  Position
	Kind      PowerUpKind
	SpawnTick uint64
	ExpiresAt uint64
	Active    bool
}

// Timers holds the remaining ticks of each power-up effect.
type Timers struct {
	SpeedBoost  int
	Invincible  int
	DoubleScore int
}

// Get returns the remaining ticks of an effect.
func (t Timers) Get(k PowerUpKind) int {
	switch k {
	case PowerUpSpeed:
		return t.SpeedBoost
	case PowerUpInvincible:
		return t.Invincible
	case PowerUpDoubleScore:
		return t.DoubleScore
	default:
		return 0
	}
}

// Active reports whether the effect is running.
func (t Timers) Active(k PowerUpKind) bool {
	return t.Get(k) > 0
}

// set starts (or restarts) an effect.
func (t *Timers) set(k PowerUpKind, ticks int) {
	switch k {
	case PowerUpSpeed:
		t.SpeedBoost = ticks
	case PowerUpInvincible:
		t.Invincible = ticks
	case PowerUpDoubleScore:
		t.DoubleScore = ticks
	}
}

// decrement counts every running effect down by one tick and returns the
// kinds that reached zero.
func (t *Timers) decrement() []PowerUpKind {
	var ended []PowerUpKind
	for k := PowerUpSpeed; k < powerUpKindCount; k++ {
		v := t.Get(k)
		if v <= 0 {
			continue
		}
		t.set(k, v-1)
		if v-1 == 0 {
			ended = append(ended, k)
		}
	}
	return ended
}
