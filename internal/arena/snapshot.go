package arena

import (
	"maps"
	"slices"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
)

// Snapshot is a read-only copy of everything a front-end needs to draw a frame,
// play sounds or report a score. Mutating it never affects the engine.
type Snapshot struct {
	Tick          uint64
	State         State
	Difficulty    config.Difficulty
	Selected      config.Difficulty
	WallCollision bool
	Width         int
	Height        int
	Interval      time.Duration

	Snake     []Position // Head first
	Heading   Direction
	Growing   bool
	Timers    Timers
	Food      Food
	PowerUp   PowerUp
	Obstacles []Position

	Score      int
	HighScore  int                       // High score of Difficulty
	HighScores map[config.Difficulty]int // Every known high score
	Cause      DeathCause
}

// Head returns the head position, or false before the first episode.
func (s Snapshot) Head() (Position, bool) {
	if len(s.Snake) == 0 {
		return Position{}, false
	}
	return s.Snake[0], true
}

// GameOver reports whether the episode has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// ActivePowerUps lists running effects in a stable order.
func (s Snapshot) ActivePowerUps() []PowerUpKind {
	var kinds []PowerUpKind
	for k := PowerUpSpeed; k < powerUpKindCount; k++ {
		if s.Timers.Active(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:          e.tick,
		State:         e.state,
		Difficulty:    e.difficulty,
		Selected:      e.selected,
		WallCollision: e.wallCollision,
		Width:         e.width,
		Height:        e.height,
		Interval:      e.TickInterval(),
		Snake:         slices.Clone(e.snake.Body),
		Heading:       e.snake.Heading,
		Growing:       e.snake.PendingGrowth,
		Timers:        e.snake.Timers,
		Food:          e.food,
		PowerUp:       e.powerUp,
		Obstacles:     slices.Clone(e.obstacles),
		Score:         e.score,
		HighScore:     e.highScores[e.difficulty],
		HighScores:    maps.Clone(e.highScores),
		Cause:         e.cause,
	}
}
