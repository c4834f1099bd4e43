package arena

import "github.com/vovakirdan/snake-arena/internal/config"

// Event is emitted by Step for the shell to turn into side effects
// (rendering cues, sound, score persistence).
type Event interface {
	arenaEvent()
}

// AteFood is emitted when the head lands on the food.
type AteFood struct {
	Kind     FoodKind
	Points   int // Points awarded, already doubled when Double Score was active
	Position Position
}

func (AteFood) arenaEvent() {}

// FoodExpired is emitted when timed food vanishes uneaten.
type FoodExpired struct {
	Kind     FoodKind
	Position Position
}

func (FoodExpired) arenaEvent() {}

// PowerUpSpawned is emitted when a power-up appears on the board.
type PowerUpSpawned struct {
	Kind     PowerUpKind
	Position Position
}

func (PowerUpSpawned) arenaEvent() {}

// PowerUpExpired is emitted when an uncollected power-up vanishes.
type PowerUpExpired struct {
	Kind PowerUpKind
}

func (PowerUpExpired) arenaEvent() {}

// CollectedPowerUp is emitted when the head picks up a power-up.
type CollectedPowerUp struct {
	Kind     PowerUpKind
	Duration int // Effect length in ticks
}

func (CollectedPowerUp) arenaEvent() {}

// PowerUpEnded is emitted when an effect timer runs out.
type PowerUpEnded struct {
	Kind PowerUpKind
}

func (PowerUpEnded) arenaEvent() {}

// GameOver is emitted once per episode on a lethal collision.
type GameOver struct {
	Difficulty config.Difficulty
	Score      int
	Length     int
	Cause      DeathCause
	Tick       uint64
}

func (GameOver) arenaEvent() {}

// NewHighScore follows GameOver when the final score beats the high score
// registered for the difficulty. Persisting it is the shell's job.
type NewHighScore struct {
	Difficulty config.Difficulty
	Score      int
	Previous   int
}

func (NewHighScore) arenaEvent() {}
