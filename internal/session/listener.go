package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/arena"
)

// Listener receives simulation events after each Advance.
type Listener interface {
	OnEvent(ev arena.Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(ev arena.Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev arena.Event) {
	f(ev)
}

// ScoreKeeper persists per-difficulty high scores.
// Difficulty keys are the display names ("Easy", "Medium", ...).
type ScoreKeeper interface {
	HighScores() (map[string]int, error)
	// Record stores a finished episode and reports whether it set a new high score.
	Record(difficulty string, score int) (bool, error)
}

// EpisodeRecorder is implemented by keepers that also store the final length.
type EpisodeRecorder interface {
	RecordEpisode(difficulty string, score, length int) (bool, error)
}

// ScoreRecorder writes finished episodes to a ScoreKeeper.
// Persistence failures are logged and never reach the simulation.
type ScoreRecorder struct {
	keeper ScoreKeeper
	logger *log.Logger
}

// NewScoreRecorder creates a recorder for the given keeper.
func NewScoreRecorder(keeper ScoreKeeper, logger *log.Logger) *ScoreRecorder {
	return &ScoreRecorder{keeper: keeper, logger: logger}
}

// OnEvent records GameOver events with a positive score.
func (r *ScoreRecorder) OnEvent(ev arena.Event) {
	over, ok := ev.(arena.GameOver)
	if !ok || over.Score <= 0 {
		return
	}

	var isNew bool
	var err error
	if er, ok := r.keeper.(EpisodeRecorder); ok {
		isNew, err = er.RecordEpisode(over.Difficulty.String(), over.Score, over.Length)
	} else {
		isNew, err = r.keeper.Record(over.Difficulty.String(), over.Score)
	}
	if err != nil {
		r.logger.Error("could not save score",
			"difficulty", over.Difficulty,
			"score", over.Score,
			"error", err,
		)
		return
	}
	if isNew {
		r.logger.Info("new high score", "difficulty", over.Difficulty, "score", over.Score)
	}
}
