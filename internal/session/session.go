// Package session is the shell shared by every front-end. It owns the engine
// and its direction queue, turns wall-clock time into ticks, applies input
// actions, and fans simulation events out to listeners.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/arena"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// MaxTicksPerAdvance bounds how many steps a single Advance may run after a stall.
const MaxTicksPerAdvance = 8

// Options configures a Session.
type Options struct {
	Seed      int64
	Keeper    ScoreKeeper // Optional high-score persistence
	Logger    *log.Logger // Defaults to a discarding logger
	Listeners []Listener
}

// Session drives one engine on behalf of a front-end.
// It is not safe for concurrent use.
type Session struct {
	engine    *arena.Engine
	queue     *arena.DirectionQueue
	acc       time.Duration
	listeners []Listener
	keeper    ScoreKeeper
	logger    *log.Logger
}

// New creates a session in the Menu state and loads persisted high scores.
func New(rules config.Rules, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		engine: arena.New(rules, opts.Seed),
		queue:  arena.NewDirectionQueue(rules.Input.QueueCapacity),
		keeper: opts.Keeper,
		logger: logger,
	}
	if s.keeper != nil {
		s.listeners = append(s.listeners, NewScoreRecorder(s.keeper, logger))
	}
	s.listeners = append(s.listeners, opts.Listeners...)
	s.loadHighScores()
	return s
}

// Subscribe adds a listener for simulation events.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Handle applies one input action. Toggles take effect before the next step.
func (s *Session) Handle(a core.Action) {
	if d, ok := arena.DirectionFor(a); ok {
		if s.engine.State() == arena.StateRunning {
			s.queue.Push(d)
		}
		return
	}

	if i := a.DifficultyIndex(); i >= 0 {
		s.engine.SelectDifficulty(config.Difficulty(i))
		return
	}

	switch a {
	case core.ActionPause:
		s.engine.TogglePause()
	case core.ActionToggleWalls:
		s.engine.ToggleWallCollision()
	case core.ActionConfirm:
		switch s.engine.State() {
		case arena.StateMenu:
			s.Start()
		case arena.StateGameOver:
			s.Restart()
		}
	case core.ActionRestart:
		s.Restart()
	case core.ActionBack, core.ActionQuit:
		s.engine.QuitToMenu()
		s.queue.Clear()
	}
}

// Start begins an episode with the selected difficulty.
func (s *Session) Start() arena.Snapshot {
	s.loadHighScores()
	s.queue.Clear()
	s.acc = 0
	return s.engine.Start()
}

// StartWith selects a difficulty and begins an episode with it.
func (s *Session) StartWith(d config.Difficulty) arena.Snapshot {
	s.engine.SelectDifficulty(d)
	return s.Start()
}

// Restart begins a new episode after game over.
func (s *Session) Restart() bool {
	if s.engine.State() != arena.StateGameOver {
		return false
	}
	s.loadHighScores()
	s.queue.Clear()
	s.acc = 0
	return s.engine.Restart()
}

// Advance accumulates elapsed wall-clock time and runs one step per full tick
// interval. The interval is re-read before every step so a speed boost applies
// on the next tick. Outside Running the accumulator is held at zero.
func (s *Session) Advance(elapsed time.Duration) []arena.Event {
	if s.engine.State() != arena.StateRunning {
		s.acc = 0
		return nil
	}
	s.acc += elapsed

	var events []arena.Event
	for range MaxTicksPerAdvance {
		interval := s.engine.TickInterval()
		if s.acc < interval {
			break
		}
		s.acc -= interval
		events = append(events, s.engine.Step(s.queue)...)

		if s.engine.State() != arena.StateRunning {
			s.acc = 0
			break
		}
	}
	// Drop backlog beyond one tick after a stall
	s.acc = min(s.acc, s.engine.TickInterval())

	s.dispatch(events)
	return events
}

func (s *Session) dispatch(events []arena.Event) {
	for _, ev := range events {
		for _, l := range s.listeners {
			l.OnEvent(ev)
		}
	}
}

// loadHighScores copies persisted high scores into the engine.
func (s *Session) loadHighScores() {
	if s.keeper == nil {
		return
	}
	scores, err := s.keeper.HighScores()
	if err != nil {
		s.logger.Warn("could not load high scores", "error", err)
		return
	}
	for _, d := range config.AllDifficulties() {
		if v, ok := scores[d.String()]; ok && v > s.engine.HighScore(d) {
			s.engine.SetHighScore(d, v)
		}
	}
}

// Snapshot returns a copy of the current simulation state.
func (s *Session) Snapshot() arena.Snapshot {
	return s.engine.Snapshot()
}

// State returns the engine state.
func (s *Session) State() arena.State {
	return s.engine.State()
}

// Engine exposes the underlying engine.
func (s *Session) Engine() *arena.Engine {
	return s.engine
}

// Queued returns the number of pending direction commands.
func (s *Session) Queued() int {
	return s.queue.Len()
}
