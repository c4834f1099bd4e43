package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/registry"
	"github.com/vovakirdan/snake-arena/internal/session"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

const (
	storeSQLite = "sqlite"
	storeJSON   = "json"
)

// newLogger returns a logger for prefix. Full-screen front-ends own the
// terminal, so their logger writes to ~/.snake/snake.log instead of stderr.
// The returned func releases the log file.
func newLogger(prefix string, toFile bool) (*log.Logger, func()) {
	opts := log.Options{ReportTimestamp: true, Prefix: prefix}
	if !toFile {
		return log.NewWithOptions(os.Stderr, opts), func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "snake.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }
}

// keeper is a score keeper that may hold resources.
type keeper interface {
	session.ScoreKeeper
	Close() error
}

// jsonKeeper adapts the JSON store, which holds no open handles.
type jsonKeeper struct {
	*storage.JSONStore
}

func (jsonKeeper) Close() error { return nil }

// openKeeper opens the score store selected by --store.
func openKeeper() (keeper, error) {
	switch flagStore {
	case storeSQLite:
		s, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case storeJSON:
		s, err := storage.OpenJSON(flagScoresFile)
		if err != nil {
			return nil, err
		}
		return jsonKeeper{s}, nil
	default:
		return nil, fmt.Errorf("unknown store %q (expected %s or %s)", flagStore, storeSQLite, storeJSON)
	}
}

// runtimeConfig builds the runtime settings of a front-end.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// buildEnv loads rules and opens the score store. A store that cannot be
// opened is logged and play continues without persistence.
func buildEnv(logger *log.Logger, width, height int) (registry.Env, keeper, error) {
	rules, err := config.Load(flagConfig)
	if err != nil {
		return registry.Env{}, nil, err
	}

	env := registry.Env{
		Rules:   rules,
		Runtime: runtimeConfig(width, height),
		Logger:  logger,
	}

	k, err := openKeeper()
	if err != nil {
		logger.Warn("could not open score store, scores will not be saved", "store", flagStore, "error", err)
		return env, nil, nil
	}
	env.Keeper = k
	return env, k, nil
}
