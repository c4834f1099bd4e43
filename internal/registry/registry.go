// Package registry provides a global registry for front-end factories.
// Front-ends register themselves in init() functions, so the CLI can list
// and launch them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/session"
)

// Env is everything a front-end needs to run a game.
type Env struct {
	Rules     config.Rules
	Runtime   core.RuntimeConfig
	Start     *config.Difficulty // Skip the menu and start at this difficulty
	Keeper    session.ScoreKeeper
	Listeners []session.Listener
	Logger    *log.Logger
}

// NewSession builds a session from the environment.
func (e Env) NewSession() *session.Session {
	return session.New(e.Rules, session.Options{
		Seed:      e.Runtime.Seed,
		Keeper:    e.Keeper,
		Logger:    e.Logger,
		Listeners: e.Listeners,
	})
}

// Frontend presents a session on some output device.
// The simulation lives in the session; front-ends only map input and draw.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g., "tui").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Run blocks until the player quits or ctx is cancelled.
	Run(ctx context.Context, env Env) error
}

// Info contains metadata about a registered front-end.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new front-end instance.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Panics if a front-end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered front-ends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a front-end by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}
	return f(), nil
}

// Exists checks if a front-end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
