package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snake-arena/internal/arena"
)

// Player turns simulation events into sounds. Until Init succeeds it is silent,
// so a machine without an audio device plays the game unchanged.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a silent player with a linear volume in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
}

// Init opens the audio device. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues a sound on the mixer.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Effect(s, SampleRate, p.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// OnEvent plays the sound mapped to ev, if any.
func (p *Player) OnEvent(ev arena.Event) {
	if s, ok := SoundFor(ev); ok {
		p.Play(s)
	}
}

// SoundFor maps a simulation event to its effect.
func SoundFor(ev arena.Event) (Sound, bool) {
	switch ev := ev.(type) {
	case arena.AteFood:
		if ev.Kind == arena.FoodNormal {
			return SoundEat, true
		}
		return SoundBonus, true
	case arena.CollectedPowerUp:
		return SoundPowerUp, true
	case arena.GameOver:
		return SoundGameOver, true
	case arena.NewHighScore:
		return SoundHighScore, true
	default:
		return 0, false
	}
}
