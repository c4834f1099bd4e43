// Package audio plays short synthesized effects for simulation events.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the output rate handed to the speaker.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sound identifies an effect.
type Sound int

const (
	SoundEat       Sound = iota // Normal food
	SoundBonus                  // Bonus or special food
	SoundPowerUp                // Power-up collected
	SoundGameOver               // Lethal collision
	SoundHighScore              // New high score
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundBonus:
		return "bonus"
	case SoundPowerUp:
		return "power-up"
	case SoundGameOver:
		return "game-over"
	case SoundHighScore:
		return "high-score"
	default:
		return "unknown"
	}
}

// note is one oscillator segment of an effect.
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

// Effect tables. Attack and release are shared per effect.
var (
	eatNotes       = []note{{880, 90 * time.Millisecond, WaveSine}}
	bonusNotes     = []note{{987.77, 70 * time.Millisecond, WaveSquare}, {1318.51, 140 * time.Millisecond, WaveSquare}}
	powerUpNotes   = []note{{523.25, 60 * time.Millisecond, WaveSine}, {659.25, 60 * time.Millisecond, WaveSine}, {783.99, 120 * time.Millisecond, WaveSine}}
	gameOverNotes  = []note{{110, 450 * time.Millisecond, WaveSaw}}
	highScoreNotes = []note{{659.25, 100 * time.Millisecond, WaveSquare}, {783.99, 100 * time.Millisecond, WaveSquare}, {1046.5, 250 * time.Millisecond, WaveSquare}}
)

const (
	attack  = 5 * time.Millisecond
	release = 40 * time.Millisecond
)

// oscillator generates raw audio waves.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer of the given wave lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	total        int
}

// NewEnvelope shapes s, which is expected to last duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: max(total-rate.N(release), att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		vol := 1.0
		switch {
		case e.position < e.attack:
			vol = float64(e.position) / float64(e.attack)
		case e.position >= e.releaseStart && e.total > e.releaseStart:
			vol = float64(e.total-e.position) / float64(e.total-e.releaseStart)
		}
		vol = max(vol, 0)

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Duration returns the total length of an effect.
func Duration(s Sound) time.Duration {
	var d time.Duration
	for _, n := range notesFor(s) {
		d += n.duration
	}
	return d
}

func notesFor(s Sound) []note {
	switch s {
	case SoundEat:
		return eatNotes
	case SoundBonus:
		return bonusNotes
	case SoundPowerUp:
		return powerUpNotes
	case SoundGameOver:
		return gameOverNotes
	case SoundHighScore:
		return highScoreNotes
	default:
		return nil
	}
}

// Effect builds a fresh streamer for s at the given linear volume.
// Unknown sounds return nil.
func Effect(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	notes := notesFor(s)
	if len(notes) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.duration, attack, release, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}
