package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Difficulty selects the base tick interval and the default border rule.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExtreme
)

// AllDifficulties returns every difficulty in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme}
}

// String returns the display name, which is also the high-score key.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyExtreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four known difficulties.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyExtreme
}

// ParseDifficulty accepts a name (case-insensitive) or a menu digit 1-4.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		d := Difficulty(n - 1)
		if d.Valid() {
			return d, nil
		}
		return DifficultyEasy, fmt.Errorf("config: difficulty %d out of range 1-4", n)
	}
	for _, d := range AllDifficulties() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("config: unknown difficulty %q", s)
}

// SecondsToTicks converts a wall-clock span into whole ticks of the given
// interval, rounding up. Non-positive spans mean "never" and return 0.
func SecondsToTicks(seconds float64, interval time.Duration) int {
	if seconds <= 0 || interval <= 0 {
		return 0
	}
	ticks := math.Ceil(seconds * float64(time.Second) / float64(interval))
	return max(int(ticks), 1)
}
