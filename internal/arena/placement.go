package arena

import "math/rand"

// attemptsPerCell scales the rejection-sampling budget with the board area.
const attemptsPerCell = 4

// placer sites entities on uniformly random free cells.
//
// It rejection-samples first, which is fast while the board is mostly empty.
// Once the attempt budget is spent it falls back to drawing from the explicit
// free-cell set, so a crowded board still terminates and a full board reports
// failure instead of looping forever.
type placer struct {
	rng    *rand.Rand
	width  int
	height int
}

// place returns a free cell or false when none exists.
func (p placer) place(blocked func(Position) bool) (Position, bool) {
	budget := attemptsPerCell * p.width * p.height
	for range budget {
		c := Position{X: p.rng.Intn(p.width), Y: p.rng.Intn(p.height)}
		if !blocked(c) {
			return c, true
		}
	}

	free := p.freeCells(blocked)
	if len(free) == 0 {
		return Position{X: -1, Y: -1}, false
	}
	return free[p.rng.Intn(len(free))], true
}

// freeCells enumerates unblocked cells in row-major order.
func (p placer) freeCells(blocked func(Position) bool) []Position {
	var free []Position
	for y := range p.height {
		for x := range p.width {
			c := Position{X: x, Y: y}
			if !blocked(c) {
				free = append(free, c)
			}
		}
	}
	return free
}
