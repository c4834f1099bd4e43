package arena

import "slices"

// Snake is the player-controlled body. Body[0] is the head.
type Snake struct {
	Body          []Position
	Heading       Direction
	PendingGrowth bool // Keep the tail on the next move
	Timers        Timers
}

// newSnake creates a one-segment snake heading right.
func newSnake(head Position) Snake {
	return Snake{
		Body:    []Position{head},
		Heading: DirRight,
	}
}

// Head returns the head segment.
func (s *Snake) Head() Position {
	return s.Body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment covers p.
func (s *Snake) Occupies(p Position) bool {
	return slices.Contains(s.Body, p)
}

// hitsBody reports whether p overlaps a non-head segment.
func (s *Snake) hitsBody(p Position) bool {
	return slices.Contains(s.Body[1:], p)
}

// advance commits a move to head. The tail is dropped unless growth is pending,
// in which case the pending flag is consumed and the body grows by one.
func (s *Snake) advance(head Position) {
	s.Body = slices.Insert(s.Body, 0, head)
	if s.PendingGrowth {
		s.PendingGrowth = false
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// turn applies a queued heading unless it reverses the current one.
func (s *Snake) turn(d Direction) bool {
	if d == s.Heading.Opposite() {
		return false
	}
	s.Heading = d
	return true
}
