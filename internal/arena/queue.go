package arena

// DefaultQueueCapacity bounds the number of buffered direction commands.
const DefaultQueueCapacity = 3

// DirectionQueue is the bounded FIFO of direction commands.
// The shell pushes into it as input arrives; Step pops at most one per tick.
type DirectionQueue struct {
	items    []Direction
	capacity int
}

// NewDirectionQueue creates a queue holding at most capacity commands.
func NewDirectionQueue(capacity int) *DirectionQueue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &DirectionQueue{
		items:    make([]Direction, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a command. Returns false (dropping it) when the queue is full.
func (q *DirectionQueue) Push(d Direction) bool {
	if len(q.items) >= q.capacity {
		return false
	}
	q.items = append(q.items, d)
	return true
}

// Pop removes and returns the oldest command.
func (q *DirectionQueue) Pop() (Direction, bool) {
	if q == nil || len(q.items) == 0 {
		return DirRight, false
	}
	d := q.items[0]
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	return d, true
}

// Len returns the number of buffered commands.
func (q *DirectionQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Cap returns the queue capacity.
func (q *DirectionQueue) Cap() int {
	return q.capacity
}

// Clear drops every buffered command.
func (q *DirectionQueue) Clear() {
	q.items = q.items[:0]
}
