package arena

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// Engine owns every entity of an episode and advances them one tick at a time.
// It is not safe for concurrent use; the shell drives it from a single goroutine.
type Engine struct {
	rules config.Rules
	rng   *rand.Rand
	tick  uint64
	state State

	difficulty    config.Difficulty // Difficulty of the current episode
	selected      config.Difficulty // Difficulty used by the next episode
	wallCollision bool
	width         int
	height        int

	snake     Snake
	food      Food
	powerUp   PowerUp
	obstacles []Position
	blocked   map[Position]bool // Obstacle lookup

	score      int
	cause      DeathCause
	highScores map[config.Difficulty]int

	// Lifespans in ticks, derived from the episode's base interval
	foodLifespan    [3]uint64
	powerUpLifespan uint64
}

// New creates an engine in the Menu state.
func New(rules config.Rules, seed int64) *Engine {
	return &Engine{
		rules:      rules,
		rng:        rand.New(rand.NewSource(seed)),
		state:      StateMenu,
		width:      rules.Board.Width,
		height:     rules.Board.Height,
		highScores: make(map[config.Difficulty]int),
		blocked:    make(map[Position]bool),
	}
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() config.Rules {
	return e.rules
}

// Start begins an episode with the selected difficulty on the configured board.
func (e *Engine) Start() Snapshot {
	return e.NewEpisode(e.selected, e.rules.Board.Width, e.rules.Board.Height)
}

// NewEpisode resets score and entities and enters Running.
// The snake starts as one segment at the board center heading right; 3-10
// obstacles are placed outside the safe zone; one food is spawned; no power-up.
func (e *Engine) NewEpisode(d config.Difficulty, width, height int) Snapshot {
	if !d.Valid() {
		d = config.DifficultyEasy
	}
	if width <= 0 || height <= 0 {
		width, height = e.rules.Board.Width, e.rules.Board.Height
	}

	rule := e.rules.Difficulties.For(d)
	e.difficulty = d
	e.selected = d
	e.wallCollision = rule.WallCollision
	e.width = width
	e.height = height
	e.tick = 0
	e.score = 0
	e.cause = CauseNone

	interval := rule.Interval()
	e.foodLifespan = [3]uint64{
		uint64(config.SecondsToTicks(e.rules.Food.Normal.LifespanSeconds, interval)),
		uint64(config.SecondsToTicks(e.rules.Food.Bonus.LifespanSeconds, interval)),
		uint64(config.SecondsToTicks(e.rules.Food.Special.LifespanSeconds, interval)),
	}
	e.powerUpLifespan = uint64(config.SecondsToTicks(e.rules.PowerUps.LifespanSeconds, interval))

	e.snake = newSnake(e.center())
	e.powerUp = PowerUp{}
	e.generateObstacles()
	e.spawnFood()

	e.state = StateRunning
	return e.Snapshot()
}

// center returns the snake's spawn cell.
func (e *Engine) center() Position {
	return core.NewRect(0, 0, e.width, e.height).Center()
}

// placer returns a placer bound to the current board.
func (e *Engine) placer() placer {
	return placer{rng: e.rng, width: e.width, height: e.height}
}

// generateObstacles places a uniformly random number of obstacles in
// [Obstacles.Min, Obstacles.Max] away from the spawn point.
func (e *Engine) generateObstacles() {
	e.obstacles = e.obstacles[:0]
	clear(e.blocked)

	lo, hi := e.rules.Obstacles.Min, e.rules.Obstacles.Max
	count := lo
	if hi > lo {
		count += e.rng.Intn(hi - lo + 1)
	}

	c := e.center()
	r := e.rules.Obstacles.SafeRadius
	inSafeZone := func(p Position) bool {
		return core.Abs(p.X-c.X) <= r && core.Abs(p.Y-c.Y) <= r
	}

	p := e.placer()
	for range count {
		pos, ok := p.place(func(p Position) bool {
			return inSafeZone(p) || e.blocked[p] || e.snake.Occupies(p)
		})
		if !ok {
			break
		}
		e.obstacles = append(e.obstacles, pos)
		e.blocked[pos] = true
	}
}

// occupied reports whether a cell holds the snake, an obstacle or the power-up.
func (e *Engine) occupied(p Position) bool {
	if e.blocked[p] || e.snake.Occupies(p) {
		return true
	}
	return e.powerUp.Active && e.powerUp.Position == p
}

// rollFoodKind draws a food kind by the configured weights.
func (e *Engine) rollFoodKind() FoodKind {
	f := e.rules.Food
	n := e.rng.Intn(f.TotalWeight())
	switch {
	case n < f.Normal.Weight:
		return FoodNormal
	case n < f.Normal.Weight+f.Bonus.Weight:
		return FoodBonus
	default:
		return FoodSpecial
	}
}

// foodPoints returns the base points of a kind.
func (e *Engine) foodPoints(k FoodKind) int {
	switch k {
	case FoodBonus:
		return e.rules.Food.Bonus.Points
	case FoodSpecial:
		return e.rules.Food.Special.Points
	default:
		return e.rules.Food.Normal.Points
	}
}

// spawnFood rolls a fresh food and places it on a free cell.
func (e *Engine) spawnFood() {
	kind := e.rollFoodKind()
	pos, ok := e.placer().place(e.occupied)
	if !ok {
		e.food = Food{Position: pos}
		return
	}

	e.food = Food{
		Position:  pos,
		Kind:      kind,
		Points:    e.foodPoints(kind),
		SpawnTick: e.tick,
		Active:    true,
	}
	if life := e.foodLifespan[kind]; life > 0 {
		e.food.ExpiresAt = e.tick + life
	}
}

// spawnPowerUp places a uniformly random power-up kind on a free cell.
func (e *Engine) spawnPowerUp() bool {
	kind := PowerUpKind(e.rng.Intn(int(powerUpKindCount)))
	pos, ok := e.placer().place(func(p Position) bool {
		return e.occupied(p) || (e.food.Active && e.food.Position == p)
	})
	if !ok {
		return false
	}
	e.powerUp = PowerUp{
		Position:  pos,
		Kind:      kind,
		SpawnTick: e.tick,
		ExpiresAt: e.tick + e.powerUpLifespan,
		Active:    true,
	}
	return true
}

// Step advances the episode by one tick and returns the events it produced.
// It is a no-op unless the engine is Running. At most one queued direction is
// consumed; a reversal is discarded.
func (e *Engine) Step(q *DirectionQueue) []Event {
	if e.state != StateRunning {
		return nil
	}
	e.tick++

	if d, ok := q.Pop(); ok {
		e.snake.turn(d)
	}

	candidate := e.snake.Head().Add(e.snake.Heading.Vector())
	if candidate.X < 0 || candidate.X >= e.width || candidate.Y < 0 || candidate.Y >= e.height {
		if e.wallCollision {
			return e.endEpisode(CauseWallCollision)
		}
		candidate = candidate.Wrap(e.width, e.height)
	}

	invincible := e.snake.Timers.Active(PowerUpInvincible)
	if !invincible && e.snake.hitsBody(candidate) {
		return e.endEpisode(CauseSelfCollision)
	}
	if !invincible && e.blocked[candidate] {
		return e.endEpisode(CauseObstacleCollision)
	}

	e.snake.advance(candidate)

	var events []Event
	for _, k := range e.snake.Timers.decrement() {
		events = append(events, PowerUpEnded{Kind: k})
	}

	events = e.updateFood(candidate, events)
	events = e.updatePowerUp(candidate, events)
	return events
}

// updateFood handles eating, expiry and respawn of the food.
func (e *Engine) updateFood(head Position, events []Event) []Event {
	switch {
	case e.food.Active && e.food.Position == head:
		points := e.food.Points
		if e.snake.Timers.Active(PowerUpDoubleScore) {
			points *= 2
		}
		e.score += points
		e.snake.PendingGrowth = true
		events = append(events, AteFood{Kind: e.food.Kind, Points: points, Position: head})
		e.spawnFood()
	case e.food.Expired(e.tick):
		events = append(events, FoodExpired{Kind: e.food.Kind, Position: e.food.Position})
		e.spawnFood()
	case !e.food.Active:
		// The board was full at the last attempt; retry now that the snake moved.
		e.spawnFood()
	}
	return events
}

// updatePowerUp handles the spawn roll, expiry and pickup of the power-up.
func (e *Engine) updatePowerUp(head Position, events []Event) []Event {
	if !e.powerUp.Active {
		if e.rng.Float64() < e.rules.PowerUps.SpawnChance && e.spawnPowerUp() {
			events = append(events, PowerUpSpawned{Kind: e.powerUp.Kind, Position: e.powerUp.Position})
		}
	} else if e.tick > e.powerUp.ExpiresAt {
		e.powerUp.Active = false
		events = append(events, PowerUpExpired{Kind: e.powerUp.Kind})
	}

	if e.powerUp.Active && e.powerUp.Position == head {
		duration := e.rules.PowerUps.DurationTicks
		e.snake.Timers.set(e.powerUp.Kind, duration)
		e.powerUp.Active = false
		events = append(events, CollectedPowerUp{Kind: e.powerUp.Kind, Duration: duration})
	}
	return events
}

// endEpisode freezes the episode after a lethal collision.
func (e *Engine) endEpisode(cause DeathCause) []Event {
	e.state = StateGameOver
	e.cause = cause

	events := []Event{GameOver{
		Difficulty: e.difficulty,
		Score:      e.score,
		Length:     e.snake.Len(),
		Cause:      cause,
		Tick:       e.tick,
	}}

	if prev := e.highScores[e.difficulty]; e.score > prev {
		e.highScores[e.difficulty] = e.score
		events = append(events, NewHighScore{Difficulty: e.difficulty, Score: e.score, Previous: prev})
	}
	return events
}

// Advance runs up to ticks steps, stopping early once the episode leaves Running.
func (e *Engine) Advance(q *DirectionQueue, ticks int) []Event {
	var events []Event
	for range ticks {
		if e.state != StateRunning {
			break
		}
		events = append(events, e.Step(q)...)
	}
	return events
}

// TogglePause switches between Running and Paused. Other states are unaffected.
func (e *Engine) TogglePause() State {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
	}
	return e.state
}

// Restart begins a new episode after GameOver. It is a no-op in any other state.
func (e *Engine) Restart() bool {
	if e.state != StateGameOver {
		return false
	}
	e.NewEpisode(e.selected, e.width, e.height)
	return true
}

// QuitToMenu leaves the episode. Entities are frozen, not reset.
func (e *Engine) QuitToMenu() {
	e.state = StateMenu
}

// ToggleWallCollision flips border lethality for the current episode and
// returns the new value. A new episode restores the difficulty default.
func (e *Engine) ToggleWallCollision() bool {
	e.wallCollision = !e.wallCollision
	return e.wallCollision
}

// SelectDifficulty chooses the difficulty of the next episode. It is honoured
// only outside an active episode (Menu or GameOver).
func (e *Engine) SelectDifficulty(d config.Difficulty) bool {
	if !d.Valid() || (e.state != StateMenu && e.state != StateGameOver) {
		return false
	}
	e.selected = d
	return true
}

// SetHighScore registers the persisted high score of a difficulty.
func (e *Engine) SetHighScore(d config.Difficulty, score int) {
	e.highScores[d] = max(score, 0)
}

// HighScore returns the known high score of a difficulty.
func (e *Engine) HighScore(d config.Difficulty) int {
	return e.highScores[d]
}

// TickInterval returns how long the shell should wait between steps: the
// difficulty's base interval, halved while Speed Boost is active.
func (e *Engine) TickInterval() time.Duration {
	d := e.difficulty
	if e.state == StateMenu {
		d = e.selected
	}
	interval := e.rules.Difficulties.For(d).Interval()
	if e.snake.Timers.Active(PowerUpSpeed) {
		interval /= 2
	}
	return interval
}

// State returns the current state machine position.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current episode score.
func (e *Engine) Score() int {
	return e.score
}

// Tick returns the number of steps taken in the current episode.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Difficulty returns the difficulty of the current episode.
func (e *Engine) Difficulty() config.Difficulty {
	return e.difficulty
}

// Selected returns the difficulty the next episode will use.
func (e *Engine) Selected() config.Difficulty {
	return e.selected
}

// WallCollision reports whether the border is lethal.
func (e *Engine) WallCollision() bool {
	return e.wallCollision
}
