package arena

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
)

// testRules disables random power-ups and obstacles so scenarios stay exact.
func testRules() config.Rules {
	r := config.DefaultRules()
	r.PowerUps.SpawnChance = 0
	r.Obstacles.Min = 0
	r.Obstacles.Max = 0
	return r
}

// newRunning starts a 20x10 episode with testRules.
func newRunning(t *testing.T, d config.Difficulty) *Engine {
	t.Helper()
	e := New(testRules(), 42)
	e.NewEpisode(d, 20, 10)
	return e
}

// setSnake replaces the snake body and heading.
func setSnake(e *Engine, heading Direction, body ...Position) {
	e.snake.Body = slices.Clone(body)
	e.snake.Heading = heading
	e.snake.PendingGrowth = false
}

// setFood places a never-expiring normal food.
func setFood(e *Engine, p Position) {
	e.food = Food{Position: p, Kind: FoodNormal, Points: 1, Active: true}
}

// setObstacles replaces the obstacle set.
func setObstacles(e *Engine, ps ...Position) {
	e.obstacles = slices.Clone(ps)
	clear(e.blocked)
	for _, p := range ps {
		e.blocked[p] = true
	}
}

func hasEvent[T Event](events []Event) (T, bool) {
	for _, ev := range events {
		if got, ok := ev.(T); ok {
			return got, true
		}
	}
	var zero T
	return zero, false
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and inputs must produce identical snapshots
	run := func() Snapshot {
		e := New(config.DefaultRules(), 12345)
		e.NewEpisode(config.DifficultyEasy, 20, 10)
		q := NewDirectionQueue(3)
		for i := 0; i < 300; i++ {
			switch i % 40 {
			case 10:
				q.Push(DirDown)
			case 20:
				q.Push(DirLeft)
			case 30:
				q.Push(DirUp)
			}
			e.Step(q)
			if e.State() == StateGameOver {
				e.Restart()
			}
		}
		return e.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestNewEpisode(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		e := New(config.DefaultRules(), seed)
		snap := e.NewEpisode(config.DifficultyHard, 20, 10)

		if snap.State != StateRunning {
			t.Fatalf("seed %d: state = %v, expected running", seed, snap.State)
		}
		if snap.Score != 0 {
			t.Errorf("seed %d: score = %d, expected 0", seed, snap.Score)
		}
		if len(snap.Snake) != 1 || snap.Snake[0] != (Position{X: 10, Y: 5}) {
			t.Errorf("seed %d: snake = %v, expected single segment at (10,5)", seed, snap.Snake)
		}
		if snap.Heading != DirRight {
			t.Errorf("seed %d: heading = %v, expected right", seed, snap.Heading)
		}
		if !snap.WallCollision {
			t.Errorf("seed %d: Hard should default to wall collision", seed)
		}
		if snap.PowerUp.Active {
			t.Errorf("seed %d: no power-up should be active at start", seed)
		}
		if n := len(snap.Obstacles); n < 3 || n > 10 {
			t.Errorf("seed %d: %d obstacles, expected 3-10", seed, n)
		}
		for _, o := range snap.Obstacles {
			if core.Abs(o.X-10) <= 3 && core.Abs(o.Y-5) <= 3 {
				t.Errorf("seed %d: obstacle %v inside the safe zone", seed, o)
			}
		}
		if !snap.Food.Active {
			t.Fatalf("seed %d: food should be active", seed)
		}
		if slices.Contains(snap.Obstacles, snap.Food.Position) || slices.Contains(snap.Snake, snap.Food.Position) {
			t.Errorf("seed %d: food %v overlaps snake or obstacles", seed, snap.Food.Position)
		}
	}
}

func TestObstacleCountSpansRange(t *testing.T) {
	seen := make(map[int]bool)
	for seed := int64(0); seed < 400; seed++ {
		e := New(config.DefaultRules(), seed)
		seen[len(e.NewEpisode(config.DifficultyEasy, 20, 10).Obstacles)] = true
	}
	for n := 3; n <= 10; n++ {
		if !seen[n] {
			t.Errorf("obstacle count %d never generated", n)
		}
	}
}

func TestBodyLengthInvariantWithoutFood(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, Position{X: 5, Y: 5}, Position{X: 4, Y: 5}, Position{X: 3, Y: 5})
	setFood(e, Position{X: 0, Y: 0})

	for i := 0; i < 8; i++ {
		before := e.snake.Len()
		events := e.Step(nil)
		if _, ate := hasEvent[AteFood](events); ate {
			t.Fatal("unexpected AteFood")
		}
		if e.snake.Len() != before {
			t.Fatalf("tick %d: length %d -> %d without food", i, before, e.snake.Len())
		}
	}
}

func TestEatFoodScenario(t *testing.T) {
	// Board 20x10, snake at (10,5) heading right, food at (11,5)
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, Position{X: 10, Y: 5})
	setFood(e, Position{X: 11, Y: 5})

	events := e.Step(nil)

	ate, ok := hasEvent[AteFood](events)
	if !ok {
		t.Fatal("expected AteFood event")
	}
	if ate.Points != 1 || ate.Kind != FoodNormal {
		t.Errorf("AteFood = %+v, expected 1 normal point", ate)
	}
	if head := e.snake.Head(); head != (Position{X: 11, Y: 5}) {
		t.Errorf("head = %v, expected (11,5)", head)
	}
	if e.Score() != 1 {
		t.Errorf("score = %d, expected 1", e.Score())
	}
	if e.snake.Len() != 1 {
		t.Errorf("growth is deferred: length = %d, expected 1 on the eating tick", e.snake.Len())
	}
	if !e.snake.PendingGrowth {
		t.Error("PendingGrowth should be set after eating")
	}
	if e.food.Position == (Position{X: 11, Y: 5}) || e.snake.Occupies(e.food.Position) {
		t.Errorf("food should respawn off the snake, got %v", e.food.Position)
	}

	e.Step(nil)
	if e.snake.Len() != 2 {
		t.Errorf("length = %d after the deferred-growth tick, expected 2", e.snake.Len())
	}
}

func TestDoubleScoreDoublesPoints(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, Position{X: 10, Y: 5})
	e.food = Food{Position: Position{X: 11, Y: 5}, Kind: FoodBonus, Points: 3, Active: true}
	e.snake.Timers.DoubleScore = 5

	events := e.Step(nil)
	ate, ok := hasEvent[AteFood](events)
	if !ok {
		t.Fatal("expected AteFood event")
	}
	if ate.Points != 6 || e.Score() != 6 {
		t.Errorf("points = %d, score = %d, expected 6 with Double Score", ate.Points, e.Score())
	}
}

func TestReversalRejected(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		t.Run(d.String(), func(t *testing.T) {
			e := newRunning(t, config.DifficultyEasy)
			setSnake(e, d, Position{X: 10, Y: 5}, Position{X: 10, Y: 5}.Add(d.Opposite().Vector()))
			setFood(e, Position{X: 0, Y: 0})

			q := NewDirectionQueue(3)
			q.Push(d.Opposite())
			e.Step(q)

			if e.snake.Heading != d {
				t.Errorf("heading = %v, expected %v after queuing its reverse", e.snake.Heading, d)
			}
			if q.Len() != 0 {
				t.Error("the rejected command should be consumed, not kept")
			}
			if e.State() != StateRunning {
				t.Error("rejected reversal must not kill the snake")
			}
		})
	}
}

func TestOneDirectionPerTick(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, Position{X: 10, Y: 5})
	setFood(e, Position{X: 0, Y: 0})

	q := NewDirectionQueue(3)
	q.Push(DirUp)
	q.Push(DirLeft)

	e.Step(q)
	if e.snake.Heading != DirUp || e.snake.Head() != (Position{X: 10, Y: 4}) {
		t.Errorf("tick 1: heading %v head %v, expected up to (10,4)", e.snake.Heading, e.snake.Head())
	}
	e.Step(q)
	if e.snake.Heading != DirLeft || e.snake.Head() != (Position{X: 9, Y: 4}) {
		t.Errorf("tick 2: heading %v head %v, expected left to (9,4)", e.snake.Heading, e.snake.Head())
	}
}

func TestWrapAroundScenario(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	if e.WallCollision() {
		t.Fatal("Easy should default to screen wrap")
	}
	setSnake(e, DirRight, Position{X: 19, Y: 5})
	setFood(e, Position{X: 0, Y: 0})

	e.Step(nil)

	if e.snake.Head() != (Position{X: 0, Y: 5}) {
		t.Errorf("head = %v, expected wrap to (0,5)", e.snake.Head())
	}
	if e.State() == StateGameOver {
		t.Error("wrap-around must not end the episode")
	}
}

func TestWrapKeepsHeadInBounds(t *testing.T) {
	e := newRunning(t, config.DifficultyMedium)
	e.snake.Timers.Invincible = 1 << 30
	rng := rand.New(rand.NewSource(7))
	q := NewDirectionQueue(3)

	for i := 0; i < 2000; i++ {
		if rng.Intn(3) == 0 {
			q.Push(Direction(rng.Intn(4)))
		}
		e.Step(q)
		h := e.snake.Head()
		if h.X < 0 || h.X >= 20 || h.Y < 0 || h.Y >= 10 {
			t.Fatalf("tick %d: head %v out of bounds", i, h)
		}
		if e.State() != StateRunning {
			t.Fatalf("tick %d: state %v, expected running", i, e.State())
		}
	}
}

func TestWallCollisionScenario(t *testing.T) {
	e := newRunning(t, config.DifficultyHard)
	if !e.WallCollision() {
		t.Fatal("Hard should default to wall collision")
	}
	setSnake(e, DirRight, Position{X: 19, Y: 5}, Position{X: 18, Y: 5})
	setFood(e, Position{X: 0, Y: 0})
	e.score = 4
	before := slices.Clone(e.snake.Body)

	events := e.Step(nil)

	over, ok := hasEvent[GameOver](events)
	if !ok {
		t.Fatal("expected GameOver event")
	}
	if over.Cause != CauseWallCollision || over.Score != 4 || over.Difficulty != config.DifficultyHard {
		t.Errorf("GameOver = %+v", over)
	}
	if e.State() != StateGameOver {
		t.Errorf("state = %v, expected game_over", e.State())
	}
	if e.Score() != 4 {
		t.Errorf("score changed to %d", e.Score())
	}
	if !slices.Equal(e.snake.Body, before) {
		t.Errorf("snake mutated: %v -> %v", before, e.snake.Body)
	}

	// Further steps are ignored
	if events := e.Step(nil); events != nil {
		t.Errorf("Step after game over returned %v", events)
	}
}

func TestWallCollisionOnlyOnCrossing(t *testing.T) {
	e := newRunning(t, config.DifficultyExtreme)
	setSnake(e, DirRight, Position{X: 17, Y: 5})
	setFood(e, Position{X: 0, Y: 0})

	e.Step(nil)
	e.Step(nil)
	if e.State() != StateRunning || e.snake.Head() != (Position{X: 19, Y: 5}) {
		t.Fatalf("expected to reach the last column alive, head %v state %v", e.snake.Head(), e.State())
	}
	e.Step(nil)
	if e.State() != StateGameOver {
		t.Error("crossing the border should end the episode")
	}
}

func TestToggleWallCollision(t *testing.T) {
	e := newRunning(t, config.DifficultyHard)
	if e.ToggleWallCollision() {
		t.Fatal("toggle should disable wall collision")
	}
	setSnake(e, DirUp, Position{X: 4, Y: 0})
	setFood(e, Position{X: 0, Y: 0})

	e.Step(nil)
	if e.State() != StateRunning || e.snake.Head() != (Position{X: 4, Y: 9}) {
		t.Errorf("expected wrap to (4,9), head %v state %v", e.snake.Head(), e.State())
	}

	e.NewEpisode(config.DifficultyHard, 20, 10)
	if !e.WallCollision() {
		t.Error("a new episode should restore the difficulty default")
	}
}

func TestSelfCollision(t *testing.T) {
	body := []Position{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}

	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, body...)
	setFood(e, Position{X: 0, Y: 0})

	events := e.Step(nil)
	over, ok := hasEvent[GameOver](events)
	if !ok || over.Cause != CauseSelfCollision {
		t.Fatalf("expected self-collision game over, got %v", events)
	}

	e = newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, body...)
	setFood(e, Position{X: 0, Y: 0})
	e.snake.Timers.Invincible = 2

	e.Step(nil)
	if e.State() != StateRunning {
		t.Error("invincibility should suppress self-collision")
	}
}

func TestObstacleCollision(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirDown, Position{X: 2, Y: 2})
	setFood(e, Position{X: 0, Y: 0})
	setObstacles(e, Position{X: 2, Y: 3})

	events := e.Step(nil)
	over, ok := hasEvent[GameOver](events)
	if !ok || over.Cause != CauseObstacleCollision {
		t.Fatalf("expected obstacle game over, got %v", events)
	}
}

func TestInvincibilityLastsExactlyItsDuration(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, Position{X: 5, Y: 5})
	setFood(e, Position{X: 0, Y: 0})
	setObstacles(e, Position{X: 6, Y: 5}, Position{X: 7, Y: 5}, Position{X: 8, Y: 5}, Position{X: 9, Y: 5})
	e.snake.Timers.Invincible = 3

	for i := 1; i <= 3; i++ {
		events := e.Step(nil)
		if e.State() != StateRunning {
			t.Fatalf("tick %d: died while invincible", i)
		}
		_, ended := hasEvent[PowerUpEnded](events)
		if ended != (i == 3) {
			t.Errorf("tick %d: PowerUpEnded emitted = %v", i, ended)
		}
	}

	e.Step(nil)
	if e.State() != StateGameOver {
		t.Error("obstacles must be lethal on the first tick after invincibility ends")
	}
}

func TestPowerUpPickup(t *testing.T) {
	e := newRunning(t, config.DifficultyMedium)
	setSnake(e, DirRight, Position{X: 10, Y: 5})
	setFood(e, Position{X: 0, Y: 0})
	e.powerUp = PowerUp{Position: Position{X: 11, Y: 5}, Kind: PowerUpSpeed, ExpiresAt: 1000, Active: true}

	base := e.TickInterval()
	events := e.Step(nil)

	got, ok := hasEvent[CollectedPowerUp](events)
	if !ok {
		t.Fatal("expected CollectedPowerUp event")
	}
	if got.Kind != PowerUpSpeed || got.Duration != 20 {
		t.Errorf("CollectedPowerUp = %+v", got)
	}
	if e.powerUp.Active {
		t.Error("collected power-up should be removed from the board")
	}
	if e.snake.Timers.SpeedBoost != 20 {
		t.Errorf("SpeedBoost = %d, expected 20", e.snake.Timers.SpeedBoost)
	}
	if e.TickInterval() != base/2 {
		t.Errorf("TickInterval() = %v, expected %v under speed boost", e.TickInterval(), base/2)
	}
}

func TestPowerUpExpires(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, Position{X: 2, Y: 2})
	setFood(e, Position{X: 0, Y: 0})
	e.powerUp = PowerUp{Position: Position{X: 15, Y: 8}, Kind: PowerUpInvincible, ExpiresAt: e.tick, Active: true}

	events := e.Step(nil)
	if _, ok := hasEvent[PowerUpExpired](events); !ok {
		t.Fatal("expected PowerUpExpired event")
	}
	if e.powerUp.Active {
		t.Error("expired power-up should be inactive")
	}
}

func TestPowerUpLifespanTicks(t *testing.T) {
	r := testRules()
	r.PowerUps.SpawnChance = 1
	e := New(r, 3)
	e.NewEpisode(config.DifficultyHard, 20, 10)
	setSnake(e, DirRight, Position{X: 0, Y: 0})
	setFood(e, Position{X: 19, Y: 9})

	events := e.Step(nil)
	spawned, ok := hasEvent[PowerUpSpawned](events)
	if !ok {
		t.Fatal("spawn chance 1 should always spawn")
	}
	// 10 s at Hard's 100 ms base interval
	if want := e.tick + 100; e.powerUp.ExpiresAt != want {
		t.Errorf("ExpiresAt = %d, expected %d", e.powerUp.ExpiresAt, want)
	}
	if spawned.Position == e.snake.Head() || spawned.Position == e.food.Position {
		t.Errorf("power-up spawned on an occupied cell %v", spawned.Position)
	}
}

func TestFoodExpiryRespawns(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	setSnake(e, DirRight, Position{X: 2, Y: 2})
	e.tick = 10
	e.food = Food{Position: Position{X: 15, Y: 8}, Kind: FoodBonus, Points: 3, ExpiresAt: e.tick, Active: true}

	events := e.Step(nil)
	expired, ok := hasEvent[FoodExpired](events)
	if !ok {
		t.Fatal("expected FoodExpired event")
	}
	if expired.Kind != FoodBonus {
		t.Errorf("FoodExpired.Kind = %v", expired.Kind)
	}
	if e.Score() != 0 {
		t.Errorf("expiry must not score, got %d", e.Score())
	}
	if !e.food.Active || e.food.SpawnTick != e.tick || e.snake.Occupies(e.food.Position) {
		t.Errorf("food should be respawned this tick on a free cell, got %+v", e.food)
	}
}

func TestFoodLifespanByKind(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	// 300 ms base interval: 5 s -> 17 ticks, 7 s -> 24 ticks
	want := [3]uint64{0, 17, 24}
	if e.foodLifespan != want {
		t.Errorf("foodLifespan = %v, expected %v", e.foodLifespan, want)
	}
}

func TestSpawnedEntitiesNeverOverlap(t *testing.T) {
	r := config.DefaultRules()
	r.PowerUps.SpawnChance = 0.2

	for seed := int64(1); seed <= 30; seed++ {
		e := New(r, seed)
		e.NewEpisode(config.DifficultyEasy, 20, 10)
		rng := rand.New(rand.NewSource(seed))
		q := NewDirectionQueue(3)

		for i := 0; i < 400; i++ {
			if rng.Intn(4) == 0 {
				q.Push(Direction(rng.Intn(4)))
			}
			events := e.Step(q)
			if e.State() != StateRunning {
				e.Restart()
				continue
			}
			for _, ev := range events {
				switch ev := ev.(type) {
				case PowerUpSpawned:
					if e.snake.Occupies(ev.Position) || e.blocked[ev.Position] || ev.Position == e.food.Position {
						t.Fatalf("seed %d tick %d: power-up on occupied cell %v", seed, i, ev.Position)
					}
				}
			}
			f := e.food
			if f.Active && (e.snake.Occupies(f.Position) || e.blocked[f.Position] ||
				(e.powerUp.Active && e.powerUp.Position == f.Position)) {
				t.Fatalf("seed %d tick %d: food on occupied cell %v", seed, i, f.Position)
			}
		}
	}
}

func TestFoodKindWeights(t *testing.T) {
	e := New(config.DefaultRules(), 99)
	counts := make(map[FoodKind]int)
	const n = 20000
	for i := 0; i < n; i++ {
		counts[e.rollFoodKind()]++
	}

	check := func(k FoodKind, pct float64) {
		got := float64(counts[k]) / n * 100
		if got < pct-2 || got > pct+2 {
			t.Errorf("%v rolled %.1f%%, expected about %.0f%%", k, got, pct)
		}
	}
	check(FoodNormal, 70)
	check(FoodBonus, 20)
	check(FoodSpecial, 10)
}

func TestNewHighScoreEvent(t *testing.T) {
	e := newRunning(t, config.DifficultyHard)
	e.SetHighScore(config.DifficultyHard, 3)
	setSnake(e, DirUp, Position{X: 5, Y: 0})
	e.score = 7

	events := e.Step(nil)
	hs, ok := hasEvent[NewHighScore](events)
	if !ok {
		t.Fatal("expected NewHighScore event")
	}
	if hs.Score != 7 || hs.Previous != 3 || hs.Difficulty != config.DifficultyHard {
		t.Errorf("NewHighScore = %+v", hs)
	}
	if e.HighScore(config.DifficultyHard) != 7 {
		t.Errorf("HighScore() = %d, expected 7", e.HighScore(config.DifficultyHard))
	}

	e.Restart()
	e.SetHighScore(config.DifficultyHard, 50)
	setSnake(e, DirUp, Position{X: 5, Y: 0})
	e.score = 7
	if _, ok := hasEvent[NewHighScore](e.Step(nil)); ok {
		t.Error("no NewHighScore expected below the registered high score")
	}
}

func TestStateMachine(t *testing.T) {
	e := New(testRules(), 1)

	if e.State() != StateMenu {
		t.Fatalf("new engine state = %v, expected menu", e.State())
	}
	if events := e.Step(nil); events != nil {
		t.Error("Step in menu must be a no-op")
	}
	if e.Restart() {
		t.Error("Restart is only valid after game over")
	}
	if !e.SelectDifficulty(config.DifficultyMedium) {
		t.Error("SelectDifficulty should be honoured in the menu")
	}

	snap := e.Start()
	if snap.State != StateRunning || snap.Difficulty != config.DifficultyMedium {
		t.Fatalf("Start() = %v/%v, expected running medium", snap.State, snap.Difficulty)
	}
	if e.SelectDifficulty(config.DifficultyHard) {
		t.Error("SelectDifficulty must be ignored while running")
	}

	// Pause freezes everything
	if e.TogglePause() != StatePaused {
		t.Fatal("TogglePause should pause a running episode")
	}
	frozen := e.Snapshot()
	for i := 0; i < 5; i++ {
		e.Step(nil)
	}
	if !reflect.DeepEqual(frozen, e.Snapshot()) {
		t.Error("paused steps must not change state")
	}
	if e.TogglePause() != StateRunning {
		t.Fatal("TogglePause should resume")
	}

	// Quit keeps entities
	e.QuitToMenu()
	if e.State() != StateMenu {
		t.Fatal("QuitToMenu should enter the menu")
	}
	if got := e.Snapshot(); !slices.Equal(got.Snake, frozen.Snake) || got.Score != frozen.Score {
		t.Error("quitting must not reset entities")
	}
	if e.TogglePause() != StateMenu {
		t.Error("TogglePause in the menu must be a no-op")
	}

	// Game over and restart
	e.Start()
	setSnake(e, DirUp, Position{X: 0, Y: 0})
	e.wallCollision = true
	e.Step(nil)
	if e.State() != StateGameOver {
		t.Fatal("expected game over")
	}
	if e.TogglePause() != StateGameOver {
		t.Error("TogglePause after game over must be a no-op")
	}
	if !e.SelectDifficulty(config.DifficultyExtreme) {
		t.Error("SelectDifficulty should be honoured after game over")
	}
	if !e.Restart() {
		t.Fatal("Restart should succeed after game over")
	}
	if e.State() != StateRunning || e.Difficulty() != config.DifficultyExtreme || e.Score() != 0 {
		t.Errorf("after restart: state %v difficulty %v score %d", e.State(), e.Difficulty(), e.Score())
	}
}

func TestAdvanceStopsAtGameOver(t *testing.T) {
	e := newRunning(t, config.DifficultyHard)
	setSnake(e, DirRight, Position{X: 17, Y: 5})
	setFood(e, Position{X: 0, Y: 0})

	events := e.Advance(nil, 10)
	if e.State() != StateGameOver {
		t.Fatal("expected game over within 10 ticks")
	}
	if e.Tick() != 3 {
		t.Errorf("Tick() = %d, expected Advance to stop at tick 3", e.Tick())
	}
	overs := 0
	for _, ev := range events {
		if _, ok := ev.(GameOver); ok {
			overs++
		}
	}
	if overs != 1 {
		t.Errorf("GameOver emitted %d times, expected once", overs)
	}
}

func TestTickIntervalPerDifficulty(t *testing.T) {
	tests := []struct {
		d    config.Difficulty
		want time.Duration
	}{
		{config.DifficultyEasy, 300 * time.Millisecond},
		{config.DifficultyMedium, 200 * time.Millisecond},
		{config.DifficultyHard, 100 * time.Millisecond},
		{config.DifficultyExtreme, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			e := newRunning(t, tc.d)
			if got := e.TickInterval(); got != tc.want {
				t.Errorf("TickInterval() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newRunning(t, config.DifficultyEasy)
	snap := e.Snapshot()
	snap.Snake[0] = Position{X: -5, Y: -5}
	if e.snake.Head() == (Position{X: -5, Y: -5}) {
		t.Error("mutating a snapshot must not affect the engine")
	}
}
