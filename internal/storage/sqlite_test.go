package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Nested directories are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("Easy", s, s/10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("Hard", 500, 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("Easy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
		if scores[i].Difficulty != "Easy" || scores[i].Length != w/10 {
			t.Errorf("scores[%d] = %+v", i, scores[i])
		}
	}

	hard, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("Expected 1 Hard score, got %d", len(hard))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("Medium", (i+1)*100, 1)
	}

	scores, err := store.TopScores("Medium", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScores(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("Extreme")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an unplayed difficulty, got %d", high)
	}

	store.SaveScore("Extreme", 10, 3)
	store.SaveScore("Extreme", 30, 5)
	store.SaveScore("Easy", 4, 2)

	all, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	want := map[string]int{"Easy": 4, "Medium": 0, "Hard": 0, "Extreme": 30}
	for k, v := range want {
		if all[k] != v {
			t.Errorf("HighScores()[%s] = %d, expected %d", k, all[k], v)
		}
	}
}

func TestStoreRecord(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score int
		isNew bool
	}{
		{5, true},
		{3, false},
		{5, false},
		{9, true},
	}
	for _, tc := range tests {
		isNew, err := store.RecordEpisode("Medium", tc.score, 2)
		if err != nil {
			t.Fatalf("RecordEpisode() failed: %v", err)
		}
		if isNew != tc.isNew {
			t.Errorf("RecordEpisode(%d) = %v, expected %v", tc.score, isNew, tc.isNew)
		}
	}

	all, _ := store.TopScores("Medium", 0)
	if len(all) != len(tests) {
		t.Errorf("every episode should be kept, got %d", len(all))
	}
}

func TestStoreUnknownDifficulty(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("Nightmare", 1, 1); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("SaveScore() error = %v, expected ErrUnknownDifficulty", err)
	}
	if _, err := store.Record("", 1); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Record() error = %v, expected ErrUnknownDifficulty", err)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("Easy", 100, 1)
	store.SaveScore("Easy", 200, 1)
	store.SaveScore("Hard", 300, 1)

	if err := store.ClearScores("Easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("Easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 Easy scores after clear, got %d", len(easy))
	}
	hard, _ := store.TopScores("Hard", 10)
	if len(hard) != 1 {
		t.Error("Hard scores should not be affected by clearing Easy")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(\"\") failed: %v", err)
	}
	hard, _ = store.TopScores("Hard", 10)
	if len(hard) != 0 {
		t.Error("ClearScores(\"\") should clear every difficulty")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("Hard", 10, 4)
	store.SaveScore("Hard", 20, 9)

	stats, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	hard, ok := stats["Hard"]
	if !ok {
		t.Fatal("expected Hard stats")
	}
	if hard.GamesCount != 2 || hard.HighScore != 20 || hard.AvgScore != 15 || hard.LongestRun != 9 {
		t.Errorf("stats = %+v", hard)
	}
	if _, ok := stats["Easy"]; ok {
		t.Error("unplayed difficulties should be absent")
	}
}
