package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Score: 100, Level: 2, Destroyed: 5, Shots: 10, Accuracy: 50, Duration: 30},
		{Score: 50, Level: 1, Destroyed: 2, Shots: 8, Accuracy: 25, Duration: 15},
		{Score: 200, Level: 3, Destroyed: 12, Shots: 20, Accuracy: 60, Duration: 90},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Should be sorted descending by score
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Results not in score order: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}

	// Session details round-trip
	if top[0].Level != 3 || top[0].Destroyed != 12 || top[0].Shots != 20 {
		t.Errorf("Session details lost: %+v", top[0])
	}
	if top[0].Accuracy != 60 || top[0].Duration != 90 {
		t.Errorf("Accuracy/duration lost: %+v", top[0])
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{Score: (i + 1) * 100})
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", top)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 100, 200} {
		store.SaveResult(Result{Score: score})
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []int{300, 200, 100}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i], want[i])
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveResult(Result{Score: 100})
	store.SaveResult(Result{Score: 300})
	store.SaveResult(Result{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Score: 100})
	store.SaveResult(Result{Score: 200})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, _ := store.TopResults(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(top))
	}
}

func TestStoreGetStats(t *testing.T) {
	store := openTestStore(t)

	// Empty store returns zeroed stats
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("Empty store should have zero stats, got %+v", stats)
	}

	store.SaveResult(Result{Score: 100, Level: 2, Accuracy: 40})
	store.SaveResult(Result{Score: 300, Level: 5, Accuracy: 60})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %.1f", stats.AvgScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("Expected best level 5, got %d", stats.BestLevel)
	}
	if stats.AvgAccuracy != 50 {
		t.Errorf("Expected average accuracy 50, got %.1f", stats.AvgAccuracy)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
