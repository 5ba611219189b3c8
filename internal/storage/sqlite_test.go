package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRunAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{GameID: "blockfall", Score: 1000, Lines: 4, Duration: 95 * time.Second},
		{GameID: "blockfall", Score: 500, Lines: 1, Duration: 30 * time.Second},
		{GameID: "blockfall", Score: 2000, Lines: 12, Duration: 3*time.Minute + 250*time.Millisecond},
		{GameID: "blockfall_loose", Score: 5000, Lines: 20, Duration: time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("blockfall", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}

	want := []struct {
		score, lines int
		duration     time.Duration
	}{
		{2000, 12, 3*time.Minute + 250*time.Millisecond},
		{1000, 4, 95 * time.Second},
		{500, 1, 30 * time.Second},
	}
	for i, w := range want {
		e := scores[i]
		if e.Score != w.score || e.Lines != w.lines || e.Duration != w.duration {
			t.Errorf("scores[%d] = %d/%d/%v, expected %d/%d/%v",
				i, e.Score, e.Lines, e.Duration, w.score, w.lines, w.duration)
		}
		if e.GameID != "blockfall" {
			t.Errorf("scores[%d].GameID = %q, expected blockfall", i, e.GameID)
		}
	}

	loose, err := store.TopScores("blockfall_loose", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(loose) != 1 {
		t.Errorf("TopScores(blockfall_loose) returned %d entries, expected 1", len(loose))
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}
	firstTie, _ := store.SaveScore("test", 500)

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 500 || scores[2].Score != 400 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	// equal scores keep insertion order
	if scores[1].ID != firstTie {
		t.Errorf("scores[1].ID = %d, expected %d", scores[1].ID, firstTie)
	}

	if all, _ := store.TopScores("test", 0); len(all) != 6 {
		t.Errorf("TopScores(limit 0) returned %d entries, expected the default limit to cover 6", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}

	store.SaveScore("blockfall", 100)
	store.SaveScore("blockfall", 300)
	store.SaveScore("blockfall", 200)

	high, err = store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blockfall", 100)
	store.SaveScore("blockfall", 200)
	store.SaveScore("blockfall_loose", 300)

	if err := store.ClearScores("blockfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("blockfall", 10); len(scores) != 0 {
		t.Errorf("TopScores() after clear returned %d entries, expected 0", len(scores))
	}
	if scores, _ := store.TopScores("blockfall_loose", 10); len(scores) != 1 {
		t.Error("clearing one variant affected another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("blockfall")
	if err != nil {
		t.Fatalf("GameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GameStats() on empty table = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "blockfall", Score: 100, Lines: 2, Duration: time.Minute})
	store.SaveRun(RunRecord{GameID: "blockfall", Score: 300, Lines: 7, Duration: 2 * time.Minute})

	stats, err := store.GameStats("blockfall")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.BestLines != 7 || stats.TotalLines != 9 {
		t.Errorf("lines = best %d total %d, expected 7 and 9", stats.BestLines, stats.TotalLines)
	}
	if stats.PlayTime != 3*time.Minute {
		t.Errorf("PlayTime = %v, expected 3m", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed is zero after saving runs")
	}
}
