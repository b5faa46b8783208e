package storage

import (
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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("zigzag", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game
	if _, err := store.SaveScore("zigzag_autopilot", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("zigzag", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}

	botScores, err := store.TopScores("zigzag_autopilot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(botScores) != 1 {
		t.Errorf("Expected 1 autopilot score, got %d", len(botScores))
	}
}

func TestStoreSaveRunFields(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "zigzag", Score: 42, Ticks: 3600, Seed: 7, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d, want positive", id)
	}

	runs, err := store.RecentRuns("zigzag", 1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Score != 42 || r.Ticks != 3600 || r.Seed != 7 || r.Difficulty != "hard" {
		t.Errorf("RecentRuns()[0] = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRunRejectsEmptyGameID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 1}); err == nil {
		t.Error("SaveRun() with empty game ID should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("zigzag", (i+1)*100)
	}

	scores, err := store.TopScores("zigzag", 3)
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

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "zigzag", Score: 10, Ticks: 900})
	store.SaveRun(Run{GameID: "zigzag", Score: 10, Ticks: 600})

	scores, err := store.TopScores("zigzag", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].Ticks != 600 {
		t.Errorf("shorter run should rank first, got ticks %d", scores[0].Ticks)
	}
}

func TestStoreRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		store.SaveScore("zigzag", i)
	}

	runs, err := store.RecentRuns("zigzag", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 3 || runs[1].Score != 2 {
		t.Errorf("RecentRuns() = %v, want latest first", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("zigzag")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("zigzag", 100)
	store.SaveScore("zigzag", 300)
	store.SaveScore("zigzag", 200)

	high, err = store.HighScore("zigzag")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("zigzag", 100)
	store.SaveScore("zigzag", 200)
	store.SaveScore("zigzag_autopilot", 300)

	if err := store.ClearScores("zigzag"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("zigzag", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	botScores, _ := store.TopScores("zigzag_autopilot", 10)
	if len(botScores) != 1 {
		t.Errorf("Autopilot scores should not be affected by clearing zigzag")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("zigzag")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "zigzag", Score: 10, Ticks: 100})
	store.SaveRun(Run{GameID: "zigzag", Score: 30, Ticks: 400})
	store.SaveRun(Run{GameID: "zigzag_autopilot", Score: 99, Ticks: 5000})

	stats, err := store.GetGameStats("zigzag")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.LongestRun != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["zigzag_autopilot"].LongestRun != 5000 {
		t.Errorf("autopilot LongestRun = %d, want 5000", all["zigzag_autopilot"].LongestRun)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

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
