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

func mustSave(t *testing.T, store *Store, r Run) {
	t.Helper()
	if _, err := store.SaveScore(r); err != nil {
		t.Fatalf("SaveScore(%+v) failed: %v", r, err)
	}
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Run{GameID: "match3", Score: 120, GridSize: 8})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d, want 120 after reopen", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "match3", Player: "ana", Score: 100, GridSize: 6, Matches: 10, Moves: 30})
	mustSave(t, store, Run{GameID: "match3", Score: 50, GridSize: 8, Matches: 5, Moves: 30})
	mustSave(t, store, Run{GameID: "match3", Score: 200, GridSize: 8, Matches: 20, Moves: 30})
	mustSave(t, store, Run{GameID: "match3_endless", Score: 500, GridSize: 12, Matches: 50, Moves: 77})

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 match3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, s.Score, want[i])
		}
		if s.GameID != "match3" {
			t.Errorf("scores[%d].GameID = %q", i, s.GameID)
		}
	}

	if scores[1].Player != "ana" || scores[1].GridSize != 6 || scores[1].Matches != 10 || scores[1].Moves != 30 {
		t.Errorf("run details not round-tripped: %+v", scores[1])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreSaveRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(Run{Score: 10}); err == nil {
		t.Error("SaveScore without a game ID should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, Run{GameID: "match3", Score: (i + 1) * 100, GridSize: 8})
	}

	scores, err := store.TopScores("match3", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("match3", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("non-positive limit should default to 10, got %d rows", len(all))
	}
}

func TestStoreTopScoresForSize(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "match3", Score: 300, GridSize: 12})
	mustSave(t, store, Run{GameID: "match3", Score: 90, GridSize: 4})
	mustSave(t, store, Run{GameID: "match3", Score: 40, GridSize: 4})

	scores, err := store.TopScoresForSize("match3", 4, 10)
	if err != nil {
		t.Fatalf("TopScoresForSize() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 90 || scores[1].Score != 40 {
		t.Errorf("TopScoresForSize(4) = %v, want [90 40]", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		mustSave(t, store, Run{GameID: "match3", Score: score, GridSize: 8})
	}

	high, err = store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Run{GameID: "match3", Score: 100})
	mustSave(t, store, Run{GameID: "match3", Score: 200})
	mustSave(t, store, Run{GameID: "match3_endless", Score: 300})

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	limited, _ := store.TopScores("match3", 10)
	if len(limited) != 0 {
		t.Errorf("expected 0 match3 scores after clear, got %d", len(limited))
	}

	endless, _ := store.TopScores("match3_endless", 10)
	if len(endless) != 1 {
		t.Error("endless scores should not be affected by clearing match3")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		mustSave(t, store, Run{GameID: "match3", Score: i * 10})
	}

	scores, err := store.AllScores("match3")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("expected 20 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("AllScores should be ordered highest first, got %d", scores[0].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Run{GameID: "match3", Score: 100, Matches: 10})
	mustSave(t, store, Run{GameID: "match3", Score: 300, Matches: 30})
	mustSave(t, store, Run{GameID: "match3_endless", Score: 50, Matches: 5})

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 || stats.TotalMatches != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["match3_endless"].HighScore != 50 || all["match3_endless"].GamesCount != 1 {
		t.Errorf("endless stats = %+v", all["match3_endless"])
	}
}
