package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/land/internal/core"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.land/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".land", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveSessionAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sessions := []core.SessionResult{
		{Score: 130, Stage: 2, Variant: "classic", Range: 1},
		{Score: 52, Stage: 1, Variant: "classic", Range: 4},
		{Score: 260, Stage: 3, Variant: "caverns", Range: 7},
	}
	for _, r := range sessions {
		if _, err := store.SaveSession("land", r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	scores, err := store.TopScores("land", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 260 || scores[1].Score != 130 || scores[2].Score != 52 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	top := scores[0]
	if top.GameID != "land" || top.Bank != "caverns" || top.Stage != 3 || top.Range != 7 {
		t.Errorf("session fields not round-tripped: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopBankScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("land", core.SessionResult{Score: 100, Stage: 1, Variant: "classic"})
	store.SaveSession("land", core.SessionResult{Score: 300, Stage: 2, Variant: "caverns"})
	store.SaveSession("land", core.SessionResult{Score: 200, Stage: 3, Variant: "classic"})

	scores, err := store.TopBankScores("land", "classic", 10)
	if err != nil {
		t.Fatalf("TopBankScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 classic scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 {
		t.Errorf("Unexpected classic scores: %v", scores)
	}

	none, err := store.TopBankScores("land", "unknown", 10)
	if err != nil {
		t.Fatalf("TopBankScores() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no scores for unknown bank, got %d", len(none))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession("test", core.SessionResult{Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10
	for i := 0; i < 10; i++ {
		store.SaveSession("test", core.SessionResult{Score: i})
	}
	scores, _ = store.TopScores("test", 0)
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScoreAndBestStage(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("land")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}
	stage, err := store.BestStage("land", "classic")
	if err != nil {
		t.Fatalf("BestStage() failed: %v", err)
	}
	if stage != 0 {
		t.Errorf("Expected best stage 0, got %d", stage)
	}

	store.SaveSession("land", core.SessionResult{Score: 100, Stage: 3, Variant: "classic"})
	store.SaveSession("land", core.SessionResult{Score: 300, Stage: 1, Variant: "classic"})
	store.SaveSession("land", core.SessionResult{Score: 200, Stage: 2, Variant: "caverns"})

	if high, _ = store.HighScore("land"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if stage, _ = store.BestStage("land", "classic"); stage != 3 {
		t.Errorf("Expected best classic stage 3, got %d", stage)
	}
}

func TestStoreBanks(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("land", core.SessionResult{Score: 10}) // no bank
	store.SaveSession("land", core.SessionResult{Score: 1, Variant: "classic"})
	store.SaveSession("land", core.SessionResult{Score: 2, Variant: "caverns"})
	store.SaveSession("land", core.SessionResult{Score: 3, Variant: "classic"})

	banks, err := store.Banks("land")
	if err != nil {
		t.Fatalf("Banks() failed: %v", err)
	}
	if len(banks) != 2 || banks[0] != "caverns" || banks[1] != "classic" {
		t.Errorf("Banks() = %v, want [caverns classic]", banks)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("land", core.SessionResult{Score: 100})
	store.SaveSession("land", core.SessionResult{Score: 200})
	store.SaveSession("other", core.SessionResult{Score: 300})

	if err := store.ClearScores("land"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("land", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Errorf("Other games should not be affected by clearing land")
	}
}

func TestStoreGetGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("land")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveSession("land", core.SessionResult{Score: 100})
	store.SaveSession("land", core.SessionResult{Score: 300})

	stats, err = store.GetGameStats("land")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
