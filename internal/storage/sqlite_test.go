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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSolve(Solve{GameID: "sokoban", LevelID: "a", Moves: 5, Pushes: 1}); err != nil {
		t.Fatalf("SaveSolve() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, err := store.Best("sokoban", "a")
	if err != nil || best == nil || best.Moves != 5 {
		t.Errorf("Best() = %+v, %v", best, err)
	}
}

func TestStoreBestSolvesOrdering(t *testing.T) {
	store := openTestStore(t)

	solves := []Solve{
		{GameID: "sokoban", LevelID: "classic-03", Player: "ann", Moves: 40, Pushes: 9},
		{GameID: "sokoban", LevelID: "classic-03", Player: "bob", Moves: 33, Pushes: 10},
		{GameID: "sokoban", LevelID: "classic-03", Player: "cid", Moves: 33, Pushes: 8},
		{GameID: "sokoban", LevelID: "classic-03", Player: "dee", Moves: 33, Pushes: 8},
		{GameID: "sokoban", LevelID: "classic-04", Player: "ann", Moves: 16, Pushes: 4},
	}
	for _, s := range solves {
		if _, err := store.SaveSolve(s); err != nil {
			t.Fatalf("SaveSolve() failed: %v", err)
		}
	}

	got, err := store.BestSolves("sokoban", "classic-03", 10)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}

	wantPlayers := []string{"cid", "dee", "bob", "ann"}
	if len(got) != len(wantPlayers) {
		t.Fatalf("Expected %d solves, got %d", len(wantPlayers), len(got))
	}
	for i, p := range wantPlayers {
		if got[i].Player != p {
			t.Errorf("rank %d: player %s, want %s", i+1, got[i].Player, p)
		}
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	limited, err := store.BestSolves("sokoban", "classic-03", 2)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 solves with limit, got %d", len(limited))
	}
}

func TestStoreBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best("sokoban", "missing")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil for unsolved level, got %+v", best)
	}

	store.SaveSolve(Solve{GameID: "sokoban", LevelID: "x", Moves: 12, Pushes: 3})
	store.SaveSolve(Solve{GameID: "sokoban", LevelID: "x", Moves: 10, Pushes: 5})

	best, err = store.Best("sokoban", "x")
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best == nil || best.Moves != 10 || best.Pushes != 5 {
		t.Errorf("Best() = %+v, want 10 moves 5 pushes", best)
	}
}

func TestStoreSaveSolveValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSolve(Solve{GameID: "sokoban"}); err == nil {
		t.Error("expected error for missing level ID")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(Solve{GameID: "sokoban", LevelID: "b", Moves: 20, Pushes: 2})
	store.SaveSolve(Solve{GameID: "sokoban", LevelID: "a", Moves: 9, Pushes: 4})
	store.SaveSolve(Solve{GameID: "sokoban", LevelID: "a", Moves: 7, Pushes: 6})
	store.SaveSolve(Solve{GameID: "other", LevelID: "a", Moves: 1, Pushes: 1})

	stats, err := store.LevelStats("sokoban")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(stats))
	}

	a := stats[0]
	if a.LevelID != "a" || a.Solves != 2 || a.BestMoves != 7 || a.BestPushes != 4 {
		t.Errorf("stats[a] = %+v", a)
	}
	if time.Since(a.LastSolved) > 24*time.Hour {
		t.Errorf("LastSolved = %v, want recent", a.LastSolved)
	}
	if stats[1].LevelID != "b" || stats[1].Solves != 1 {
		t.Errorf("stats[b] = %+v", stats[1])
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveSolve(Solve{GameID: "sokoban", LevelID: "a", Moves: 1, Pushes: 1})
	store.SaveSolve(Solve{GameID: "sokoban", LevelID: "b", Moves: 1, Pushes: 1})

	if err := store.ClearLevel("sokoban", "a"); err != nil {
		t.Fatalf("ClearLevel() failed: %v", err)
	}
	if best, _ := store.Best("sokoban", "a"); best != nil {
		t.Error("level a should be cleared")
	}
	if best, _ := store.Best("sokoban", "b"); best == nil {
		t.Error("level b should be untouched")
	}

	if err := store.ClearGame("sokoban"); err != nil {
		t.Fatalf("ClearGame() failed: %v", err)
	}
	if stats, _ := store.LevelStats("sokoban"); len(stats) != 0 {
		t.Errorf("Expected no stats after ClearGame, got %d", len(stats))
	}
}
