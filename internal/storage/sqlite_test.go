package storage

import (
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndQueryResults(t *testing.T) {
	store := testStore(t)

	saved := []Result{
		{LevelID: 1, Outcome: "clear", TimeRemaining: 12, DurationSecs: 18},
		{LevelID: 1, Outcome: "caught", TimeRemaining: 20, DurationSecs: 10},
		{LevelID: 1, Outcome: "clear", TimeRemaining: 5, DurationSecs: 25},
		{LevelID: 2, Outcome: "time up", TimeRemaining: 0, DurationSecs: 30},
	}
	for i, r := range saved {
		id, err := store.SaveResult(r)
		if err != nil {
			t.Fatalf("SaveResult %d failed: %v", i, err)
		}
		if id <= 0 {
			t.Fatalf("SaveResult %d returned id %d", i, id)
		}
	}

	results, err := store.Results(1, 10)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results for level 1, expected 3", len(results))
	}
	// Ordered by time remaining, best first.
	if results[0].TimeRemaining != 20 || results[1].TimeRemaining != 12 || results[2].TimeRemaining != 5 {
		t.Errorf("unexpected ordering: %d, %d, %d",
			results[0].TimeRemaining, results[1].TimeRemaining, results[2].TimeRemaining)
	}
	if results[0].Outcome != "caught" {
		t.Errorf("outcome = %q, expected %q", results[0].Outcome, "caught")
	}
}

func TestResultsLimit(t *testing.T) {
	store := testStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(Result{LevelID: 1, Outcome: "clear", TimeRemaining: i}); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	results, err := store.Results(1, 3)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("got %d results, expected the limit of 3", len(results))
	}
}

func TestRecentResultsSpansLevels(t *testing.T) {
	store := testStore(t)

	for _, levelID := range []int{1, 2, 3} {
		if _, err := store.SaveResult(Result{LevelID: levelID, Outcome: "aborted"}); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("got %d results, expected 3", len(results))
	}
}

func TestBestRemainingCountsOnlyClears(t *testing.T) {
	store := testStore(t)

	best, err := store.BestRemaining(1)
	if err != nil {
		t.Fatalf("BestRemaining failed: %v", err)
	}
	if best != 0 {
		t.Errorf("best = %d for an empty store, expected 0", best)
	}

	for _, r := range []Result{
		{LevelID: 1, Outcome: "caught", TimeRemaining: 25},
		{LevelID: 1, Outcome: "clear", TimeRemaining: 8},
		{LevelID: 1, Outcome: "clear", TimeRemaining: 14},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	best, err = store.BestRemaining(1)
	if err != nil {
		t.Fatalf("BestRemaining failed: %v", err)
	}
	if best != 14 {
		t.Errorf("best = %d, expected 14 (the caught session must not count)", best)
	}
}

func TestClearResults(t *testing.T) {
	store := testStore(t)

	if _, err := store.SaveResult(Result{LevelID: 1, Outcome: "clear", TimeRemaining: 9}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if _, err := store.SaveResult(Result{LevelID: 2, Outcome: "clear", TimeRemaining: 7}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	if err := store.ClearResults(1); err != nil {
		t.Fatalf("ClearResults failed: %v", err)
	}

	results, err := store.Results(1, 10)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("level 1 still has %d results after clearing", len(results))
	}

	results, err = store.Results(2, 10)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("level 2 has %d results, expected its result to survive", len(results))
	}
}

func TestGetLevelStats(t *testing.T) {
	store := testStore(t)

	stats, err := store.GetLevelStats(1)
	if err != nil {
		t.Fatalf("GetLevelStats failed: %v", err)
	}
	if stats.Sessions != 0 || stats.Clears != 0 || stats.BestRemain != 0 {
		t.Errorf("empty store stats = %+v, expected zeros", stats)
	}

	for _, r := range []Result{
		{LevelID: 1, Outcome: "clear", TimeRemaining: 11},
		{LevelID: 1, Outcome: "time up", TimeRemaining: 0},
		{LevelID: 1, Outcome: "clear", TimeRemaining: 6},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult failed: %v", err)
		}
	}

	stats, err = store.GetLevelStats(1)
	if err != nil {
		t.Fatalf("GetLevelStats failed: %v", err)
	}
	if stats.Sessions != 3 {
		t.Errorf("Sessions = %d, expected 3", stats.Sessions)
	}
	if stats.Clears != 2 {
		t.Errorf("Clears = %d, expected 2", stats.Clears)
	}
	if stats.BestRemain != 11 {
		t.Errorf("BestRemain = %d, expected 11", stats.BestRemain)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed is zero after recorded sessions")
	}
}
