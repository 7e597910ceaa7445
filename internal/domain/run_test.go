package domain

import (
	"testing"
	"time"
)

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()

	t1 := time.Date(2024, time.January, 3, 8, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, time.January, 3, 18, 0, 0, 0, time.UTC)

	runs := []Run{
		{ID: "old", Date: "2024-01-01", CreatedAt: t1},
		{ID: "first", Date: "2024-01-03", CreatedAt: t1},
		{ID: "second", Date: "2024-01-03", CreatedAt: t2},
	}

	got := SortNewestFirst(runs)
	want := []string{"second", "first", "old"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q (full order %v)", i, got[i].ID, id, ids(got))
		}
	}

	// Input must be untouched.
	if runs[0].ID != "old" {
		t.Fatal("SortNewestFirst mutated its input")
	}
}

func TestEnumValidity(t *testing.T) {
	t.Parallel()

	for _, e := range EffortOptions() {
		if !e.Valid() {
			t.Fatalf("effort %q should be valid", e)
		}
	}
	for _, s := range WorkoutStyleOptions() {
		if !s.Valid() {
			t.Fatalf("style %q should be valid", s)
		}
	}
	for _, s := range SurfaceOptions() {
		if !s.Valid() {
			t.Fatalf("surface %q should be valid", s)
		}
	}

	if Effort("Extreme").Valid() {
		t.Fatal("effort \"Extreme\" should be invalid")
	}
	if WorkoutStyle("Fartlek").Valid() {
		t.Fatal("style \"Fartlek\" should be invalid")
	}
	if Surface("Sand").Valid() {
		t.Fatal("surface \"Sand\" should be invalid")
	}
	if Effort("").Valid() {
		t.Fatal("empty effort should be invalid")
	}
}
