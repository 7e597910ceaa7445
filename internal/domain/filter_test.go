package domain

import "testing"

func filterFixture() []Run {
	return []Run{
		{ID: "a", Effort: EffortEasy, WorkoutStyle: StyleRecovery, Surface: SurfaceRoad},
		{ID: "b", Effort: EffortHard, WorkoutStyle: StyleTempo, Surface: SurfaceTrack},
		{ID: "c", Effort: EffortHard, WorkoutStyle: StyleInterval, Surface: SurfaceRoad},
	}
}

func ids(runs []Run) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.ID
	}
	return out
}

func TestApplySingleFilterPreservesOrder(t *testing.T) {
	t.Parallel()

	f := Filters{Effort: "Hard", WorkoutStyle: FilterAll, Surface: FilterAll}
	got := ids(f.Apply(filterFixture()))
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected [b c], got %v", got)
	}
}

func TestApplyAllFiltersMatchesEverything(t *testing.T) {
	t.Parallel()

	f := Filters{Effort: FilterAll, WorkoutStyle: FilterAll, Surface: FilterAll}
	if got := f.Apply(filterFixture()); len(got) != 3 {
		t.Fatalf("expected all 3 runs, got %d", len(got))
	}
}

func TestApplyZeroValueFiltersMatchEverything(t *testing.T) {
	t.Parallel()

	if got := (Filters{}).Apply(filterFixture()); len(got) != 3 {
		t.Fatalf("expected all 3 runs, got %d", len(got))
	}
}

func TestApplyCombinedFilters(t *testing.T) {
	t.Parallel()

	f := Filters{Effort: "Hard", Surface: "Road"}
	got := ids(f.Apply(filterFixture()))
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("expected [c], got %v", got)
	}
}

func TestApplyNoMatch(t *testing.T) {
	t.Parallel()

	f := Filters{Effort: "Moderate"}
	if got := f.Apply(filterFixture()); len(got) != 0 {
		t.Fatalf("expected no runs, got %v", ids(got))
	}
}
