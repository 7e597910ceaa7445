package domain

import (
	"math"
	"testing"
)

func TestDistanceInConvertsKmToMiles(t *testing.T) {
	t.Parallel()

	got := Distance{Value: 10, Unit: UnitKm}.In(UnitMi)
	if math.Abs(got-6.2137) > 0.0005 {
		t.Fatalf("10 km in miles = %v, want ~6.2137", got)
	}
}

func TestDistanceInSameUnitIsIdentity(t *testing.T) {
	t.Parallel()

	if got := (Distance{Value: 10, Unit: UnitKm}).In(UnitKm); got != 10 {
		t.Fatalf("10 km in km = %v, want exactly 10", got)
	}
	if got := (Distance{Value: 3.1, Unit: UnitMi}).In(UnitMi); got != 3.1 {
		t.Fatalf("3.1 mi in mi = %v, want exactly 3.1", got)
	}
}

func TestDistanceInMilesToKm(t *testing.T) {
	t.Parallel()

	got := Distance{Value: 5, Unit: UnitMi}.In(UnitKm)
	if math.Abs(got-8.04672) > 1e-9 {
		t.Fatalf("5 mi in km = %v, want 8.04672", got)
	}
}

func TestDistanceInZeroValue(t *testing.T) {
	t.Parallel()

	if got := (Distance{}).In(UnitKm); got != 0 {
		t.Fatalf("zero distance in km = %v, want 0", got)
	}
}

func TestPaceSecPerUnit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		durationSec int
		distance    float64
		want        int
	}{
		{1800, 5, 360},
		{1800, 0, 0},
		{1800, -3, 0},
		{1500, 5, 300},
		{1000, 3, 333},
	}
	for _, tc := range cases {
		if got := PaceSecPerUnit(tc.durationSec, tc.distance); got != tc.want {
			t.Fatalf("PaceSecPerUnit(%d, %v) = %d, want %d", tc.durationSec, tc.distance, got, tc.want)
		}
	}
}

func TestNormalizeUnit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Unit
	}{
		{"mi", UnitMi},
		{"km", UnitKm},
		{"", UnitKm},
		{"miles", UnitKm},
		{"MI", UnitKm},
	}
	for _, tc := range cases {
		if got := NormalizeUnit(tc.in); got != tc.want {
			t.Fatalf("NormalizeUnit(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
