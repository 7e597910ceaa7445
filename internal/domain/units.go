package domain

import "math"

// Unit is a distance display unit.
type Unit string

const (
	UnitKm Unit = "km"
	UnitMi Unit = "mi"
)

// KmPerMile is the fixed conversion ratio between the two units.
const KmPerMile = 1.609344

// NormalizeUnit coerces any value that is not "mi" to "km".
func NormalizeUnit(s string) Unit {
	if Unit(s) == UnitMi {
		return UnitMi
	}
	return UnitKm
}

// Distance is a stored distance: a value plus the unit it was recorded in.
type Distance struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// In converts the distance into the target display unit. A zero or
// non-finite value yields 0. This is the single place cross-unit distance
// arithmetic happens.
func (d Distance) In(target Unit) float64 {
	v := d.Value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if d.Unit == target {
		return v
	}
	if target == UnitMi {
		return v / KmPerMile
	}
	return v * KmPerMile
}

// PaceSecPerUnit derives a pace in whole seconds per distance unit.
// A zero, negative, or non-finite distance yields 0 rather than dividing.
func PaceSecPerUnit(durationSec int, distanceInUnit float64) int {
	if distanceInUnit <= 0 || math.IsNaN(distanceInUnit) || math.IsInf(distanceInUnit, 0) {
		return 0
	}
	return int(math.Round(float64(durationSec) / distanceInUnit))
}
