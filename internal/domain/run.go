// Package domain holds the run data model: the Run record, its categorical
// enums, distance/unit arithmetic, period classification, and filtering.
// Everything here is a plain value type or a pure function.
package domain

import (
	"sort"
	"time"
)

// Effort is the subjective effort level of a run.
type Effort string

const (
	EffortEasy     Effort = "Easy"
	EffortModerate Effort = "Moderate"
	EffortHard     Effort = "Hard"
)

// EffortOptions lists the valid effort values in presentation order.
func EffortOptions() []Effort {
	return []Effort{EffortEasy, EffortModerate, EffortHard}
}

// Valid reports whether e is a recognized effort level.
func (e Effort) Valid() bool {
	switch e {
	case EffortEasy, EffortModerate, EffortHard:
		return true
	default:
		return false
	}
}

// WorkoutStyle classifies the kind of workout a run was.
type WorkoutStyle string

const (
	StyleRecovery WorkoutStyle = "Recovery"
	StyleEasy     WorkoutStyle = "Easy"
	StyleSteady   WorkoutStyle = "Steady"
	StyleTempo    WorkoutStyle = "Tempo"
	StyleInterval WorkoutStyle = "Interval"
	StyleRace     WorkoutStyle = "Race"
)

// WorkoutStyleOptions lists the valid workout styles in presentation order.
func WorkoutStyleOptions() []WorkoutStyle {
	return []WorkoutStyle{StyleRecovery, StyleEasy, StyleSteady, StyleTempo, StyleInterval, StyleRace}
}

// Valid reports whether s is a recognized workout style.
func (s WorkoutStyle) Valid() bool {
	switch s {
	case StyleRecovery, StyleEasy, StyleSteady, StyleTempo, StyleInterval, StyleRace:
		return true
	default:
		return false
	}
}

// Surface is the surface a run took place on.
type Surface string

const (
	SurfaceRoad      Surface = "Road"
	SurfaceTrail     Surface = "Trail"
	SurfaceTreadmill Surface = "Treadmill"
	SurfaceTrack     Surface = "Track"
	SurfaceMixed     Surface = "Mixed"
)

// SurfaceOptions lists the valid surfaces in presentation order.
func SurfaceOptions() []Surface {
	return []Surface{SurfaceRoad, SurfaceTrail, SurfaceTreadmill, SurfaceTrack, SurfaceMixed}
}

// Valid reports whether s is a recognized surface.
func (s Surface) Valid() bool {
	switch s {
	case SurfaceRoad, SurfaceTrail, SurfaceTreadmill, SurfaceTrack, SurfaceMixed:
		return true
	default:
		return false
	}
}

// DateLayout is the calendar-date form runs are keyed by.
const DateLayout = "2006-01-02"

// Run is one recorded running session. Runs are append-only: once persisted
// they are never updated, only deleted.
type Run struct {
	ID           string         `json:"id"`
	Date         string         `json:"date"` // YYYY-MM-DD, when the run occurred
	Distance     Distance       `json:"distance"`
	DurationSec  int            `json:"durationSec"`
	Notes        string         `json:"notes"`
	MapData      map[string]any `json:"map_data"` // reserved, empty object by default
	Effort       Effort         `json:"effort"`
	WorkoutStyle WorkoutStyle   `json:"workoutStyle"`
	Surface      Surface        `json:"surface"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// SortNewestFirst returns a copy of runs ordered by run date descending,
// ties broken by createdAt descending. This is the ordering used wherever a
// single "latest" or most-recent-first view is needed.
func SortNewestFirst(runs []Run) []Run {
	out := make([]Run, len(runs))
	copy(out, runs)
	sort.SliceStable(out, func(i, j int) bool {
		// ISO dates compare correctly as strings.
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
