// Package stats computes dashboard and statistics KPIs over a run
// collection. All functions are pure: they take the runs, the display unit,
// and (where period windows apply) an explicit reference instant, and never
// touch persistence.
package stats

import (
	"math"
	"time"

	"github.com/runtrackapp/runtrack/internal/domain"
)

// Highlight is a single run selected by an aggregation, with its distance
// converted to the display unit and its derived pace.
type Highlight struct {
	Run      domain.Run
	Distance float64
	PaceSec  int
}

func highlight(r domain.Run, unit domain.Unit) *Highlight {
	dist := r.Distance.In(unit)
	return &Highlight{
		Run:      r,
		Distance: dist,
		PaceSec:  domain.PaceSecPerUnit(r.DurationSec, dist),
	}
}

// DashboardStats are the KPIs shown on the dashboard view.
type DashboardStats struct {
	Unit               domain.Unit
	WeekDistance       float64 // total distance of this week's runs, display unit
	WeekRunCount       int
	WeekAvgDurationSec int // 0 when the week has no runs
	MonthRunCount      int
	Latest             *Highlight // newest run by date, createdAt tie-break; nil when empty
	BestThisMonth      *Highlight // max converted distance this month; ties keep the first seen
}

// Dashboard computes the dashboard KPIs over all runs relative to now.
func Dashboard(runs []domain.Run, unit domain.Unit, now time.Time) DashboardStats {
	out := DashboardStats{Unit: unit}

	var weekDurationSec int
	var bestDist float64 = -1
	var best *domain.Run

	for i := range runs {
		r := runs[i]
		if domain.InPeriod(r.Date, domain.PeriodWeek, now) {
			out.WeekRunCount++
			out.WeekDistance += r.Distance.In(unit)
			weekDurationSec += r.DurationSec
		}
		if domain.InPeriod(r.Date, domain.PeriodMonth, now) {
			out.MonthRunCount++
			if d := r.Distance.In(unit); d > bestDist {
				bestDist = d
				best = &runs[i]
			}
		}
	}

	if out.WeekRunCount > 0 {
		out.WeekAvgDurationSec = int(math.Round(float64(weekDurationSec) / float64(out.WeekRunCount)))
	}
	if best != nil {
		out.BestThisMonth = highlight(*best, unit)
	}
	if len(runs) > 0 {
		newest := domain.SortNewestFirst(runs)
		out.Latest = highlight(newest[0], unit)
	}
	return out
}

// Summary are the statistics-view KPIs for an already period- and
// filter-selected subset of runs.
type Summary struct {
	Unit             domain.Unit
	Count            int
	TotalDistance    float64
	TotalDurationSec int
	AvgPaceSec       int        // 0 when total distance is 0
	Longest          *Highlight // max converted distance; ties keep the first seen
	Fastest          *Highlight // min per-run pace; zero-distance runs never win
}

// Summarize computes the statistics KPIs over runs in the display unit.
func Summarize(runs []domain.Run, unit domain.Unit) Summary {
	out := Summary{Unit: unit, Count: len(runs)}

	var longest *domain.Run
	var longestDist float64 = -1
	var fastest *domain.Run
	fastestPace := math.Inf(1)

	for i := range runs {
		r := runs[i]
		dist := r.Distance.In(unit)
		out.TotalDistance += dist
		out.TotalDurationSec += r.DurationSec

		if dist > longestDist {
			longestDist = dist
			longest = &runs[i]
		}

		// A zero-distance run has no meaningful pace and must not be
		// selected as fastest.
		pace := math.Inf(1)
		if dist > 0 {
			pace = float64(r.DurationSec) / dist
		}
		if pace < fastestPace {
			fastestPace = pace
			fastest = &runs[i]
		}
	}

	if out.TotalDistance > 0 {
		out.AvgPaceSec = int(math.Round(float64(out.TotalDurationSec) / out.TotalDistance))
	}
	if longest != nil {
		out.Longest = highlight(*longest, unit)
	}
	if fastest != nil {
		out.Fastest = highlight(*fastest, unit)
	}
	return out
}
