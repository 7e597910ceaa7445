package api

import (
	"net/http"

	"github.com/runtrackapp/runtrack/internal/stats"
	"github.com/runtrackapp/runtrack/internal/timefmt"
)

type highlightResponse struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Distance float64 `json:"distance"`
	Duration string  `json:"duration"`
	PaceSec  int     `json:"pace_sec"`
	Pace     string  `json:"pace"`
}

func highlightToResponse(h *stats.Highlight) *highlightResponse {
	if h == nil {
		return nil
	}
	return &highlightResponse{
		ID:       h.Run.ID,
		Date:     h.Run.Date,
		Distance: h.Distance,
		Duration: timefmt.FormatDuration(float64(h.Run.DurationSec)),
		PaceSec:  h.PaceSec,
		Pace:     timefmt.FormatPace(float64(h.PaceSec)),
	}
}

type dashboardResponse struct {
	Unit               string             `json:"unit"`
	WeekDistance       float64            `json:"week_distance"`
	WeekRunCount       int                `json:"week_run_count"`
	WeekAvgDurationSec int                `json:"week_avg_duration_sec"`
	WeekAvgDuration    string             `json:"week_avg_duration"`
	MonthRunCount      int                `json:"month_run_count"`
	Latest             *highlightResponse `json:"latest,omitempty"`
	BestThisMonth      *highlightResponse `json:"best_this_month,omitempty"`
}

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	ctx := r.Context()

	runs, err := a.Repo.ListRuns(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list runs"})
		return
	}
	unit, err := a.Repo.Unit(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read settings"})
		return
	}

	d := stats.Dashboard(runs, unit, a.now())
	writeJSON(w, http.StatusOK, dashboardResponse{
		Unit:               string(d.Unit),
		WeekDistance:       d.WeekDistance,
		WeekRunCount:       d.WeekRunCount,
		WeekAvgDurationSec: d.WeekAvgDurationSec,
		WeekAvgDuration:    timefmt.FormatDuration(float64(d.WeekAvgDurationSec)),
		MonthRunCount:      d.MonthRunCount,
		Latest:             highlightToResponse(d.Latest),
		BestThisMonth:      highlightToResponse(d.BestThisMonth),
	})
}
