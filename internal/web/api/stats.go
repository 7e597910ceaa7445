package api

import (
	"net/http"

	"github.com/runtrackapp/runtrack/internal/domain"
	"github.com/runtrackapp/runtrack/internal/stats"
	"github.com/runtrackapp/runtrack/internal/timefmt"
)

type statsResponse struct {
	Unit             string             `json:"unit"`
	Period           string             `json:"period"`
	Count            int                `json:"count"`
	TotalDistance    float64            `json:"total_distance"`
	TotalDurationSec int                `json:"total_duration_sec"`
	TotalDuration    string             `json:"total_duration"`
	AvgPaceSec       int                `json:"avg_pace_sec"`
	AvgPace          string             `json:"avg_pace"`
	Longest          *highlightResponse `json:"longest,omitempty"`
	Fastest          *highlightResponse `json:"fastest,omitempty"`
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
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

	period := periodFromQuery(r)
	now := a.now()

	selected := make([]domain.Run, 0, len(runs))
	for _, run := range runs {
		if domain.InPeriod(run.Date, period, now) {
			selected = append(selected, run)
		}
	}
	selected = filtersFromQuery(r).Apply(selected)

	s := stats.Summarize(selected, unit)
	writeJSON(w, http.StatusOK, statsResponse{
		Unit:             string(s.Unit),
		Period:           string(period),
		Count:            s.Count,
		TotalDistance:    s.TotalDistance,
		TotalDurationSec: s.TotalDurationSec,
		TotalDuration:    timefmt.FormatDuration(float64(s.TotalDurationSec)),
		AvgPaceSec:       s.AvgPaceSec,
		AvgPace:          timefmt.FormatPace(float64(s.AvgPaceSec)),
		Longest:          highlightToResponse(s.Longest),
		Fastest:          highlightToResponse(s.Fastest),
	})
}
