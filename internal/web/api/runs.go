package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/runtrackapp/runtrack/internal/domain"
	"github.com/runtrackapp/runtrack/internal/realtime"
	"github.com/runtrackapp/runtrack/internal/store"
	"github.com/runtrackapp/runtrack/internal/timefmt"
)

type runResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	Distance     domain.Distance `json:"distance"`
	DurationSec  int             `json:"durationSec"`
	Duration     string          `json:"duration"`
	Notes        string          `json:"notes"`
	MapData      map[string]any  `json:"map_data"`
	Effort       string          `json:"effort"`
	WorkoutStyle string          `json:"workoutStyle"`
	Surface      string          `json:"surface"`
	CreatedAt    time.Time       `json:"createdAt"`

	// Derived display values in the current display unit.
	DisplayUnit     string  `json:"display_unit"`
	DisplayDistance float64 `json:"display_distance"`
	PaceSec         int     `json:"pace_sec"`
	Pace            string  `json:"pace"`
}

func runToResponse(r domain.Run, unit domain.Unit) runResponse {
	dist := r.Distance.In(unit)
	pace := domain.PaceSecPerUnit(r.DurationSec, dist)
	return runResponse{
		ID:              r.ID,
		Date:            r.Date,
		Distance:        r.Distance,
		DurationSec:     r.DurationSec,
		Duration:        timefmt.FormatDuration(float64(r.DurationSec)),
		Notes:           r.Notes,
		MapData:         r.MapData,
		Effort:          string(r.Effort),
		WorkoutStyle:    string(r.WorkoutStyle),
		Surface:         string(r.Surface),
		CreatedAt:       r.CreatedAt,
		DisplayUnit:     string(unit),
		DisplayDistance: dist,
		PaceSec:         pace,
		Pace:            timefmt.FormatPace(float64(pace)),
	}
}

func filtersFromQuery(r *http.Request) domain.Filters {
	q := r.URL.Query()
	return domain.Filters{
		Effort:       q.Get("effort"),
		WorkoutStyle: q.Get("style"),
		Surface:      q.Get("surface"),
	}
}

func periodFromQuery(r *http.Request) domain.Period {
	p := domain.Period(r.URL.Query().Get("period"))
	if !p.Valid() {
		return domain.PeriodAll
	}
	return p
}

func (a *API) handleListRuns(w http.ResponseWriter, r *http.Request) {
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
	for _, run := range domain.SortNewestFirst(runs) {
		if domain.InPeriod(run.Date, period, now) {
			selected = append(selected, run)
		}
	}
	selected = filtersFromQuery(r).Apply(selected)

	result := make([]runResponse, 0, len(selected))
	for _, run := range selected {
		result = append(result, runToResponse(run, unit))
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var in store.RunInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	run, err := a.Repo.CreateRun(r.Context(), in)
	if err != nil {
		if store.IsValidation(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save run"})
		return
	}

	a.emitEvent(realtime.Event{Type: realtime.EventRunCreated, RunID: run.ID})

	unit, _ := a.Repo.Unit(r.Context())
	writeJSON(w, http.StatusCreated, runToResponse(run, unit))
}

func (a *API) handleGetRun(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	runs, err := a.Repo.ListRuns(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list runs"})
		return
	}
	for _, run := range runs {
		if run.ID == id {
			unit, _ := a.Repo.Unit(ctx)
			writeJSON(w, http.StatusOK, runToResponse(run, unit))
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "run not found"})
}

func (a *API) handleDeleteRun(w http.ResponseWriter, r *http.Request, id string) {
	deleted, err := a.Repo.DeleteRun(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete run"})
		return
	}
	if deleted {
		a.emitEvent(realtime.Event{Type: realtime.EventRunDeleted, RunID: id})
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
