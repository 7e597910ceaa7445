package api

import (
	"net/http"

	"github.com/runtrackapp/runtrack/internal/domain"
	"github.com/runtrackapp/runtrack/internal/realtime"
)

func (a *API) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if a.GetConfig == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "config provider unavailable"})
		return
	}

	cfg := a.GetConfig()
	if cfg == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "config unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

func (a *API) handleBackup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if a.Snapshot == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "backups are disabled"})
		return
	}

	path, err := a.Snapshot()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to write backup"})
		return
	}

	a.emitEvent(realtime.Event{Type: realtime.EventBackupCreated})
	writeJSON(w, http.StatusOK, map[string]string{"status": "created", "path": path})
}

// metaResponse lists the valid option values so UI dropdowns stay in
// sync with the server.
type metaResponse struct {
	Efforts       []domain.Effort       `json:"efforts"`
	WorkoutStyles []domain.WorkoutStyle `json:"workoutStyles"`
	Surfaces      []domain.Surface      `json:"surfaces"`
	Periods       []domain.Period       `json:"periods"`
	Units         []domain.Unit         `json:"units"`
	FilterAll     string                `json:"filterAll"`
}

func (a *API) handleMeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, metaResponse{
		Efforts:       domain.EffortOptions(),
		WorkoutStyles: domain.WorkoutStyleOptions(),
		Surfaces:      domain.SurfaceOptions(),
		Periods:       domain.Periods(),
		Units:         []domain.Unit{domain.UnitKm, domain.UnitMi},
		FilterAll:     domain.FilterAll,
	})
}
