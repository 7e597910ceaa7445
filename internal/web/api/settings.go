package api

import (
	"encoding/json"
	"net/http"

	"github.com/runtrackapp/runtrack/internal/realtime"
)

type settingsResponse struct {
	Unit string `json:"unit"`
}

func (a *API) handleSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		unit, err := a.Repo.Unit(ctx)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read settings"})
			return
		}
		writeJSON(w, http.StatusOK, settingsResponse{Unit: string(unit)})

	case http.MethodPut:
		var in settingsResponse
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		// Unknown units coerce to km rather than failing.
		unit, err := a.Repo.SetUnit(ctx, in.Unit)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save settings"})
			return
		}
		a.emitEvent(realtime.Event{Type: realtime.EventSettingsUpdated, Unit: string(unit)})
		writeJSON(w, http.StatusOK, settingsResponse{Unit: string(unit)})

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}
