package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/runtrackapp/runtrack/internal/profile"
	"github.com/runtrackapp/runtrack/internal/realtime"
)

// Avatars arrive as inline data URLs; cap the payload accordingly.
const maxProfileBytes = 4 * 1024 * 1024 // 4 MiB

func (a *API) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		p, err := a.Profiles.Get(ctx)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to read profile"})
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		body, err := io.ReadAll(io.LimitReader(r.Body, maxProfileBytes+1))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read body"})
			return
		}
		if len(body) > maxProfileBytes {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "profile payload too large"})
			return
		}

		var patch profile.Patch
		if err := json.Unmarshal(body, &patch); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		p, err := a.Profiles.Update(ctx, patch)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to save profile"})
			return
		}
		a.emitEvent(realtime.Event{Type: realtime.EventProfileUpdated})
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		if err := a.Profiles.Clear(ctx); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to clear profile"})
			return
		}
		a.emitEvent(realtime.Event{Type: realtime.EventProfileUpdated})
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}
