package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/runtrackapp/runtrack/internal/config"
	"github.com/runtrackapp/runtrack/internal/profile"
	"github.com/runtrackapp/runtrack/internal/realtime"
	"github.com/runtrackapp/runtrack/internal/store"
)

// API holds dependencies for all API handlers.
type API struct {
	Repo      *store.Repository
	Profiles  *profile.Store
	Events    *realtime.Broker
	GetConfig func() *config.Config
	Snapshot  func() (string, error) // nil when backups are disabled

	// Now supplies the reference instant for period windows; tests pin it.
	Now func() time.Time
}

func (a *API) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/runs/export", a.handleExportRuns)
	mux.HandleFunc("/api/v1/runs/import", a.handleImportRuns)
	mux.HandleFunc("/api/v1/runs/", a.routeRuns)
	mux.HandleFunc("/api/v1/runs", a.handleRuns)
	mux.HandleFunc("/api/v1/dashboard", a.handleDashboard)
	mux.HandleFunc("/api/v1/stats", a.handleStats)
	mux.HandleFunc("/api/v1/settings", a.handleSettings)
	mux.HandleFunc("/api/v1/profile", a.handleProfile)
	mux.HandleFunc("/api/v1/backup", a.handleBackup)
	mux.HandleFunc("/api/v1/events", a.handleEvents)
	mux.HandleFunc("/api/v1/config", a.handleConfig)
	mux.HandleFunc("/api/v1/health", a.handleHealth)
	mux.HandleFunc("/api/v1/meta", a.handleMeta)
}

// handleRuns dispatches the collection endpoint by method.
func (a *API) handleRuns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.handleListRuns(w, r)
	case http.MethodPost:
		a.handleCreateRun(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

// routeRuns dispatches /api/v1/runs/{id} requests.
func (a *API) routeRuns(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/runs/")
	if id == "" {
		a.handleRuns(w, r)
		return
	}
	if strings.Contains(id, "/") {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.handleGetRun(w, r, id)
	case http.MethodDelete:
		a.handleDeleteRun(w, r, id)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (a *API) emitEvent(evt realtime.Event) {
	if a.Events == nil {
		return
	}
	a.Events.Publish(evt)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to write JSON response: %v", err)
	}
}
