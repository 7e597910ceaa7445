package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/runtrackapp/runtrack/internal/realtime"
	"github.com/runtrackapp/runtrack/pkg/transfer"
)

const maxRunsImportBytes = 8 * 1024 * 1024 // 8 MiB

type runsImportResult struct {
	Status            string `json:"status"`
	Replace           bool   `json:"replace"`
	DryRun            bool   `json:"dry_run"`
	Parsed            int    `json:"parsed"`
	Created           int    `json:"created"`
	SkippedDuplicates int    `json:"skipped_duplicates"`
	SkippedInvalid    int    `json:"skipped_invalid"`
}

func (a *API) handleExportRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	doc, err := a.Repo.ExportDocument(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to export runs"})
		return
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to encode export"})
		return
	}

	filenameTime := time.Now().UTC().Format("20060102T150405Z")
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"runtrack-runs-%s.json\"", filenameTime))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
	_, _ = w.Write([]byte("\n"))
}

func (a *API) handleImportRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	replace, err := parseBoolQuery(r, "replace")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	dryRun, err := parseBoolQuery(r, "dry_run")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRunsImportBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read import payload"})
		return
	}
	if len(body) > maxRunsImportBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "import payload too large"})
		return
	}
	if strings.TrimSpace(string(body)) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "import payload is empty"})
		return
	}

	doc, err := transfer.Parse(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res, err := a.Repo.ImportDocument(r.Context(), doc, replace, dryRun)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to import runs"})
		return
	}

	status := "imported"
	if dryRun {
		status = "dry_run"
	} else if res.Created > 0 {
		a.emitEvent(realtime.Event{Type: realtime.EventRunCreated})
	}

	writeJSON(w, http.StatusOK, runsImportResult{
		Status:            status,
		Replace:           replace,
		DryRun:            dryRun,
		Parsed:            res.Parsed,
		Created:           res.Created,
		SkippedDuplicates: res.SkippedDuplicates,
		SkippedInvalid:    res.SkippedInvalid,
	})
}

func parseBoolQuery(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, nil
	case "0", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean query value for %q", key)
	}
}
