// Package transfer defines the JSON document used to export and import run
// data, shared by the HTTP transfer endpoints and the backup snapshots.
package transfer

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentVersion is the current export payload version.
const DocumentVersion = 1

// Distance is a recorded distance value plus the unit it was stored in.
type Distance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Run is the external persisted shape of a single run record.
type Run struct {
	ID           string         `json:"id"`
	Date         string         `json:"date"`
	Distance     Distance       `json:"distance"`
	DurationSec  int            `json:"durationSec"`
	Notes        string         `json:"notes"`
	MapData      map[string]any `json:"map_data"`
	Effort       string         `json:"effort"`
	WorkoutStyle string         `json:"workoutStyle"`
	Surface      string         `json:"surface"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// Document is a full export of the run collection and the display unit.
type Document struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Unit       string    `json:"unit"`
	Runs       []Run     `json:"runs"`
}

// NewDocument builds a versioned export document stamped with now.
func NewDocument(unit string, runs []Run, now time.Time) Document {
	if runs == nil {
		runs = []Run{}
	}
	return Document{
		Version:    DocumentVersion,
		ExportedAt: now.UTC(),
		Unit:       unit,
		Runs:       runs,
	}
}

// Parse decodes and sanity-checks an export document: the version must be
// recognized and run ids must not repeat within the document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode export document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return nil, fmt.Errorf("unsupported export document version %d", doc.Version)
	}

	seen := make(map[string]struct{}, len(doc.Runs))
	for _, r := range doc.Runs {
		if r.ID == "" {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("duplicate run id %q in export document", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return &doc, nil
}
