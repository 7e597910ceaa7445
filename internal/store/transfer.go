package store

import (
	"context"
	"time"

	"github.com/runtrackapp/runtrack/internal/domain"
	"github.com/runtrackapp/runtrack/pkg/transfer"
)

func runToTransfer(r domain.Run) transfer.Run {
	return transfer.Run{
		ID:   r.ID,
		Date: r.Date,
		Distance: transfer.Distance{
			Value: r.Distance.Value,
			Unit:  string(r.Distance.Unit),
		},
		DurationSec:  r.DurationSec,
		Notes:        r.Notes,
		MapData:      r.MapData,
		Effort:       string(r.Effort),
		WorkoutStyle: string(r.WorkoutStyle),
		Surface:      string(r.Surface),
		CreatedAt:    r.CreatedAt,
	}
}

func runFromTransfer(r transfer.Run) domain.Run {
	mapData := r.MapData
	if mapData == nil {
		mapData = map[string]any{}
	}
	return domain.Run{
		ID:   r.ID,
		Date: r.Date,
		Distance: domain.Distance{
			Value: r.Distance.Value,
			Unit:  domain.NormalizeUnit(r.Distance.Unit),
		},
		DurationSec:  r.DurationSec,
		Notes:        r.Notes,
		MapData:      mapData,
		Effort:       domain.Effort(r.Effort),
		WorkoutStyle: domain.WorkoutStyle(r.WorkoutStyle),
		Surface:      domain.Surface(r.Surface),
		CreatedAt:    r.CreatedAt,
	}
}

// ExportDocument builds a full export of the collection and display unit.
func (r *Repository) ExportDocument(ctx context.Context) (transfer.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runs, err := r.loadRuns(ctx)
	if err != nil {
		return transfer.Document{}, err
	}
	s, err := r.loadSettings(ctx)
	if err != nil {
		return transfer.Document{}, err
	}

	out := make([]transfer.Run, 0, len(runs))
	for _, run := range runs {
		out = append(out, runToTransfer(run))
	}
	return transfer.NewDocument(string(domain.NormalizeUnit(s.Unit)), out, time.Now()), nil
}

// ImportResult summarizes what an import did (or would do, on a dry run).
type ImportResult struct {
	Parsed            int `json:"parsed"`
	Created           int `json:"created"`
	SkippedDuplicates int `json:"skipped_duplicates"`
	SkippedInvalid    int `json:"skipped_invalid"`
}

func importable(r domain.Run) bool {
	if r.Date == "" || r.Distance.Value <= 0 || r.DurationSec <= 0 {
		return false
	}
	if _, err := time.Parse(domain.DateLayout, r.Date); err != nil {
		return false
	}
	return r.Effort.Valid() && r.WorkoutStyle.Valid() && r.Surface.Valid()
}

// ImportDocument merges an export document into the collection. Runs whose
// id already exists are skipped; runs failing the creation predicates are
// skipped and counted. With replace, the document becomes the entire
// collection. With dryRun, counts are computed but nothing persists.
func (r *Repository) ImportDocument(ctx context.Context, doc *transfer.Document, replace, dryRun bool) (ImportResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := ImportResult{Parsed: len(doc.Runs)}

	existing, err := r.loadRuns(ctx)
	if err != nil {
		return res, err
	}
	if replace {
		existing = []domain.Run{}
	}

	seen := make(map[string]struct{}, len(existing))
	for _, run := range existing {
		seen[run.ID] = struct{}{}
	}

	var created []domain.Run
	for _, tr := range doc.Runs {
		run := runFromTransfer(tr)
		if !importable(run) {
			res.SkippedInvalid++
			continue
		}
		if run.ID == "" {
			run.ID = NewRunID()
		} else if _, dup := seen[run.ID]; dup {
			res.SkippedDuplicates++
			continue
		}
		if run.CreatedAt.IsZero() {
			run.CreatedAt = time.Now().UTC()
		}
		seen[run.ID] = struct{}{}
		created = append(created, run)
	}
	res.Created = len(created)

	if dryRun || res.Created == 0 && !replace {
		return res, nil
	}

	next := append(created, existing...)
	if next == nil {
		next = []domain.Run{}
	}
	if err := r.saveRuns(ctx, next); err != nil {
		return res, err
	}
	return res, nil
}
