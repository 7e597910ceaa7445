package store

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/runtrackapp/runtrack/internal/domain"
	"github.com/runtrackapp/runtrack/internal/timefmt"
)

// Settings is the persisted process-wide settings record. It governs the
// display unit for aggregation output only; stored run data is unaffected.
type Settings struct {
	Unit string `json:"unit"`
}

func defaultSettings() Settings {
	return Settings{Unit: string(domain.UnitKm)}
}

// RunInput is the raw material for creating a run, before validation.
type RunInput struct {
	Date         string  `json:"date"`
	Distance     float64 `json:"distance"`
	Unit         string  `json:"unit"`
	Duration     string  `json:"duration"` // mm:ss
	Effort       string  `json:"effort"`
	WorkoutStyle string  `json:"workoutStyle"`
	Surface      string  `json:"surface"`
	Notes        string  `json:"notes"`
}

// Repository owns the durable run collection and the settings record on top
// of the KV boundary. Runs are append-only: creation prepends, deletion
// removes by id, and no update operation exists.
type Repository struct {
	mu sync.Mutex
	kv KV
}

// NewRepository creates a Repository over the given KV store.
func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// loadRuns reads the persisted collection. A missing key yields an empty
// collection; a malformed payload is recovered to empty and logged, never
// surfaced as an error.
func (r *Repository) loadRuns(ctx context.Context) ([]domain.Run, error) {
	raw, ok, err := r.kv.Get(ctx, RunsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Run{}, nil
	}

	var runs []domain.Run
	if err := json.Unmarshal([]byte(raw), &runs); err != nil {
		log.Printf("WARN: malformed run collection payload, falling back to empty: %v", err)
		return []domain.Run{}, nil
	}
	if runs == nil {
		runs = []domain.Run{}
	}
	return runs, nil
}

func (r *Repository) saveRuns(ctx context.Context, runs []domain.Run) error {
	data, err := json.Marshal(runs)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, RunsKey, string(data))
}

// ListRuns returns all persisted runs in insertion order, most recently
// added first.
func (r *Repository) ListRuns(ctx context.Context) ([]domain.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadRuns(ctx)
}

// CreateRun validates the input and, on success, assigns an id and creation
// timestamp, prepends the run to the collection, and persists it. A failed
// validation returns a *ValidationError and persists nothing.
func (r *Repository) CreateRun(ctx context.Context, in RunInput) (domain.Run, error) {
	date := strings.TrimSpace(in.Date)
	if date == "" {
		return domain.Run{}, validationErr("date is required")
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return domain.Run{}, validationErr("date must be YYYY-MM-DD")
	}

	if math.IsNaN(in.Distance) || math.IsInf(in.Distance, 0) || in.Distance <= 0 {
		return domain.Run{}, validationErr("distance must be greater than 0")
	}

	durationSec, ok := timefmt.ParseDuration(in.Duration)
	if !ok || durationSec <= 0 {
		return domain.Run{}, validationErr("duration must be mm:ss, e.g. 35:24")
	}

	effort := domain.Effort(strings.TrimSpace(in.Effort))
	if !effort.Valid() {
		return domain.Run{}, validationErr("unrecognized effort")
	}
	style := domain.WorkoutStyle(strings.TrimSpace(in.WorkoutStyle))
	if !style.Valid() {
		return domain.Run{}, validationErr("unrecognized workout style")
	}
	surface := domain.Surface(strings.TrimSpace(in.Surface))
	if !surface.Valid() {
		return domain.Run{}, validationErr("unrecognized surface")
	}

	run := domain.Run{
		ID:   NewRunID(),
		Date: date,
		Distance: domain.Distance{
			Value: math.Round(in.Distance*100) / 100,
			Unit:  domain.NormalizeUnit(in.Unit),
		},
		DurationSec:  int(durationSec),
		Notes:        strings.TrimSpace(in.Notes),
		MapData:      map[string]any{},
		Effort:       effort,
		WorkoutStyle: style,
		Surface:      surface,
		CreatedAt:    time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	runs, err := r.loadRuns(ctx)
	if err != nil {
		return domain.Run{}, err
	}
	runs = append([]domain.Run{run}, runs...)
	if err := r.saveRuns(ctx, runs); err != nil {
		return domain.Run{}, err
	}
	return run, nil
}

// DeleteRun removes the run with the given id. It reports whether a removal
// occurred; deleting an unknown id is not an error.
func (r *Repository) DeleteRun(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runs, err := r.loadRuns(ctx)
	if err != nil {
		return false, err
	}

	next := runs[:0:0]
	for _, run := range runs {
		if run.ID != id {
			next = append(next, run)
		}
	}
	if len(next) == len(runs) {
		return false, nil
	}
	if next == nil {
		next = []domain.Run{}
	}
	if err := r.saveRuns(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Repository) loadSettings(ctx context.Context) (Settings, error) {
	raw, ok, err := r.kv.Get(ctx, SettingsKey)
	if err != nil {
		return defaultSettings(), err
	}
	if !ok {
		return defaultSettings(), nil
	}

	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Printf("WARN: malformed settings payload, falling back to defaults: %v", err)
		return defaultSettings(), nil
	}
	return s, nil
}

// Unit returns the current display unit, defaulting to km.
func (r *Repository) Unit(ctx context.Context) (domain.Unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.loadSettings(ctx)
	if err != nil {
		return domain.UnitKm, err
	}
	return domain.NormalizeUnit(s.Unit), nil
}

// SetUnit persists the display unit. Any value other than "mi" is coerced
// to "km"; the call never rejects its input.
func (r *Repository) SetUnit(ctx context.Context, unit string) (domain.Unit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.loadSettings(ctx)
	if err != nil {
		return domain.UnitKm, err
	}
	u := domain.NormalizeUnit(unit)
	s.Unit = string(u)

	data, err := json.Marshal(s)
	if err != nil {
		return u, err
	}
	if err := r.kv.Set(ctx, SettingsKey, string(data)); err != nil {
		return u, err
	}
	return u, nil
}
