// Package backup writes periodic JSON snapshots of the run data and prunes
// old ones.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/runtrackapp/runtrack/pkg/transfer"
)

const (
	snapshotPrefix = "runtrack-"
	snapshotSuffix = ".json"
)

// Manager writes export documents into a directory and keeps the newest N.
type Manager struct {
	dir  string
	keep int
}

// NewManager creates a backup manager writing into dir, retaining keep
// snapshots.
func NewManager(dir string, keep int) *Manager {
	return &Manager{dir: dir, keep: keep}
}

// Dir returns the snapshot directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Snapshot writes doc to a timestamped file and prunes old snapshots.
// It returns the path of the written file.
func (m *Manager) Snapshot(doc transfer.Document) (string, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	name := snapshotPrefix + time.Now().UTC().Format("20060102T150405Z") + snapshotSuffix
	path := filepath.Join(m.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	if err := m.Cleanup(); err != nil {
		return path, fmt.Errorf("snapshot written, cleanup failed: %w", err)
	}
	return path, nil
}

// Cleanup removes the oldest snapshots beyond the retention count. The
// timestamped names sort chronologically, so name order is age order.
func (m *Manager) Cleanup() error {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, snapshotPrefix) && strings.HasSuffix(name, snapshotSuffix) {
			names = append(names, name)
		}
	}
	if m.keep <= 0 || len(names) <= m.keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-m.keep] {
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
