package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runtrackapp/runtrack/pkg/transfer"
)

func TestSnapshotWritesDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := NewManager(dir, 3)

	doc := transfer.NewDocument("km", []transfer.Run{
		{ID: "a", Date: "2024-03-12", Distance: transfer.Distance{Value: 5, Unit: "km"}, DurationSec: 1800},
	}, time.Now())

	path, err := m.Snapshot(doc)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	parsed, err := transfer.Parse(data)
	if err != nil {
		t.Fatalf("snapshot is not a valid export document: %v", err)
	}
	if len(parsed.Runs) != 1 || parsed.Runs[0].ID != "a" {
		t.Fatalf("unexpected snapshot content %+v", parsed)
	}
}

func TestCleanupKeepsNewest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := NewManager(dir, 2)

	names := []string{
		"runtrack-20240101T000000Z.json",
		"runtrack-20240102T000000Z.json",
		"runtrack-20240103T000000Z.json",
		"unrelated.txt",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if err := m.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}

	var snapshots []string
	unrelated := false
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "runtrack-") {
			snapshots = append(snapshots, e.Name())
		}
		if e.Name() == "unrelated.txt" {
			unrelated = true
		}
	}

	if len(snapshots) != 2 {
		t.Fatalf("expected 2 retained snapshots, got %v", snapshots)
	}
	for _, name := range snapshots {
		if name == "runtrack-20240101T000000Z.json" {
			t.Fatal("oldest snapshot should have been pruned")
		}
	}
	if !unrelated {
		t.Fatal("cleanup must not touch unrelated files")
	}
}

func TestCleanupMissingDirIsNoop(t *testing.T) {
	t.Parallel()

	m := NewManager(filepath.Join(t.TempDir(), "absent"), 2)
	if err := m.Cleanup(); err != nil {
		t.Fatalf("Cleanup on a missing dir: %v", err)
	}
}

func TestParseScheduleDescriptors(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"@daily", "@hourly", "0 3 * * *"} {
		if _, err := ParseSchedule(expr); err != nil {
			t.Fatalf("ParseSchedule(%q): %v", expr, err)
		}
	}
	if _, err := ParseSchedule("not a schedule"); err == nil {
		t.Fatal("expected parse error")
	}
}
