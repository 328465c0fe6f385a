package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "top.sv")
	if err := os.WriteFile(path, []byte("module m;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fw, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("module m;\nendmodule\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-fw.Events():
			if ev.Path == path && ev.Reanalyze() {
				return
			}
		case err := <-fw.Errors():
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("no write event for %s", path)
		}
	}
}

func TestReanalyze(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		expected bool
	}{
		{"write", OpWrite, true},
		{"create", OpCreate, true},
		{"rename", OpRename, true},
		{"chmod only", OpChmod, false},
		{"remove only", OpRemove, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Event{Path: "top.sv", Op: tt.op}
			if got := ev.Reanalyze(); got != tt.expected {
				t.Errorf("Reanalyze wrong. expected=%v, got=%v", tt.expected, got)
			}
		})
	}
}
