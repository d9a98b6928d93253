package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/blockbag/pkg/types"
)

// copyFixture copies testdata/<name> into a temp dir and returns its path
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("test file not found: %s", name)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}
	return path
}

// resetGlobals restores flag and config globals between tests
func resetGlobals() {
	quiet = false
	verbose = false
	jsonOut = false
	applyDryRun = false
	cfg = config{LogLevel: "info", InventorySize: types.PlayerInventorySize, MaxStack: types.MaxStackSize}
}

// captureOutput runs fn with stdout redirected into a pipe. The pipe is
// drained concurrently so large JSON dumps cannot block fn.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()
	w.Close()
	out := <-done
	r.Close()
	return out, fnErr
}
