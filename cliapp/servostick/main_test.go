package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRun_NoHardwareActions(t *testing.T) {
	t.Setenv("SERVOSTICK_LOG_DIR", "-")
	t.Setenv("SERVOSTICK_CONTROLS", filepath.Join(t.TempDir(), "controls.json"))

	for _, args := range [][]string{
		{"servostick"},
		{"servostick", "set"},
		{"servostick", "set", "9"},
		{"servostick", "game", "pacman.zip"},
		{"servostick", "frobnicate", "4"},
	} {
		if code := run(args); code != 0 {
			t.Errorf("run(%q) = %d, want 0", args, code)
		}
	}
}

func TestRun_WritesLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SERVOSTICK_LOG_DIR", dir)

	if code := run([]string{"servostick"}); code != 0 {
		t.Fatalf("exit code %d", code)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one log file, got %d", len(entries))
	}
}
