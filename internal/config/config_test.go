package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"absolute untouched", "/opt/shows/gala.cuesheet", "/opt/shows/gala.cuesheet"},
		{"bare tilde", "~", home},
		{"tilde slash", "~/shows/gala.cuesheet", filepath.Join(home, "shows", "gala.cuesheet")},
		{"tilde user untouched", "~other/x", "~other/x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.in); got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestViewerDefaults(t *testing.T) {
	var v ViewerConfig
	if !v.HighlightingEnabled() {
		t.Error("highlighting should default to enabled")
	}
	if !v.ColorizeEnabled() {
		t.Error("department colors should default to enabled")
	}

	off := false
	v.Highlighting = &off
	if v.HighlightingEnabled() {
		t.Error("explicit false should disable highlighting")
	}
}

func TestLoadDefaults(t *testing.T) {
	// Run from a directory with no config.toml so only defaults apply.
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickMs != defaultTickMs {
		t.Errorf("TickMs = %d, want %d", cfg.TickMs, defaultTickMs)
	}
	if cfg.Viewer.LookaheadSeconds != defaultLookahead {
		t.Errorf("LookaheadSeconds = %d, want %d", cfg.Viewer.LookaheadSeconds, defaultLookahead)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
default_script = "gala.cuesheet"
tick_ms = 100

[viewer]
lookahead_seconds = 45
auto_sort_cues = true
highlighting = false
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultScript != "gala.cuesheet" {
		t.Errorf("DefaultScript = %q", cfg.DefaultScript)
	}
	if cfg.TickMs != 100 {
		t.Errorf("TickMs = %d, want 100", cfg.TickMs)
	}
	if cfg.Viewer.LookaheadSeconds != 45 {
		t.Errorf("LookaheadSeconds = %d, want 45", cfg.Viewer.LookaheadSeconds)
	}
	if !cfg.Viewer.AutoSortCues {
		t.Error("AutoSortCues should be true")
	}
	if cfg.Viewer.HighlightingEnabled() {
		t.Error("highlighting should be disabled by the file")
	}
}
