package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultScript string `koanf:"default_script"` // cue sheet opened when none is given
	TickMs        int    `koanf:"tick_ms"`        // UI refresh interval while the clock runs

	Viewer ViewerConfig `koanf:"viewer"`
}

// ViewerConfig holds the script-follower display settings.
type ViewerConfig struct {
	LookaheadSeconds    int   `koanf:"lookahead_seconds"`    // upcoming window, 5-60 (default: 30)
	Highlighting        *bool `koanf:"highlighting"`         // classify elements against the clock (default: true)
	AutoSortCues        bool  `koanf:"auto_sort_cues"`       // display in offset order instead of file order
	ShowClockTimes      bool  `koanf:"show_clock_times"`     // wall-clock labels when the sheet has a curtain time
	UseMilitaryTime     bool  `koanf:"use_military_time"`    // 24h wall-clock labels
	ColorizeDepartments *bool `koanf:"colorize_departments"` // per-department colors (default: true)
}

const (
	defaultTickMs    = 250
	defaultLookahead = 30
)

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.TickMs <= 0 {
		cfg.TickMs = defaultTickMs
	}
	if cfg.Viewer.LookaheadSeconds == 0 {
		cfg.Viewer.LookaheadSeconds = defaultLookahead
	}
	cfg.DefaultScript = expandPath(cfg.DefaultScript)

	return cfg, nil
}

// HighlightingEnabled resolves the optional highlighting flag (default true).
func (v ViewerConfig) HighlightingEnabled() bool {
	return v.Highlighting == nil || *v.Highlighting
}

// ColorizeEnabled resolves the optional department-color flag (default true).
func (v ViewerConfig) ColorizeEnabled() bool {
	return v.ColorizeDepartments == nil || *v.ColorizeDepartments
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/callsheet/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "callsheet", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
