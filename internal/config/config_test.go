package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def := DefaultConfig()
	if cfg.Scroll != def.Scroll || cfg.Drag != def.Drag || cfg.Reveal != def.Reveal {
		t.Fatalf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[scroll]
scroll_threshold = 80

[drag]
speed_multiplier = 1.5

[ui]
theme = "light"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Scroll.ScrollThreshold != 80 {
		t.Fatalf("scroll_threshold = %v, want 80", cfg.Scroll.ScrollThreshold)
	}
	if cfg.Scroll.IndicatorHideThreshold != 100 {
		t.Fatalf("unset key lost its default: %v", cfg.Scroll.IndicatorHideThreshold)
	}
	if cfg.Drag.SpeedMultiplier != 1.5 {
		t.Fatalf("speed_multiplier = %v, want 1.5", cfg.Drag.SpeedMultiplier)
	}
	if theme, ok := cfg.LoadTheme(); !ok || theme != "light" {
		t.Fatalf("LoadTheme = %q,%v", theme, ok)
	}
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[drag]
speed_multiplier = 0

[reveal]
threshold_fraction = 1.5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"speed_multiplier", "threshold_fraction"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not mention %s", err, want)
		}
	}
}

func TestSaveThemeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := cfg.LoadTheme(); ok {
		t.Fatalf("default config should have no stored theme")
	}
	if err := cfg.SaveTheme("dark"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	again, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile after save: %v", err)
	}
	if theme, ok := again.LoadTheme(); !ok || theme != "dark" {
		t.Fatalf("reloaded theme = %q,%v, want dark", theme, ok)
	}
}

func TestSaveThemeKeepsOverridesOutOfFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[drag]\nspeed_multiplier = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	cfg.Site.Path = "assets/sample/site.toml"
	cfg.Log.Level = "debug"
	if err := cfg.SaveTheme("light"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	again, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile after save: %v", err)
	}
	if again.Site.Path != "" || again.Log.Level != "info" {
		t.Fatalf("persisted site.path=%q log.level=%q", again.Site.Path, again.Log.Level)
	}
	if again.Drag.SpeedMultiplier != 3 {
		t.Fatalf("speed_multiplier = %v, want 3", again.Drag.SpeedMultiplier)
	}
	if theme, _ := again.LoadTheme(); theme != "light" {
		t.Fatalf("theme = %q, want light", theme)
	}
	if theme, _ := cfg.LoadTheme(); theme != "light" {
		t.Fatalf("in-memory theme = %q, want light", theme)
	}
}

func TestSitePathDefaultsToConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	cfg := DefaultConfig()
	if got, want := cfg.SitePath(), filepath.Join("/tmp/xdg", "marquee", "site.toml"); got != want {
		t.Fatalf("SitePath = %q, want %q", got, want)
	}
	cfg.Site.Path = "custom.yaml"
	if got := cfg.SitePath(); got != "custom.yaml" {
		t.Fatalf("SitePath = %q, want custom.yaml", got)
	}
}
