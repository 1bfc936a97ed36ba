package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/marquee/internal/constants"
)

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Scroll   ScrollConfig  `toml:"scroll"`
	Reveal   RevealConfig  `toml:"reveal"`
	Drag     DragConfig    `toml:"drag"`
	Nav      NavConfig     `toml:"nav"`
	Site     SiteConfig    `toml:"site"`
	Log      LogConfig     `toml:"log"`
	Inspect  InspectConfig `toml:"inspect"`
	Keybinds KeybindConfig `toml:"keybinds"`

	// path is where Save writes; empty means ConfigPath().
	path string
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Theme      string `toml:"theme"`
	Language   string `toml:"language"`
}

type ScrollConfig struct {
	ScrollThreshold          float64 `toml:"scroll_threshold"`
	IndicatorHideThreshold   float64 `toml:"indicator_hide_threshold"`
	SectionThresholdFraction float64 `toml:"section_threshold_fraction"`
	WheelSpeed               float64 `toml:"wheel_speed"`
}

type RevealConfig struct {
	RootMarginBottom  float64 `toml:"root_margin_bottom"`
	ThresholdFraction float64 `toml:"threshold_fraction"`
}

type DragConfig struct {
	SpeedMultiplier float64 `toml:"speed_multiplier"`
}

type NavConfig struct {
	BreakpointWidth float64 `toml:"breakpoint_width"`
}

type SiteConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

type InspectConfig struct {
	Addr string `toml:"addr"`
}

type KeybindConfig struct {
	Theme    string `toml:"theme"`
	Menu     string `toml:"menu"`
	Language string `toml:"language"`
	Top      string `toml:"top"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
			Theme:      "",
			Language:   "en",
		},
		Scroll: ScrollConfig{
			ScrollThreshold:          50,
			IndicatorHideThreshold:   100,
			SectionThresholdFraction: 0.3,
			WheelSpeed:               60,
		},
		Reveal: RevealConfig{
			RootMarginBottom:  -50,
			ThresholdFraction: 0.1,
		},
		Drag: DragConfig{
			SpeedMultiplier: 2,
		},
		Nav: NavConfig{
			BreakpointWidth: 768,
		},
		Site: SiteConfig{
			Watch: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Keybinds: KeybindConfig{
			Theme:    "T",
			Menu:     "M",
			Language: "L",
			Top:      "Home",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, constants.AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFile), nil
}

// Load reads the config file from the default location.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the coordinator cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Scroll.ScrollThreshold < 0 {
		errs = append(errs, errors.New("scroll.scroll_threshold must be >= 0"))
	}
	if c.Scroll.IndicatorHideThreshold < 0 {
		errs = append(errs, errors.New("scroll.indicator_hide_threshold must be >= 0"))
	}
	if !isFraction(c.Scroll.SectionThresholdFraction) {
		errs = append(errs, errors.New("scroll.section_threshold_fraction must be in [0,1]"))
	}
	if !isFraction(c.Reveal.ThresholdFraction) {
		errs = append(errs, errors.New("reveal.threshold_fraction must be in [0,1]"))
	}
	if c.Drag.SpeedMultiplier <= 0 {
		errs = append(errs, errors.New("drag.speed_multiplier must be > 0"))
	}
	if c.Nav.BreakpointWidth < 0 {
		errs = append(errs, errors.New("nav.breakpoint_width must be >= 0"))
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, errors.New("ui.width and ui.height must be > 0"))
	}
	return errors.Join(errs...)
}

func isFraction(v float64) bool {
	return v >= 0 && v <= 1
}

// SitePath returns the page document path, defaulting to site.toml in the
// config directory.
func (c *Config) SitePath() string {
	if c.Site.Path != "" {
		return c.Site.Path
	}
	dir, err := ConfigDir()
	if err != nil {
		return constants.SiteFile
	}
	return filepath.Join(dir, constants.SiteFile)
}

func (c *Config) filePath() (string, error) {
	if c.path != "" {
		return c.path, nil
	}
	return ConfigPath()
}

func (c *Config) Save() error {
	path, err := c.filePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// LoadTheme implements site.ThemeStore.
func (c *Config) LoadTheme() (string, bool) {
	return c.UI.Theme, c.UI.Theme != ""
}

// SaveTheme implements site.ThemeStore. Only ui.theme is written; the rest
// of the file is re-read so in-memory overrides are not persisted.
func (c *Config) SaveTheme(theme string) error {
	c.UI.Theme = theme
	path, err := c.filePath()
	if err != nil {
		return err
	}
	onDisk, err := LoadFile(path)
	if err != nil {
		return err
	}
	onDisk.UI.Theme = theme
	return onDisk.Save()
}
