// Package site holds the page-level glue state: theme, navigation menu,
// language path and footer text.
package site

import (
	"fmt"
	"log/slog"
)

// Theme is the page color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme returns the theme named by s.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeStore persists the chosen theme.
type ThemeStore interface {
	LoadTheme() (string, bool)
	SaveTheme(theme string) error
}

// State is the page's global UI state. Transitions are methods; nothing else
// writes its fields.
type State struct {
	theme    Theme
	menuOpen bool
	path     string

	store  ThemeStore
	logger *slog.Logger
}

// NewState loads the stored theme, falling back to fallback when nothing valid
// is stored. store may be nil.
func NewState(store ThemeStore, fallback Theme, path string, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &State{
		theme:  fallback,
		path:   path,
		store:  store,
		logger: logger,
	}
	if store != nil {
		if saved, ok := store.LoadTheme(); ok {
			if t, err := ParseTheme(saved); err == nil {
				s.theme = t
			} else {
				logger.Warn("ignoring stored theme", "error", err)
			}
		}
	}
	return s
}

// Theme returns the current theme.
func (s *State) Theme() Theme { return s.theme }

// ToggleTheme switches theme and persists it. The new theme applies even when
// saving fails; the error is returned for logging.
func (s *State) ToggleTheme() error {
	s.theme = s.theme.Toggled()
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveTheme(string(s.theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// MenuOpen reports whether the navigation menu is expanded.
func (s *State) MenuOpen() bool { return s.menuOpen }

// ToggleMenu opens or closes the navigation menu.
func (s *State) ToggleMenu() { s.menuOpen = !s.menuOpen }

// CloseMenu closes the menu, e.g. after a link was followed or on Escape.
func (s *State) CloseMenu() { s.menuOpen = false }

// Path returns the current page path.
func (s *State) Path() string { return s.path }

// SwitchLanguage rewrites the current path for lang.
func (s *State) SwitchLanguage(lang string, supported []string) error {
	p, err := RedirectPath(s.path, lang, supported)
	if err != nil {
		return err
	}
	s.logger.Info("language switched", "from", s.path, "to", p)
	s.path = p
	s.menuOpen = false
	return nil
}

// Language returns the language segment of the current path.
func (s *State) Language(supported []string) string {
	return PathLanguage(s.path, supported)
}
