package site

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownLanguage is returned when the target language is not supported.
var ErrUnknownLanguage = errors.New("unknown language")

// RedirectPath rewrites the language segment of path to lang. A path without
// a supported leading segment gets one: "/about" becomes "/fr/about".
func RedirectPath(path, lang string, supported []string) (string, error) {
	if !slices.Contains(supported, lang) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}

	rest := strings.TrimPrefix(path, "/")
	if first, tail, _ := strings.Cut(rest, "/"); slices.Contains(supported, first) {
		rest = tail
	}
	return "/" + lang + "/" + rest, nil
}

// PathLanguage returns the leading language segment of path, or the first
// supported language when the path has none.
func PathLanguage(path string, supported []string) string {
	first, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if slices.Contains(supported, first) {
		return first
	}
	if len(supported) > 0 {
		return supported[0]
	}
	return ""
}

// NextLanguage returns the language after current, wrapping around.
func NextLanguage(current string, supported []string) string {
	if len(supported) == 0 {
		return current
	}
	i := slices.Index(supported, current)
	return supported[(i+1)%len(supported)]
}
