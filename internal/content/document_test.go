package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

const tomlDoc = `
title = "Marquee"
languages = ["en", "fr"]
footer = "© {year} Marquee"

[[nav]]
label = "Features"
href = "#features"

[[nav]]
label = "Blog"
href = "https://example.com/blog"

[[sections]]
id = "hero"
title = "Ship faster"
height = 800

[[sections]]
id = "features"
title = "Features"
reveal = true
carousel = true

[carousel]
title = "Customers"

[[carousel.items]]
title = "Acme"
caption = "Rockets"
`

const yamlDoc = `
title: Marquee
indicator: false
nav:
  - label: Pricing
    href: "#pricing"
sections:
  - id: pricing
    title: Pricing
    reveal: true
  - id: contact
    height: 300
`

func TestParseTOML(t *testing.T) {
	doc, err := Parse([]byte(tomlDoc), ".toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Lang != "en" {
		t.Fatalf("lang = %q, want first language", doc.Lang)
	}
	if !doc.Header || !doc.Indicator {
		t.Fatalf("header and indicator should default on")
	}
	if len(doc.Sections) != 2 || doc.Sections[1].Height != DefaultSectionHeight {
		t.Fatalf("sections = %+v", doc.Sections)
	}
	if id, ok := doc.CarouselSection(); !ok || id != "features" {
		t.Fatalf("CarouselSection = %q,%v", id, ok)
	}
	if got := doc.RevealIDs(); !reflect.DeepEqual(got, []string{"features"}) {
		t.Fatalf("RevealIDs = %v", got)
	}
	if len(doc.Nav) != 2 || doc.Nav[1].Href != "https://example.com/blog" {
		t.Fatalf("nav = %+v", doc.Nav)
	}
}

func TestParseYAML(t *testing.T) {
	doc, err := Parse([]byte(yamlDoc), ".yml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Indicator {
		t.Fatalf("indicator: false not applied")
	}
	if doc.Sections[0].Height != DefaultSectionHeight || doc.Sections[1].Height != 300 {
		t.Fatalf("heights = %v,%v", doc.Sections[0].Height, doc.Sections[1].Height)
	}
	if _, ok := doc.CarouselSection(); ok {
		t.Fatalf("document without carousel reported one")
	}
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := map[string]struct {
		data, ext, want string
	}{
		"missing id":      {"sections:\n  - title: x\n", ".yaml", "missing id"},
		"duplicate id":    {"sections:\n  - id: a\n  - id: a\n", ".yaml", "duplicate"},
		"orphan carousel": {"sections:\n  - id: a\n    carousel: true\n", ".yaml", "no carousel items"},
		"unknown field":   {"sectionz: []\n", ".yaml", "sectionz"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("{}"), ".json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.toml")
	if err := os.WriteFile(path, []byte("[[sections]]\ntitle = 'x'\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("err = %v, want path in message", err)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded := make(chan *Document, 4)
	failed := make(chan error, 4)
	w, err := NewWatcher(path, nil, func(d *Document) { loaded <- d }, func(err error) { failed <- err })
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.debounce = 10 * time.Millisecond
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	updated := strings.Replace(yamlDoc, "title: Marquee", "title: Updated", 1)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case doc := <-loaded:
		if doc.Title != "Updated" {
			t.Fatalf("title = %q, want Updated", doc.Title)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("document not reloaded")
	}

	if err := os.WriteFile(path, []byte("sections: [[["), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-failed:
	case <-time.After(3 * time.Second):
		t.Fatalf("parse failure not reported")
	}
}

func TestSampleDocumentLoads(t *testing.T) {
	doc, err := Load(filepath.Join("..", "..", "assets", "sample", "site.toml"))
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if id, ok := doc.CarouselSection(); !ok || id != "customers" {
		t.Fatalf("CarouselSection = %q,%v", id, ok)
	}
	if got := len(doc.RevealIDs()); got != 3 {
		t.Fatalf("reveal sections = %d, want 3", got)
	}
}
