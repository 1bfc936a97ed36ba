// Package content loads the page document that marquee renders.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultSectionHeight is used for sections that do not set a height.
const DefaultSectionHeight = 600

// ErrUnsupportedFormat is returned for document files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Document is a single marketing page.
type Document struct {
	Title     string    `toml:"title" yaml:"title"`
	Lang      string    `toml:"lang" yaml:"lang"`
	Languages []string  `toml:"languages" yaml:"languages"`
	Header    bool      `toml:"header" yaml:"header"`
	Indicator bool      `toml:"indicator" yaml:"indicator"`
	Nav       []Link    `toml:"nav" yaml:"nav"`
	Sections  []Section `toml:"sections" yaml:"sections"`
	Carousel  *Carousel `toml:"carousel" yaml:"carousel"`
	Footer    string    `toml:"footer" yaml:"footer"`
}

// Link is a navigation entry. "#id" hrefs point at sections on this page.
type Link struct {
	Label string `toml:"label" yaml:"label"`
	Href  string `toml:"href" yaml:"href"`
}

// Section is a vertical block of the page.
type Section struct {
	ID     string  `toml:"id" yaml:"id"`
	Title  string  `toml:"title" yaml:"title"`
	Body   string  `toml:"body" yaml:"body"`
	Height float64 `toml:"height" yaml:"height"`
	Image  string  `toml:"image" yaml:"image"`
	// Reveal fades the section in the first time it scrolls into view.
	Reveal bool `toml:"reveal" yaml:"reveal"`
	// Carousel places the document's carousel at the bottom of this section.
	Carousel bool `toml:"carousel" yaml:"carousel"`
}

// Carousel is a horizontally draggable row of cards.
type Carousel struct {
	Title string         `toml:"title" yaml:"title"`
	Items []CarouselItem `toml:"items" yaml:"items"`
}

// CarouselItem is one card in the carousel.
type CarouselItem struct {
	Title   string `toml:"title" yaml:"title"`
	Caption string `toml:"caption" yaml:"caption"`
	Image   string `toml:"image" yaml:"image"`
}

// Load reads a TOML or YAML document, chosen by file extension.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ".yml").
func Parse(data []byte, ext string) (*Document, error) {
	doc := &Document{Header: true, Indicator: true}
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) applyDefaults() {
	for i := range d.Sections {
		if d.Sections[i].Height <= 0 {
			d.Sections[i].Height = DefaultSectionHeight
		}
	}
	if d.Lang == "" && len(d.Languages) > 0 {
		d.Lang = d.Languages[0]
	}
}

// Validate checks section ids and carousel placement.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Sections))
	carousels := 0
	for i, s := range d.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: missing id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("section %q: duplicate id", s.ID)
		}
		seen[s.ID] = true
		if s.Carousel {
			carousels++
		}
	}
	if carousels > 1 {
		return errors.New("carousel placed in more than one section")
	}
	if carousels == 1 && (d.Carousel == nil || len(d.Carousel.Items) == 0) {
		return errors.New("section requests a carousel but the document has no carousel items")
	}
	return nil
}

// CarouselSection returns the id of the section hosting the carousel.
func (d *Document) CarouselSection() (string, bool) {
	if d.Carousel == nil {
		return "", false
	}
	for _, s := range d.Sections {
		if s.Carousel {
			return s.ID, true
		}
	}
	return "", false
}

// RevealIDs returns the ids of sections that fade in on first view.
func (d *Document) RevealIDs() []string {
	var ids []string
	for _, s := range d.Sections {
		if s.Reveal {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
