// Package cache loads section and carousel images for the page, keeping
// decoded images in memory and remote downloads on disk.
package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// ImageCache resolves image sources (http(s) URLs or paths relative to the
// document) to ebiten images.
type ImageCache struct {
	cacheDir string
	baseDir  string
	logger   *slog.Logger
	memory   sync.Map // src -> *ebiten.Image
	loading  sync.Map // src -> *loadEntry
	sem      chan struct{}
}

type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(*ebiten.Image)
}

// NewImageCache creates a cache storing downloads under cacheDir. Local
// sources are resolved against baseDir.
func NewImageCache(cacheDir, baseDir string, logger *slog.Logger) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ImageCache{
		cacheDir: cacheDir,
		baseDir:  baseDir,
		logger:   logger,
		sem:      make(chan struct{}, 6),
	}, nil
}

// Get returns a loaded image, or nil.
func (ic *ImageCache) Get(src string) *ebiten.Image {
	if v, ok := ic.memory.Load(src); ok {
		return v.(*ebiten.Image)
	}
	return nil
}

// LoadAsync loads src in the background. callback may run on another goroutine
// and is not called when loading fails.
func (ic *ImageCache) LoadAsync(src string, callback func(*ebiten.Image)) {
	if src == "" {
		return
	}
	if v, ok := ic.memory.Load(src); ok {
		callback(v.(*ebiten.Image))
		return
	}

	entry := &loadEntry{callbacks: []func(*ebiten.Image){callback}}
	if existing, loaded := ic.loading.LoadOrStore(src, entry); loaded {
		e := existing.(*loadEntry)
		e.mu.Lock()
		e.callbacks = append(e.callbacks, callback)
		e.mu.Unlock()
		return
	}

	go func() {
		defer ic.loading.Delete(src)

		ic.sem <- struct{}{}
		defer func() { <-ic.sem }()

		img, err := ic.loadImage(src)
		if err != nil {
			ic.logger.Warn("image load failed", "src", src, "error", err)
			return
		}

		eimg := ebiten.NewImageFromImage(img)
		ic.memory.Store(src, eimg)

		entry.mu.Lock()
		cbs := make([]func(*ebiten.Image), len(entry.callbacks))
		copy(cbs, entry.callbacks)
		entry.mu.Unlock()

		for _, cb := range cbs {
			cb(eimg)
		}
	}()
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

func (ic *ImageCache) loadImage(src string) (image.Image, error) {
	if !isRemote(src) {
		path := src
		if !filepath.IsAbs(path) {
			path = filepath.Join(ic.baseDir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		return img, err
	}

	diskPath := ic.diskPath(src)
	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, download again.
		os.Remove(diskPath)
	}

	resp, err := httpClient.Get(src)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(io.TeeReader(resp.Body, f))
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, err
	}
	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// Clear drops all images from memory, forcing local files to be reread.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}
