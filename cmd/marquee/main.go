package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/marquee/assets/icon"
	"github.com/depeter/marquee/internal/app"
	"github.com/depeter/marquee/internal/cache"
	"github.com/depeter/marquee/internal/config"
	"github.com/depeter/marquee/internal/constants"
	"github.com/depeter/marquee/internal/content"
	"github.com/depeter/marquee/internal/inspect"
	"github.com/depeter/marquee/internal/logging"
	"github.com/depeter/marquee/internal/site"
	"github.com/depeter/marquee/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "marquee:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "config file (default: $XDG_CONFIG_HOME/marquee/config.toml)")
	sitePath := flag.String("site", "", "page document, .toml or .yaml (overrides [site].path)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides [log].level)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Flag overrides stay local; cfg is persisted by theme changes.
	levelName := cfg.Log.Level
	if *logLevel != "" {
		levelName = *logLevel
	}
	docPath := cfg.SitePath()
	if *sitePath != "" {
		docPath = *sitePath
	}

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(level, cfg.Log.Dir)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	doc, err := content.Load(docPath)
	if err != nil {
		return fmt.Errorf("load page: %w", err)
	}
	logger.Info("page loaded", "path", docPath, "sections", len(doc.Sections))

	if err := ui.InitFonts(goregular.TTF); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}

	cacheDir := filepath.Join(os.TempDir(), constants.AppName, "images")
	if dir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(dir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir, filepath.Dir(docPath), logger.With("component", "images"))
	if err != nil {
		return fmt.Errorf("init image cache: %w", err)
	}

	fallback := site.ThemeDark
	if t, err := site.ParseTheme(cfg.UI.Theme); err == nil {
		fallback = t
	}
	lang := cfg.UI.Language
	if doc.Lang != "" {
		lang = doc.Lang
	}
	st := site.NewState(cfg, fallback, "/"+lang+"/", logger.With("component", "site"))

	game := app.NewGame(cfg, doc, imgCache, st, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Site.Watch {
		w, err := content.NewWatcher(docPath, logger.With("component", "watcher"), game.OnDocumentLoaded, game.OnDocumentError)
		if err != nil {
			logger.Warn("document watching disabled", "error", err)
		} else {
			defer w.Close()
			go func() {
				if err := w.Run(ctx); err != nil && ctx.Err() == nil {
					logger.Warn("document watcher stopped", "error", err)
				}
			}()
		}
	}

	if cfg.Inspect.Addr != "" {
		hub := inspect.NewHub(logger.With("component", "inspect"), 0, 0)
		go hub.Run(ctx)
		go func() {
			if err := inspect.Serve(ctx, cfg.Inspect.Addr, hub); err != nil {
				logger.Error("inspect server failed", "addr", cfg.Inspect.Addr, "error", err)
			}
		}()
		game.SetInspector(hub)
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	title := constants.AppName
	if doc.Title != "" {
		title = doc.Title + " - " + constants.AppName
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)
	ebiten.SetTPS(constants.TargetTPS)

	return ebiten.RunGame(game)
}
