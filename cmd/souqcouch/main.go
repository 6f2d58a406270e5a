package main

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/souqtv/souqcouch/assets/icon"
	"github.com/souqtv/souqcouch/internal/app"
	"github.com/souqtv/souqcouch/internal/cache"
	"github.com/souqtv/souqcouch/internal/catalog"
	"github.com/souqtv/souqcouch/internal/config"
	"github.com/souqtv/souqcouch/internal/locale"
	"github.com/souqtv/souqcouch/internal/ui"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("SOUQCOUCH_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts. The bundled Go font has no Arabic glyphs, so Arabic
	// text needs font_path pointed at a TTF that covers it.
	ttf := goregular.TTF
	if cfg.UI.FontPath != "" {
		data, err := os.ReadFile(cfg.UI.FontPath)
		if err != nil {
			log.Warnf("Failed to read font %s, using bundled font: %v", cfg.UI.FontPath, err)
		} else {
			ttf = data
		}
	}
	if err := ui.InitFonts(ttf); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// Init image cache
	cacheDir := filepath.Join(os.TempDir(), "souqcouch", "images")
	if configDir, err := config.ConfigDir(); err == nil {
		cacheDir = filepath.Join(configDir, "cache", "images")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		log.Fatalf("Failed to init image cache: %v", err)
	}

	client := catalog.NewClient(cfg.API.BaseURL)
	loc := locale.Resolve(cfg.UI.Locale)

	game := app.NewGame(cfg, client, imgCache)

	sf := &screenFactory{game: game, cfg: cfg, imgCache: imgCache}
	sf.pushHome(loc)

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("SouqCouch")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
