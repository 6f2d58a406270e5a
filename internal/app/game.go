package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/souqtv/souqcouch/internal/cache"
	"github.com/souqtv/souqcouch/internal/catalog"
	"github.com/souqtv/souqcouch/internal/config"
	"github.com/souqtv/souqcouch/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Client  *catalog.Client
	Cache   *cache.ImageCache
	Screens *ui.ScreenManager

	Width, Height int

	// OnLocaleKey is invoked when the configured locale-toggle key is
	// pressed. Wired by the screen factory.
	OnLocaleKey func()
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, client *catalog.Client, imgCache *cache.ImageCache) *Game {
	return &Game{
		Config:  cfg,
		Client:  client,
		Cache:   imgCache,
		Screens: ui.NewScreenManager(cfg.UI.Width, cfg.UI.Height),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if g.OnLocaleKey != nil && keyJustPressed(g.Config.UI.LocaleKey) {
		g.OnLocaleKey()
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen)
}

// Layout reports the logical screen size. The window is resizable; screens
// re-measure themselves whenever the size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width = outsideWidth
		g.Height = outsideHeight
		g.Screens.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
