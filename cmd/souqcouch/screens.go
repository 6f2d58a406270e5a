package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/souqtv/souqcouch/internal/app"
	"github.com/souqtv/souqcouch/internal/cache"
	"github.com/souqtv/souqcouch/internal/catalog"
	"github.com/souqtv/souqcouch/internal/config"
	"github.com/souqtv/souqcouch/internal/locale"
	"github.com/souqtv/souqcouch/internal/ui"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game     *app.Game
	cfg      *config.Config
	imgCache *cache.ImageCache
}

func (sf *screenFactory) pushHome(loc locale.Locale) {
	home := ui.NewHomeScreen(sf.game.Client, sf.imgCache, loc, sf.cfg.UI.ScrollHint, sf.cfg.API.PageSize)
	home.OnListingSelected = func(l catalog.Listing) {
		sf.pushDetail(l)
	}
	home.OnLocaleChanged = func(l locale.Locale) {
		sf.cfg.UI.Locale = l.Code()
		if err := sf.cfg.Save(); err != nil {
			log.Warnf("Failed to save config: %v", err)
		}
	}
	sf.game.OnLocaleKey = home.ToggleLocale
	sf.game.Screens.Replace(home)
}

func (sf *screenFactory) pushDetail(l catalog.Listing) {
	loc := locale.Resolve(sf.cfg.UI.Locale)
	detail := ui.NewDetailScreen(sf.game.Client, sf.imgCache, loc, l)
	sf.game.Screens.Push(detail)
}
