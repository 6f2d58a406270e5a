package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/souqtv/souqcouch/internal/cache"
	"github.com/souqtv/souqcouch/internal/catalog"
	"github.com/souqtv/souqcouch/internal/locale"
)

// DetailScreen shows a single listing: photo, price, description.
type DetailScreen struct {
	client   *catalog.Client
	imgCache *cache.ImageCache
	loc      locale.Locale

	listing catalog.Listing
	photo   *ebiten.Image

	width, height int

	mu sync.Mutex
}

func NewDetailScreen(client *catalog.Client, imgCache *cache.ImageCache, loc locale.Locale, listing catalog.Listing) *DetailScreen {
	return &DetailScreen{
		client:   client,
		imgCache: imgCache,
		loc:      loc,
		listing:  listing,
	}
}

func (ds *DetailScreen) Name() string { return "Detail: " + ds.listing.ID }

func (ds *DetailScreen) OnEnter() {
	url := ds.client.ImageURL(ds.listing.Photo)
	if img := ds.imgCache.Get(url); img != nil {
		ds.photo = img
	} else {
		ds.imgCache.LoadAsync(url, func(img *ebiten.Image) {
			ds.mu.Lock()
			ds.photo = img
			ds.mu.Unlock()
		})
	}

	// The grid hands over a summary; fetch the full record for the
	// description.
	go func() {
		full, err := ds.client.Listing(context.Background(), ds.listing.ID)
		if err != nil {
			log.Debugf("listing detail fetch: %v", err)
			return
		}
		ds.mu.Lock()
		ds.listing = *full
		ds.mu.Unlock()
	}()
}

func (ds *DetailScreen) OnExit() {}

func (ds *DetailScreen) Resize(w, h int) {
	ds.width = w
	ds.height = h
}

func (ds *DetailScreen) Update() (*ScreenTransition, error) {
	_, _, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (ds *DetailScreen) Draw(dst *ebiten.Image) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	rtl := ds.loc.RTL
	photoW := float64(ds.width) * 0.45
	photoH := photoW * 0.66
	pad := float64(SectionPadding)
	photoX := pad
	textX := photoX + photoW + pad
	textW := float64(ds.width) - textX - pad
	if rtl {
		photoX = float64(ds.width) - pad - photoW
		textX = pad
	}

	y := float64(TopBarHeight)

	if ds.photo != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := ds.photo.Bounds()
		op.GeoM.Scale(photoW/float64(bounds.Dx()), photoH/float64(bounds.Dy()))
		op.GeoM.Translate(photoX, y)
		dst.DrawImage(ds.photo, op)
	} else {
		drawPhotoPlaceholder(dst, photoX, y, photoW, photoH, ColorTextMuted)
	}

	title := ds.loc.DisplayName(ds.listing.Title, ds.listing.TitleAr)
	ty := y
	if rtl {
		tw, _ := MeasureTextDir(title, FontSizeTitle, true)
		DrawTextDir(dst, title, textX+textW-tw, ty, FontSizeTitle, ColorText, true)
	} else {
		DrawText(dst, title, textX, ty, FontSizeTitle, ColorText)
	}
	ty += FontSizeTitle + 16

	if ds.listing.Price > 0 {
		price := fmt.Sprintf("%.0f %s", ds.listing.Price, ds.listing.Currency)
		DrawText(dst, price, textX, ty, FontSizeHeading, ColorPrimary)
		ty += FontSizeHeading + 12
	}
	if ds.listing.City != "" {
		DrawText(dst, ds.listing.City, textX, ty, FontSizeBody, ColorTextSecondary)
		ty += FontSizeBody + 16
	}
	if ds.listing.Description != "" {
		DrawTextWrapped(dst, ds.listing.Description, textX, ty, textW, FontSizeBody, ColorTextSecondary)
	}

	back := ds.loc.T("back")
	DrawTextCenteredDir(dst, "Esc — "+back, float64(ds.width)/2, float64(ds.height)-30,
		FontSizeSmall, ColorTextMuted, rtl)
}
