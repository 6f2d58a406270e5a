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

// focus areas within the home screen
const (
	focusStrip = iota
	focusGrid
)

// HomeScreen shows the category strip with the filtered listings grid below it.
type HomeScreen struct {
	client   *catalog.Client
	imgCache *cache.ImageCache
	loc      locale.Locale
	pageSize int

	strip *CategoryStrip
	grid  *ListingGrid
	ScrollState

	categories []catalog.Category
	listings   []catalog.Listing

	width, height int
	focusArea     int

	loaded    bool
	loading   bool
	loadError string

	// listingsSeq discards stale async listing responses after rapid
	// category switches.
	listingsSeq     int
	listingsLoading bool

	OnListingSelected func(l catalog.Listing)
	OnLocaleChanged   func(l locale.Locale)

	errDisplay ErrorDisplay
	localeRect ButtonRect
	browseRect ButtonRect

	mu sync.Mutex
}

func NewHomeScreen(client *catalog.Client, imgCache *cache.ImageCache, loc locale.Locale, showHint bool, pageSize int) *HomeScreen {
	hs := &HomeScreen{
		client:   client,
		imgCache: imgCache,
		loc:      loc,
		pageSize: pageSize,
		strip:    NewCategoryStrip(),
		grid:     NewListingGrid(),
	}
	hs.strip.Active = true
	hs.strip.ShowHint = showHint
	hs.applyLocaleToWidgets()
	// Fired from Update paths that already hold mu.
	hs.strip.OnSelect = hs.selectCategoryLocked
	SetDebugStrip(hs.strip)
	return hs
}

func (hs *HomeScreen) Name() string { return "Home" }

func (hs *HomeScreen) OnEnter() {
	if !hs.loaded && !hs.loading {
		hs.loading = true
		go hs.loadCategories()
	}
}

func (hs *HomeScreen) OnExit() {}

func (hs *HomeScreen) Resize(w, h int) {
	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.width = w
	hs.height = h
	hs.strip.SetSize(float64(w))
	hs.grid.SetWidth(float64(w))
}

func (hs *HomeScreen) applyLocaleToWidgets() {
	hs.strip.SetDirection(hs.loc.RTL)
	hs.strip.HintText = hs.loc.T("scroll_hint")
}

func (hs *HomeScreen) loadCategories() {
	cats, err := hs.client.Categories(context.Background(), hs.loc.Code())
	hs.mu.Lock()
	if err != nil {
		log.Errorf("load categories: %v", err)
		hs.loading = false
		hs.loadError = "Failed to load categories: " + err.Error()
		hs.mu.Unlock()
		return
	}
	hs.categories = cats
	hs.rebuildStripItemsLocked()
	hs.loaded = true
	hs.loading = false
	hs.loadError = ""
	// Initial grid shows the newest listings across all categories.
	hs.loadListingsLocked("")
	hs.mu.Unlock()
}

// rebuildStripItemsLocked converts categories to strip cards for the active
// locale. Caller holds mu.
func (hs *HomeScreen) rebuildStripItemsLocked() {
	items := make([]StripItem, len(hs.categories))
	for i, cat := range hs.categories {
		items[i] = StripItem{
			ID:    cat.ID,
			Label: hs.loc.DisplayName(cat.Name, cat.NameAr),
			Slug:  cat.Slug,
		}
		url := hs.client.ImageURL(cat.Icon)
		if img := hs.imgCache.Get(url); img != nil {
			items[i].Icon = img
			continue
		}
		catID := cat.ID
		hs.imgCache.LoadAsync(url, func(img *ebiten.Image) {
			hs.mu.Lock()
			defer hs.mu.Unlock()
			for j := range hs.strip.Items {
				if hs.strip.Items[j].ID == catID {
					hs.strip.Items[j].Icon = img
					break
				}
			}
		})
	}
	selected := hs.strip.SelectedID()
	hs.strip.SetItems(items)
	// SetItems resets scroll; restore the selection highlight without
	// re-triggering the autoscroll animation from a stale offset.
	if selected != "" {
		hs.strip.SetSelected(selected)
	}
}

// selectCategoryLocked highlights the category and kicks off a listings
// reload. Caller holds mu.
func (hs *HomeScreen) selectCategoryLocked(item StripItem) {
	hs.strip.SetSelected(item.ID)
	hs.loadListingsLocked(item.Slug)
}

// loadListingsLocked starts an async listings fetch. Caller holds mu.
func (hs *HomeScreen) loadListingsLocked(slug string) {
	hs.listingsSeq++
	seq := hs.listingsSeq
	hs.listingsLoading = true
	code := hs.loc.Code()
	pageSize := hs.pageSize

	go func() {
		listings, total, err := hs.client.Listings(context.Background(), slug, code, pageSize)
		hs.mu.Lock()
		defer hs.mu.Unlock()
		if seq != hs.listingsSeq {
			return // a newer request superseded this one
		}
		hs.listingsLoading = false
		if err != nil {
			log.Errorf("load listings for %q: %v", slug, err)
			hs.loadError = "Failed to load listings: " + err.Error()
			return
		}
		log.WithField("category", slug).Debugf("loaded %d of %d listings", len(listings), total)
		hs.loadError = ""
		hs.listings = listings
		hs.rebuildGridCellsLocked()
		hs.Reset()
	}()
}

// rebuildGridCellsLocked converts listings to grid cells. Caller holds mu.
func (hs *HomeScreen) rebuildGridCellsLocked() {
	cells := make([]ListingCell, len(hs.listings))
	for i, l := range hs.listings {
		cells[i] = ListingCell{
			ID:    l.ID,
			Title: hs.loc.DisplayName(l.Title, l.TitleAr),
			City:  l.City,
		}
		if l.Price > 0 {
			cells[i].Price = fmt.Sprintf("%.0f %s", l.Price, l.Currency)
		}
		url := hs.client.ImageURL(l.Photo)
		if img := hs.imgCache.Get(url); img != nil {
			cells[i].Image = img
			continue
		}
		listingID := l.ID
		hs.imgCache.LoadAsync(url, func(img *ebiten.Image) {
			hs.mu.Lock()
			defer hs.mu.Unlock()
			for j := range hs.grid.Cells {
				if hs.grid.Cells[j].ID == listingID {
					hs.grid.Cells[j].Image = img
					break
				}
			}
		})
	}
	hs.grid.SetCells(cells)
}

// ToggleLocale flips between the supported languages. Bound to the
// configured locale key.
func (hs *HomeScreen) ToggleLocale() {
	hs.toggleLocale()
}

// toggleLocale flips between the supported languages and rebuilds all
// locale-derived state: labels, direction, hint text, listings.
func (hs *HomeScreen) toggleLocale() {
	hs.mu.Lock()
	hs.loc = hs.loc.Next()
	hs.applyLocaleToWidgets()
	hs.rebuildStripItemsLocked()
	hs.loadListingsLocked(hs.selectedSlugLocked())
	loc := hs.loc
	hs.mu.Unlock()

	if hs.OnLocaleChanged != nil {
		hs.OnLocaleChanged(loc)
	}
}

// selectedSlugLocked returns the slug of the selected category, or "".
// Caller holds mu.
func (hs *HomeScreen) selectedSlugLocked() string {
	id := hs.strip.SelectedID()
	for _, cat := range hs.categories {
		if cat.ID == id {
			return cat.Slug
		}
	}
	return ""
}

func (hs *HomeScreen) Update() (*ScreenTransition, error) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	if mx, my, clicked := MouseJustClicked(); clicked {
		if hs.localeRect.Contains(mx, my) {
			hs.mu.Unlock()
			hs.toggleLocale()
			hs.mu.Lock()
			return nil, nil
		}
		if hs.browseRect.Contains(mx, my) && len(hs.strip.Items) > 0 {
			browse := NewCategoriesScreen(hs.strip.Items, hs.strip.SelectedID(), hs.loc)
			browse.OnPick = func(item StripItem) {
				hs.mu.Lock()
				hs.selectCategoryLocked(item)
				hs.mu.Unlock()
			}
			return &ScreenTransition{Type: TransitionPush, Screen: browse}, nil
		}
		if hs.errDisplay.HandleClick(mx, my, hs.loadError) {
			return nil, nil
		}
		if idx := hs.grid.HandleClick(mx, my); idx >= 0 {
			hs.grid.Focus.Focused = idx
			if hs.OnListingSelected != nil {
				hs.OnListingSelected(hs.listings[idx])
			}
			return nil, nil
		}
	}

	if !hs.loaded {
		return nil, nil
	}

	hs.strip.Update()

	// Horizontal mouse wheel drives the strip, vertical the listings.
	wx, _ := MouseWheelDelta()
	if wx > 0 {
		hs.strip.HandleDirection(DirRight)
	} else if wx < 0 {
		hs.strip.HandleDirection(DirLeft)
	}
	hs.HandleMouseWheel()

	dir, enter, _ := InputState()

	switch hs.focusArea {
	case focusStrip:
		switch dir {
		case DirLeft, DirRight:
			hs.strip.HandleDirection(dir)
		case DirDown:
			if len(hs.grid.Cells) > 0 {
				hs.focusArea = focusGrid
				hs.strip.Active = false
				hs.grid.Active = true
			}
		}
		if enter {
			hs.strip.ActivateFocused()
		}

	case focusGrid:
		if moved := hs.grid.Update(dir); moved {
			hs.EnsureRowVisible(hs.grid.Focus.FocusedRow(), 0, hs.listingsViewHeight())
		} else if dir == DirUp {
			hs.focusArea = focusStrip
			hs.grid.Active = false
			hs.strip.Active = true
		}
		if enter {
			if cell := hs.grid.FocusedCell(); cell != nil && hs.OnListingSelected != nil {
				for _, l := range hs.listings {
					if l.ID == cell.ID {
						hs.OnListingSelected(l)
						break
					}
				}
			}
		}
	}

	return nil, nil
}

// listingsViewHeight is the vertical space available to the grid viewport.
func (hs *HomeScreen) listingsViewHeight() float64 {
	return float64(hs.height) - hs.listingsTop()
}

// listingsTop is the y coordinate where the grid viewport begins.
func (hs *HomeScreen) listingsTop() float64 {
	return TopBarHeight + hs.strip.Height() + SectionTitleH + SectionGap
}

func (hs *HomeScreen) Draw(dst *ebiten.Image) {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	hs.drawTopBar(dst)

	if !hs.loaded {
		msg := hs.loc.T("loading")
		DrawTextCenteredDir(dst, msg, float64(hs.width)/2, float64(hs.height)/2,
			FontSizeHeading, ColorTextSecondary, hs.loc.RTL)
		hs.errDisplay.Draw(dst, hs.loadError, hs.loc, SectionPadding, float64(hs.height)-60, FontSizeSmall)
		return
	}

	hs.strip.Draw(dst, 0, TopBarHeight)

	// Listings heading sits on the reading side.
	headingY := TopBarHeight + hs.strip.Height() + SectionGap/2
	heading := hs.loc.T("listings")
	if hs.loc.RTL {
		tw, _ := MeasureTextDir(heading, FontSizeHeading, true)
		DrawTextDir(dst, heading, float64(hs.width)-SectionPadding-tw, headingY,
			FontSizeHeading, ColorText, true)
	} else {
		DrawText(dst, heading, SectionPadding, headingY, FontSizeHeading, ColorText)
	}

	top := hs.listingsTop()
	hs.Animate()

	if hs.listingsLoading {
		DrawTextCenteredDir(dst, hs.loc.T("loading"), float64(hs.width)/2, top+80,
			FontSizeBody, ColorTextMuted, hs.loc.RTL)
	} else if len(hs.grid.Cells) == 0 {
		DrawTextCenteredDir(dst, hs.loc.T("no_listings"), float64(hs.width)/2, top+80,
			FontSizeBody, ColorTextMuted, hs.loc.RTL)
	} else {
		clip := dst.SubImage(clipRect(0, top, float64(hs.width), float64(hs.height)-top)).(*ebiten.Image)
		hs.grid.Draw(clip, SectionPadding, top-hs.ScrollY, float64(hs.height))
	}

	hs.errDisplay.Draw(dst, hs.loadError, hs.loc, SectionPadding, float64(hs.height)-40, FontSizeSmall)
}

func (hs *HomeScreen) drawTopBar(dst *ebiten.Image) {
	DrawText(dst, "SouqCouch", SectionPadding, 14, FontSizeTitle, ColorPrimary)

	// Locale toggle shows the other language's self-name at the trailing edge.
	label := hs.loc.Next().SelfName()
	tw, _ := MeasureTextDir(label, FontSizeBody, hs.loc.Next().RTL)
	btnW := tw + 24
	btnX := float64(hs.width) - SectionPadding - btnW
	if hs.loc.RTL {
		btnX = SectionPadding
	}
	hs.localeRect = ButtonRect{X: btnX, Y: 12, W: btnW, H: 32}
	drawToggleButton(dst, hs.localeRect, label, hs.loc.Next().RTL)

	// Browse-all button sits inward of the locale toggle.
	browseLabel := hs.loc.T("all_categories")
	bw, _ := MeasureTextDir(browseLabel, FontSizeBody, hs.loc.RTL)
	bw += 24
	bx := btnX - bw - 12
	if hs.loc.RTL {
		bx = btnX + btnW + 12
	}
	hs.browseRect = ButtonRect{X: bx, Y: 12, W: bw, H: 32}
	drawToggleButton(dst, hs.browseRect, browseLabel, hs.loc.RTL)
}
