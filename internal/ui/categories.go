package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/souqtv/souqcouch/internal/locale"
)

// CategoriesScreen shows every category at once as a wrapped, centered
// grid. Picking a card hands the selection back to the home screen.
type CategoriesScreen struct {
	grid *CategoryGrid
	loc  locale.Locale
	ScrollState

	OnPick func(item StripItem)

	width, height int
	picked        bool
}

func NewCategoriesScreen(items []StripItem, selectedID string, loc locale.Locale) *CategoriesScreen {
	cs := &CategoriesScreen{
		grid: NewCategoryGrid(),
		loc:  loc,
	}
	cs.grid.RTL = loc.RTL
	cs.grid.SetItems(items)
	cs.grid.SetSelected(selectedID)
	cs.grid.OnSelect = func(item StripItem) {
		if cs.OnPick != nil {
			cs.OnPick(item)
		}
		cs.picked = true
	}
	return cs
}

func (cs *CategoriesScreen) Name() string { return "Categories" }

func (cs *CategoriesScreen) OnEnter() {}
func (cs *CategoriesScreen) OnExit()  {}

func (cs *CategoriesScreen) Resize(w, h int) {
	cs.width = w
	cs.height = h
	cs.grid.SetSize(float64(w))
}

func (cs *CategoriesScreen) Update() (*ScreenTransition, error) {
	if cs.picked {
		cs.picked = false
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	_, _, back := InputState()
	if back {
		return &ScreenTransition{Type: TransitionPop}, nil
	}

	cs.grid.Update()
	cs.HandleMouseWheel()

	// Keep the wheel from scrolling past the last row.
	maxScroll := cs.grid.Height() + TopBarHeight + SectionGap - float64(cs.height)
	if maxScroll < 0 {
		maxScroll = 0
	}
	if cs.TargetScrollY > maxScroll {
		cs.TargetScrollY = maxScroll
	}

	return nil, nil
}

func (cs *CategoriesScreen) Draw(dst *ebiten.Image) {
	title := cs.loc.T("all_categories")
	if cs.loc.RTL {
		tw, _ := MeasureTextDir(title, FontSizeTitle, true)
		DrawTextDir(dst, title, float64(cs.width)-SectionPadding-tw, 14, FontSizeTitle, ColorText, true)
	} else {
		DrawText(dst, title, SectionPadding, 14, FontSizeTitle, ColorText)
	}

	cs.Animate()
	top := float64(TopBarHeight + SectionGap)
	clip := dst.SubImage(clipRect(0, top, float64(cs.width), float64(cs.height)-top)).(*ebiten.Image)
	cs.grid.Draw(clip, 0, top-cs.ScrollY)

	back := cs.loc.T("back")
	DrawTextCenteredDir(dst, "Esc — "+back, float64(cs.width)/2, float64(cs.height)-30,
		FontSizeSmall, ColorTextMuted, cs.loc.RTL)
}
