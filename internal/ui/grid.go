package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ListingCell is one card in the listings grid. Price and city are already
// formatted for the active locale.
type ListingCell struct {
	ID    string
	Title string
	Price string
	City  string
	Image *ebiten.Image
}

// ListingGrid lays listing cards out in a wrapping grid with keyboard focus.
// Vertical scrolling belongs to the owning screen's ScrollState.
type ListingGrid struct {
	Cells  []ListingCell
	Focus  *FocusGrid
	Active bool

	width     float64
	itemRects []ButtonRect
}

func NewListingGrid() *ListingGrid {
	return &ListingGrid{Focus: NewFocusGrid(1, 0)}
}

// SetCells replaces the grid contents, keeping focus in range.
func (lg *ListingGrid) SetCells(cells []ListingCell) {
	lg.Cells = cells
	lg.itemRects = make([]ButtonRect, len(cells))
	lg.Focus.SetTotal(len(cells))
}

// SetWidth recomputes the column count from the available width.
func (lg *ListingGrid) SetWidth(w float64) {
	if w <= 0 {
		return
	}
	lg.width = w
	cols := int((w - 2*SectionPadding + ListingCardGap) / (ListingCardWidth + ListingCardGap))
	lg.Focus.SetCols(cols)
}

// Update moves focus. Returns false when the move leaves the grid.
func (lg *ListingGrid) Update(dir Direction) bool {
	if !lg.Active {
		return false
	}
	return lg.Focus.Update(dir)
}

// FocusedCell returns the focused listing, or nil for an empty grid.
func (lg *ListingGrid) FocusedCell() *ListingCell {
	if len(lg.Cells) == 0 || lg.Focus.Focused >= len(lg.Cells) {
		return nil
	}
	return &lg.Cells[lg.Focus.Focused]
}

// HandleClick returns the index of the clicked cell, or -1.
func (lg *ListingGrid) HandleClick(mx, my int) int {
	for i, r := range lg.itemRects {
		if r.W > 0 && r.Contains(mx, my) {
			return i
		}
	}
	return -1
}

// Draw renders the grid and returns its full content height (for scroll
// range computation). viewH bounds the culling window.
func (lg *ListingGrid) Draw(dst *ebiten.Image, baseX, baseY, viewH float64) float64 {
	if len(lg.Cells) == 0 {
		return 0
	}
	cols := lg.Focus.Cols

	for i := range lg.Cells {
		row := i / cols
		col := i % cols
		ix := baseX + float64(col)*(ListingCardWidth+ListingCardGap)
		iy := baseY + float64(row)*GridRowHeight + ListingFocusPad

		// Cull rows outside the viewport
		if iy+ListingCardHeight < 0 || iy > viewH {
			lg.itemRects[i] = ButtonRect{}
			continue
		}
		lg.itemRects[i] = ButtonRect{X: ix, Y: iy, W: ListingCardWidth, H: ListingCardHeight}
		lg.drawCell(dst, i, ix, iy)
	}

	rows := (len(lg.Cells) + cols - 1) / cols
	return float64(rows) * GridRowHeight
}

func (lg *ListingGrid) drawCell(dst *ebiten.Image, i int, ix, iy float64) {
	cell := &lg.Cells[i]
	focused := lg.Active && i == lg.Focus.Focused

	if focused {
		vector.DrawFilledRect(dst,
			float32(ix-ListingFocusPad), float32(iy-ListingFocusPad),
			ListingCardWidth+ListingFocusPad*2, ListingCardHeight+ListingFocusPad*2,
			ColorFocusBorder, false)
	}

	if cell.Image != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := cell.Image.Bounds()
		op.GeoM.Scale(
			float64(ListingCardWidth)/float64(bounds.Dx()),
			float64(ListingCardHeight)/float64(bounds.Dy()))
		op.GeoM.Translate(ix, iy)
		dst.DrawImage(cell.Image, op)
	} else {
		vector.DrawFilledRect(dst, float32(ix), float32(iy),
			ListingCardWidth, ListingCardHeight, ColorSurface, false)
		drawPhotoPlaceholder(dst, ix+ListingCardWidth*0.3, iy+ListingCardHeight*0.25,
			ListingCardWidth*0.4, ListingCardHeight*0.5, ColorTextMuted)
	}

	titleColor := ColorTextSecondary
	if focused {
		titleColor = ColorText
	}
	title := truncateText(cell.Title, ListingCardWidth, FontSizeCaption)
	DrawText(dst, title, ix, iy+ListingCardHeight+4, FontSizeCaption, titleColor)
	if cell.Price != "" {
		DrawText(dst, cell.Price, ix, iy+ListingCardHeight+4+FontSizeCaption+4,
			FontSizeCaption, ColorPrimary)
	}
}
