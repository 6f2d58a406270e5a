package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// CategoryGrid is the non-scrolling variant of the category strip: cards
// wrap onto as many rows as needed and the block is centered horizontally.
// It shares the strip's cards and selection semantics but has no scroll
// state at all.
type CategoryGrid struct {
	Items    []StripItem
	OnSelect func(item StripItem)
	RTL      bool

	containerW float64
	cols       int
	blockX     float64

	selectedID string
	itemRects  []ButtonRect
}

func NewCategoryGrid() *CategoryGrid {
	return &CategoryGrid{}
}

func (cg *CategoryGrid) SetItems(items []StripItem) {
	cg.Items = items
	cg.itemRects = make([]ButtonRect, len(items))
	cg.recalcLayout()
}

func (cg *CategoryGrid) SetSize(w float64) {
	if w <= 0 || w == cg.containerW {
		return
	}
	cg.containerW = w
	cg.recalcLayout()
}

func (cg *CategoryGrid) SetSelected(id string) {
	cg.selectedID = id
}

func (cg *CategoryGrid) recalcLayout() {
	if cg.containerW <= 0 {
		return
	}
	available := cg.containerW - 2*StripBasePadding
	cols := int((available + CategoryCardGap) / CategoryCardSlot)
	if cols < 1 {
		cols = 1
	}
	if cols > len(cg.Items) && len(cg.Items) > 0 {
		cols = len(cg.Items)
	}
	cg.cols = cols

	rowWidth := float64(cols)*CategoryCardSlot - CategoryCardGap
	cg.blockX = (cg.containerW - rowWidth) / 2
	if cg.blockX < StripBasePadding {
		cg.blockX = StripBasePadding
	}
}

// Rows returns the number of wrapped rows for the current layout.
func (cg *CategoryGrid) Rows() int {
	if len(cg.Items) == 0 || cg.cols == 0 {
		return 0
	}
	return (len(cg.Items) + cg.cols - 1) / cg.cols
}

// Height returns the total height of the wrapped block.
func (cg *CategoryGrid) Height() float64 {
	rows := cg.Rows()
	if rows == 0 {
		return 0
	}
	return float64(rows)*(CategoryCardHeight+CategoryCardGap) - CategoryCardGap
}

// Update handles card clicks.
func (cg *CategoryGrid) Update() {
	if len(cg.Items) == 0 {
		return
	}
	if mx, my, clicked := MouseJustClicked(); clicked {
		for i, r := range cg.itemRects {
			if r.W > 0 && r.Contains(mx, my) {
				if cg.OnSelect != nil {
					cg.OnSelect(cg.Items[i])
				}
				return
			}
		}
	}
}

// Draw renders the wrapped grid at (x, y) and returns the height consumed.
// Rows fill in reading order: under RTL the first card sits at the row's
// right edge.
func (cg *CategoryGrid) Draw(dst *ebiten.Image, x, y float64) float64 {
	if len(cg.Items) == 0 || cg.cols == 0 {
		return 0
	}

	rowWidth := float64(cg.cols)*CategoryCardSlot - CategoryCardGap
	for i := range cg.Items {
		row := i / cg.cols
		col := i % cg.cols
		colX := float64(col) * CategoryCardSlot
		if cg.RTL {
			colX = rowWidth - colX - CategoryCardWidth
		}
		ix := x + cg.blockX + colX
		iy := y + float64(row)*(CategoryCardHeight+CategoryCardGap)

		cg.itemRects[i] = ButtonRect{X: ix, Y: iy, W: CategoryCardWidth, H: CategoryCardHeight}
		item := &cg.Items[i]
		drawCategoryCard(dst, item, ix, iy, item.ID != "" && item.ID == cg.selectedID, false, cg.RTL)
	}

	return cg.Height()
}
