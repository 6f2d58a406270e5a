package ui

import "testing"

func newWrappedGrid(n int, width float64) *CategoryGrid {
	cg := NewCategoryGrid()
	cg.SetItems(makeItems(n))
	cg.SetSize(width)
	return cg
}

func TestWrapColumnCount(t *testing.T) {
	cg := newWrappedGrid(10, 1280)

	// available = 1280 - 2*40 = 1200 → 8 slots of 152
	if cg.cols != 8 {
		t.Fatalf("cols = %d, want 8", cg.cols)
	}
	if rows := cg.Rows(); rows != 2 {
		t.Fatalf("Rows() = %d, want 2", rows)
	}
}

func TestWrapColsCappedByItemCount(t *testing.T) {
	cg := newWrappedGrid(3, 1280)

	if cg.cols != 3 {
		t.Fatalf("cols = %d, want 3", cg.cols)
	}
	if rows := cg.Rows(); rows != 1 {
		t.Fatalf("Rows() = %d, want 1", rows)
	}
	// rowWidth = 3*152 - 16 = 440, centered in 1280
	if cg.blockX != 420 {
		t.Fatalf("blockX = %v, want 420", cg.blockX)
	}
}

func TestWrapNarrowWindowKeepsOneColumn(t *testing.T) {
	cg := newWrappedGrid(5, 100)

	if cg.cols != 1 {
		t.Fatalf("cols = %d, want 1", cg.cols)
	}
	if rows := cg.Rows(); rows != 5 {
		t.Fatalf("Rows() = %d, want 5", rows)
	}
}

func TestWrapHeight(t *testing.T) {
	cg := newWrappedGrid(10, 1280)

	// two rows of cards with one gap between them
	want := float64(2*(CategoryCardHeight+CategoryCardGap) - CategoryCardGap)
	if h := cg.Height(); h != want {
		t.Fatalf("Height() = %v, want %v", h, want)
	}

	empty := newWrappedGrid(0, 1280)
	if h := empty.Height(); h != 0 {
		t.Fatalf("empty Height() = %v, want 0", h)
	}
}
