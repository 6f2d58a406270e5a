package ui

import "testing"

func TestFocusGridMovement(t *testing.T) {
	fg := NewFocusGrid(3, 8) // 3 cols, rows of 3+3+2

	steps := []struct {
		dir   Direction
		moved bool
		want  int
	}{
		{DirRight, true, 1},
		{DirRight, true, 2},
		{DirRight, false, 2}, // right edge
		{DirDown, true, 5},
		{DirLeft, true, 4},
		{DirDown, true, 7},
		{DirDown, false, 7}, // bottom edge hands focus back
		{DirUp, true, 4},
		{DirUp, true, 1},
		{DirUp, false, 1}, // top edge hands focus back
	}
	for i, s := range steps {
		moved := fg.Update(s.dir)
		if moved != s.moved || fg.Focused != s.want {
			t.Fatalf("step %d: moved=%v focused=%d, want moved=%v focused=%d",
				i, moved, fg.Focused, s.moved, s.want)
		}
	}
}

func TestFocusGridEmpty(t *testing.T) {
	fg := NewFocusGrid(3, 0)
	if fg.Update(DirDown) {
		t.Fatal("empty grid should not move focus")
	}
}

func TestFocusGridSetTotalClampsFocus(t *testing.T) {
	fg := NewFocusGrid(3, 9)
	fg.Focused = 8
	fg.SetTotal(4)
	if fg.Focused != 3 {
		t.Fatalf("Focused = %d after shrink, want 3", fg.Focused)
	}
}

func TestListingGridColumnCount(t *testing.T) {
	lg := NewListingGrid()
	lg.SetCells(make([]ListingCell, 12))

	// (1280 - 2*40 + 28) / (220 + 28) = 4 columns
	lg.SetWidth(1280)
	if lg.Focus.Cols != 4 {
		t.Fatalf("Cols = %d at 1280px, want 4", lg.Focus.Cols)
	}

	// Too narrow for a full card still keeps one column.
	lg.SetWidth(200)
	if lg.Focus.Cols != 1 {
		t.Fatalf("Cols = %d at 200px, want 1", lg.Focus.Cols)
	}
}

func TestListingGridFocusedCell(t *testing.T) {
	lg := NewListingGrid()
	if lg.FocusedCell() != nil {
		t.Fatal("empty grid should have no focused cell")
	}

	lg.SetCells([]ListingCell{{ID: "a"}, {ID: "b"}})
	lg.SetWidth(1280)
	lg.Active = true
	lg.Update(DirRight)
	if cell := lg.FocusedCell(); cell == nil || cell.ID != "b" {
		t.Fatalf("FocusedCell = %+v, want ID b", lg.FocusedCell())
	}
}
