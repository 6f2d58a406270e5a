package ui

import (
	"fmt"
	"math"
	"testing"
)

func makeItems(n int) []StripItem {
	items := make([]StripItem, n)
	for i := range items {
		items[i] = StripItem{
			ID:    fmt.Sprintf("c%d", i),
			Label: fmt.Sprintf("Category %d", i),
			Slug:  fmt.Sprintf("cat-%d", i),
		}
	}
	return items
}

func newStrip(n int, containerW float64) *CategoryStrip {
	cs := NewCategoryStrip()
	cs.SetItems(makeItems(n))
	cs.SetSize(containerW)
	return cs
}

// settle runs the smooth-scroll animation until it converges.
func settle(cs *CategoryStrip) {
	for i := 0; i < 300; i++ {
		cs.Animate()
	}
}

func TestScrollableNarrowContainer(t *testing.T) {
	// 10 cards at 152px/slot in a 400px container: 1504px of content
	// against 320px available.
	cs := newStrip(10, 400)

	if !cs.NeedsScroll() {
		t.Fatal("expected scrollable mode")
	}
	if cs.Padding() != StripEdgePadding {
		t.Errorf("padding = %v, want fixed edge padding %v", cs.Padding(), StripEdgePadding)
	}
	if cs.CanScrollBackward() {
		t.Error("backward should be disabled at offset 0")
	}
	if !cs.CanScrollForward() {
		t.Error("forward should be enabled at offset 0")
	}
}

func TestCenteredWideContainer(t *testing.T) {
	// 3 cards (440px) in a 900px container: centered with computed padding
	// 40 + (820-440)/2 = 230.
	cs := newStrip(3, 900)

	if cs.NeedsScroll() {
		t.Fatal("expected centered mode")
	}
	if cs.Padding() != 230 {
		t.Errorf("padding = %v, want 230", cs.Padding())
	}
	if cs.CanScrollBackward() || cs.CanScrollForward() {
		t.Error("no scroll flags should be set in centered mode")
	}
}

func TestLayoutModeBoundary(t *testing.T) {
	// 3 cards = 440px of content. Available width equals content width at
	// container 440 + 2*40: exact equality stays centered.
	cs := newStrip(3, 440+2*StripBasePadding)
	if cs.NeedsScroll() {
		t.Error("exact fit must not enable scrolling")
	}
	if cs.Padding() != StripBasePadding {
		t.Errorf("padding at exact fit = %v, want base %v", cs.Padding(), StripBasePadding)
	}

	// One pixel less flips to scrollable.
	cs.SetSize(440 + 2*StripBasePadding - 1)
	if !cs.NeedsScroll() {
		t.Error("one pixel under exact fit must enable scrolling")
	}
}

func TestCenteredPaddingMonotonic(t *testing.T) {
	prev := 0.0
	for w := 560.0; w <= 1600; w += 80 {
		cs := newStrip(3, w)
		if cs.NeedsScroll() {
			t.Fatalf("width %v should be centered", w)
		}
		p := cs.Padding()
		if p < StripBasePadding {
			t.Errorf("width %v: padding %v below base", w, p)
		}
		if p < prev {
			t.Errorf("width %v: padding %v not monotonic (prev %v)", w, p, prev)
		}
		prev = p
	}
}

func TestEmptyListRendersNothing(t *testing.T) {
	cs := NewCategoryStrip()
	cs.SetItems(nil)
	cs.SetSize(800)

	if cs.Height() != 0 {
		t.Errorf("empty strip height = %v, want 0", cs.Height())
	}
	if cs.NeedsScroll() || cs.CanScrollBackward() || cs.CanScrollForward() {
		t.Error("empty strip should have no layout or scroll state")
	}
}

func TestSetSizeUnmeasuredSkipped(t *testing.T) {
	cs := NewCategoryStrip()
	cs.SetItems(makeItems(10))
	cs.SetSize(0)
	if cs.NeedsScroll() {
		t.Error("unmeasured container must not decide a layout mode")
	}
	// Next real size triggers the deferred recompute.
	cs.SetSize(400)
	if !cs.NeedsScroll() {
		t.Error("layout not recomputed after first real size")
	}
}

func TestAdvanceMonotonicUntilEnd(t *testing.T) {
	cs := newStrip(10, 400)

	remaining := func() float64 {
		return cs.scrollSpan() - (cs.Offset() + 400)
	}

	prev := remaining()
	for i := 0; i < 20; i++ {
		cs.Advance()
		settle(cs)

		if cs.Offset() < 0 || cs.Offset() > cs.maxOffset()+scrollEpsilon {
			t.Fatalf("offset %v out of range [0, %v]", cs.Offset(), cs.maxOffset())
		}
		r := remaining()
		if r > prev+scrollEpsilon {
			t.Fatalf("remaining distance grew: %v -> %v", prev, r)
		}
		prev = r
		if !cs.CanScrollForward() {
			break
		}
	}
	if cs.CanScrollForward() {
		t.Error("forward flag still set after scrolling to the end")
	}
	if !cs.CanScrollBackward() {
		t.Error("backward flag should be set at the end")
	}
}

func TestBackwardFlagAfterForwardScroll(t *testing.T) {
	cs := newStrip(10, 400)
	cs.Advance()
	settle(cs)
	if !cs.CanScrollBackward() {
		t.Error("backward should enable after any forward scroll")
	}
}

func TestAdvanceNoopWhenCentered(t *testing.T) {
	cs := newStrip(3, 900)
	cs.Advance()
	settle(cs)
	if cs.Offset() != 0 || cs.TargetOffset() != 0 {
		t.Error("advance must not move a centered strip")
	}
}

func TestScrollStepCappedByViewport(t *testing.T) {
	cs := newStrip(10, 300)
	// Two slots (304) exceed 80% of the 300px viewport.
	if got, want := cs.scrollStep(), 240.0; got != want {
		t.Errorf("scrollStep = %v, want %v", got, want)
	}

	cs = newStrip(10, 1000)
	if got, want := cs.scrollStep(), float64(2*CategoryCardSlot); got != want {
		t.Errorf("scrollStep = %v, want %v", got, want)
	}
}

func TestReadingMotionMirrored(t *testing.T) {
	tests := []struct {
		dir  Direction
		rtl  bool
		want int
	}{
		{DirRight, false, +1},
		{DirLeft, false, -1},
		{DirRight, true, -1},
		{DirLeft, true, +1},
		{DirUp, false, 0},
		{DirDown, true, 0},
	}
	for _, tt := range tests {
		if got := readingMotion(tt.dir, tt.rtl); got != tt.want {
			t.Errorf("readingMotion(%v, rtl=%v) = %d, want %d", tt.dir, tt.rtl, got, tt.want)
		}
	}
}

func TestRTLKeysProduceMirroredMotion(t *testing.T) {
	ltr := newStrip(10, 400)
	rtl := newStrip(10, 400)
	rtl.SetDirection(true)

	// Arrow-left under RTL advances exactly like arrow-right under LTR.
	ltr.HandleDirection(DirRight)
	rtl.HandleDirection(DirLeft)
	if ltr.TargetOffset() != rtl.TargetOffset() {
		t.Errorf("mirrored advance differs: ltr=%v rtl=%v", ltr.TargetOffset(), rtl.TargetOffset())
	}

	ltr.HandleDirection(DirLeft)
	rtl.HandleDirection(DirRight)
	if ltr.TargetOffset() != rtl.TargetOffset() {
		t.Errorf("mirrored retreat differs: ltr=%v rtl=%v", ltr.TargetOffset(), rtl.TargetOffset())
	}
}

func TestAutoscrollCentersSelectedCard(t *testing.T) {
	cs := newStrip(10, 400)

	cs.SetSelected("c5")
	settle(cs)

	itemCenter := cs.Padding() + 5*CategoryCardSlot + CategoryCardWidth/2
	viewCenter := cs.Offset() + 400.0/2
	if diff := math.Abs(itemCenter - viewCenter); diff > 1 {
		t.Errorf("selected card off-center by %vpx", diff)
	}
}

func TestAutoscrollClampsAtEdges(t *testing.T) {
	cs := newStrip(10, 400)

	// First card is already at the start; centering it would need a
	// negative offset.
	cs.SetSelected("c0")
	settle(cs)
	if cs.Offset() != 0 {
		t.Errorf("offset = %v, want clamp at 0", cs.Offset())
	}

	cs.SetSelected("c9")
	settle(cs)
	if cs.Offset() > cs.maxOffset()+scrollEpsilon {
		t.Errorf("offset %v exceeds max %v", cs.Offset(), cs.maxOffset())
	}
}

func TestAutoscrollUnknownIDIsNoop(t *testing.T) {
	cs := newStrip(10, 400)
	cs.Advance()
	settle(cs)
	before := cs.TargetOffset()

	cs.SetSelected("does-not-exist")
	if cs.TargetOffset() != before {
		t.Error("unknown selection must not move the viewport")
	}
}

func TestAutoscrollFiresOncePerChange(t *testing.T) {
	cs := newStrip(10, 400)
	cs.SetSelected("c5")
	settle(cs)

	// User scrolls away; re-setting the same id must not recenter.
	cs.Advance()
	after := cs.TargetOffset()
	cs.SetSelected("c5")
	if cs.TargetOffset() != after {
		t.Error("repeated identical selection must not re-trigger autoscroll")
	}
}

func TestSetItemsResetsScroll(t *testing.T) {
	cs := newStrip(10, 400)
	cs.Advance()
	settle(cs)
	if cs.Offset() == 0 {
		t.Fatal("setup: expected nonzero offset")
	}

	cs.SetItems(makeItems(8))
	if cs.Offset() != 0 || cs.TargetOffset() != 0 {
		t.Error("replacing the category list must reset scroll to the start")
	}
}

func TestResizeClampsScrollRange(t *testing.T) {
	cs := newStrip(10, 400)
	for i := 0; i < 10; i++ {
		cs.Advance()
	}
	settle(cs)

	// Growing the window shrinks (or eliminates) the scrollable range.
	cs.SetSize(1400)
	if cs.TargetOffset() > cs.maxOffset() {
		t.Errorf("target %v beyond new max %v", cs.TargetOffset(), cs.maxOffset())
	}
	settle(cs)
	if cs.NeedsScroll() && cs.Offset() > cs.maxOffset()+scrollEpsilon {
		t.Errorf("offset %v beyond new max %v", cs.Offset(), cs.maxOffset())
	}
}

func TestActivateFocusedDoesNotScroll(t *testing.T) {
	cs := newStrip(10, 400)
	var selected string
	cs.OnSelect = func(item StripItem) { selected = item.ID }

	cs.ActivateFocused()
	if selected != "c0" {
		t.Errorf("selected = %q, want c0", selected)
	}
	if cs.TargetOffset() != 0 {
		t.Error("activation alone must not move the viewport")
	}
}

func TestButtonVisibility(t *testing.T) {
	tests := []struct {
		items int
		width float64
		want  bool
	}{
		{10, 400, false}, // scrollable but under the narrow threshold
		{10, 900, true},
		{10, StripNarrowWidth, true},
		{10, StripNarrowWidth - 1, false},
		{3, 900, false}, // centered: nothing to scroll to
	}
	for _, tt := range tests {
		cs := newStrip(tt.items, tt.width)
		if got := cs.showButtons(); got != tt.want {
			t.Errorf("showButtons(%d items, w=%v) = %v, want %v",
				tt.items, tt.width, got, tt.want)
		}
	}
}

func TestHintVisibility(t *testing.T) {
	tests := []struct {
		items    int
		width    float64
		showHint bool
		want     bool
	}{
		{10, 400, true, true},
		{10, 400, false, false}, // not opted in
		{10, 900, true, false},  // wide windows get buttons instead
		{3, 900, true, false},   // centered: no hint without scrolling
	}
	for _, tt := range tests {
		cs := newStrip(tt.items, tt.width)
		cs.ShowHint = tt.showHint
		if got := cs.showHint(); got != tt.want {
			t.Errorf("showHint(%d items, w=%v, opt=%v) = %v, want %v",
				tt.items, tt.width, tt.showHint, got, tt.want)
		}
	}
}

func TestHintRowAddsHeight(t *testing.T) {
	cs := newStrip(10, 400)
	cs.ShowHint = true
	if got, want := cs.Height(), float64(CategoryCardHeight+StripHintHeight); got != want {
		t.Errorf("height with hint = %v, want %v", got, want)
	}
	cs.ShowHint = false
	if got, want := cs.Height(), float64(CategoryCardHeight); got != want {
		t.Errorf("height without hint = %v, want %v", got, want)
	}
}

func TestFadeSidesFollowScrollState(t *testing.T) {
	cs := newStrip(10, 400)

	// At the start only forward scrolling remains: fade on the far edge.
	if left, right := cs.fadeSides(); left || !right {
		t.Errorf("at start: fades = (%v, %v), want (false, true)", left, right)
	}
	cs.SetDirection(true)
	if left, right := cs.fadeSides(); !left || right {
		t.Errorf("at start RTL: fades = (%v, %v), want (true, false)", left, right)
	}
	cs.SetDirection(false)

	// Mid-list both edges fade regardless of direction.
	cs.Advance()
	settle(cs)
	if left, right := cs.fadeSides(); !left || !right {
		t.Errorf("mid-list: fades = (%v, %v), want (true, true)", left, right)
	}
	cs.SetDirection(true)
	if left, right := cs.fadeSides(); !left || !right {
		t.Errorf("mid-list RTL: fades = (%v, %v), want (true, true)", left, right)
	}
	cs.SetDirection(false)

	// At the end only backward remains: fade swaps to the near edge.
	for i := 0; i < 20 && cs.CanScrollForward(); i++ {
		cs.Advance()
		settle(cs)
	}
	if left, right := cs.fadeSides(); !left || right {
		t.Errorf("at end: fades = (%v, %v), want (true, false)", left, right)
	}
	cs.SetDirection(true)
	if left, right := cs.fadeSides(); left || !right {
		t.Errorf("at end RTL: fades = (%v, %v), want (false, true)", left, right)
	}
}

func TestButtonSidesMirrorUnderRTL(t *testing.T) {
	cs := newStrip(10, 900)

	leftX := 8.0
	rightX := 900.0 - 8 - StripButtonSize

	back, fwd := cs.buttonRects(0, 0)
	if back.X != leftX || fwd.X != rightX {
		t.Errorf("ltr rects: back.X=%v fwd.X=%v, want %v and %v", back.X, fwd.X, leftX, rightX)
	}

	cs.SetDirection(true)
	back, fwd = cs.buttonRects(0, 0)
	if back.X != rightX || fwd.X != leftX {
		t.Errorf("rtl rects: back.X=%v fwd.X=%v, want %v and %v", back.X, fwd.X, rightX, leftX)
	}
}
