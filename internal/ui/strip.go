package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// scrollEpsilon guards the boundary flags against sub-pixel jitter from the
// animated offset.
const scrollEpsilon = 1.0

// StripItem is one category card in the strip. Label is already resolved for
// the active locale; Icon stays nil until the cache delivers it.
type StripItem struct {
	ID    string
	Label string
	Slug  string
	Icon  *ebiten.Image
}

// CategoryStrip is a horizontally scrollable strip of selectable category
// cards. When every card fits the available width the strip centers them and
// disables scrolling; otherwise it clips, shows directional buttons and edge
// fades, and scrolls by card-slot increments.
//
// All left/right decisions flow through the RTL flag: the scroll offset is
// kept in reading order (0 = start of the list) and mapped to physical
// screen coordinates in exactly one place, so buttons, fades, keyboard and
// autoscroll can never disagree about direction.
type CategoryStrip struct {
	Items    []StripItem
	OnSelect func(item StripItem)
	RTL      bool
	ShowHint bool
	HintText string
	// Active routes keyboard input to the strip.
	Active bool

	containerW float64

	// Derived layout, recomputed on resize and item-count change.
	needsScroll  bool
	padding      float64
	totalContent float64

	// Reading-order scroll state.
	offset       float64
	targetOffset float64
	canBackward  bool
	canForward   bool

	selectedID string
	focused    int

	itemRects []ButtonRect
	backRect  ButtonRect
	fwdRect   ButtonRect

	fadeImg *ebiten.Image
}

func NewCategoryStrip() *CategoryStrip {
	return &CategoryStrip{}
}

// SetItems replaces the category list. The scroll position resets to the
// start of the list since the old offset is meaningless against new content.
func (cs *CategoryStrip) SetItems(items []StripItem) {
	cs.Items = items
	cs.itemRects = make([]ButtonRect, len(items))
	cs.offset = 0
	cs.targetOffset = 0
	if cs.focused >= len(items) {
		cs.focused = 0
	}
	cs.recalcLayout()
}

// SetSize feeds the strip the current container width. A zero or negative
// width means the container is not measurable yet; the cycle is skipped and
// retried on the next resize.
func (cs *CategoryStrip) SetSize(w float64) {
	if w <= 0 {
		return
	}
	if w == cs.containerW {
		return
	}
	cs.containerW = w
	cs.recalcLayout()
}

// SetSelected updates the externally owned selection. When the id matches a
// rendered card, the card is smoothly scrolled to the container's center;
// unknown ids leave the viewport alone.
func (cs *CategoryStrip) SetSelected(id string) {
	if id == cs.selectedID {
		return
	}
	cs.selectedID = id
	cs.scrollSelectedToCenter()
}

// SelectedID returns the currently selected category id ("" for none).
func (cs *CategoryStrip) SelectedID() string {
	return cs.selectedID
}

// SetDirection switches the reading direction. The reading-order offset is
// unaffected; only the physical mapping flips.
func (cs *CategoryStrip) SetDirection(rtl bool) {
	cs.RTL = rtl
}

func (cs *CategoryStrip) recalcLayout() {
	cs.totalContent = 0
	if n := len(cs.Items); n > 0 {
		cs.totalContent = float64(n)*CategoryCardSlot - CategoryCardGap
	}
	if cs.containerW <= 0 {
		return
	}

	available := cs.containerW - 2*StripBasePadding
	if cs.totalContent > available {
		cs.needsScroll = true
		cs.padding = StripEdgePadding
	} else {
		cs.needsScroll = false
		// Base padding plus half the leftover space centers the cards
		// without ever dipping below the base.
		cs.padding = StripBasePadding + (available-cs.totalContent)/2
		if cs.padding < StripBasePadding {
			cs.padding = StripBasePadding
		}
	}

	// Resize can shrink the scrollable range; keep the target in bounds.
	if cs.targetOffset > cs.maxOffset() {
		cs.targetOffset = cs.maxOffset()
	}
	if cs.offset > cs.maxOffset() {
		cs.offset = cs.maxOffset()
	}
	cs.updateScrollFlags()
}

// scrollSpan is the full reading-axis extent of the scrollable content:
// leading edge padding, the cards, and the trailing end spacer.
func (cs *CategoryStrip) scrollSpan() float64 {
	return cs.padding + cs.totalContent + StripEndSpacer
}

func (cs *CategoryStrip) maxOffset() float64 {
	if !cs.needsScroll {
		return 0
	}
	m := cs.scrollSpan() - cs.containerW
	if m < 0 {
		m = 0
	}
	return m
}

// updateScrollFlags derives the boundary flags from the current offset.
// The flags are reading-order relative: "backward" is toward the start of
// the list regardless of which physical side that is.
func (cs *CategoryStrip) updateScrollFlags() {
	if !cs.needsScroll {
		cs.canBackward = false
		cs.canForward = false
		return
	}
	cs.canBackward = cs.offset > scrollEpsilon
	cs.canForward = cs.offset+cs.containerW < cs.scrollSpan()-scrollEpsilon
}

// NeedsScroll reports whether the strip is in scrollable mode.
func (cs *CategoryStrip) NeedsScroll() bool { return cs.needsScroll }

// Padding returns the current leading/trailing padding in pixels.
func (cs *CategoryStrip) Padding() float64 { return cs.padding }

// CanScrollBackward reports whether the viewport can move toward the start
// of the list.
func (cs *CategoryStrip) CanScrollBackward() bool { return cs.canBackward }

// CanScrollForward reports whether the viewport can move toward the end of
// the list.
func (cs *CategoryStrip) CanScrollForward() bool { return cs.canForward }

// Offset returns the committed reading-order scroll offset.
func (cs *CategoryStrip) Offset() float64 { return cs.offset }

// TargetOffset returns the offset the smooth scroll is heading toward.
func (cs *CategoryStrip) TargetOffset() float64 { return cs.targetOffset }

// scrollStep caps the jump at 80% of the viewport so at least one card of
// context stays visible across steps.
func (cs *CategoryStrip) scrollStep() float64 {
	step := float64(2 * CategoryCardSlot)
	if limit := 0.8 * cs.containerW; step > limit {
		step = limit
	}
	return step
}

// Advance scrolls toward the end of the list (reading order).
func (cs *CategoryStrip) Advance() {
	if !cs.needsScroll {
		return
	}
	cs.targetOffset = clamp(cs.targetOffset+cs.scrollStep(), 0, cs.maxOffset())
}

// Retreat scrolls toward the start of the list (reading order).
func (cs *CategoryStrip) Retreat() {
	if !cs.needsScroll {
		return
	}
	cs.targetOffset = clamp(cs.targetOffset-cs.scrollStep(), 0, cs.maxOffset())
}

// readingMotion maps a physical arrow key to reading-order motion: +1 for
// advance, -1 for retreat, 0 for keys the strip does not consume. This is
// the single place physical keys meet reading direction.
func readingMotion(dir Direction, rtl bool) int {
	switch dir {
	case DirLeft:
		if rtl {
			return +1
		}
		return -1
	case DirRight:
		if rtl {
			return -1
		}
		return +1
	}
	return 0
}

// HandleDirection consumes a horizontal navigation key, moving the viewport
// by one scroll step in the direction's reading-order sense. Returns true
// when the key was consumed.
func (cs *CategoryStrip) HandleDirection(dir Direction) bool {
	motion := readingMotion(dir, cs.RTL)
	if motion == 0 || !cs.needsScroll {
		return motion != 0 && len(cs.Items) > 0
	}
	if motion > 0 {
		cs.Advance()
	} else {
		cs.Retreat()
	}
	return true
}

// ActivateFocused fires the selection callback for the keyboard-focused
// card. Activation never moves the viewport directly; the autoscroll runs
// when the owner pushes the new selection back in via SetSelected.
func (cs *CategoryStrip) ActivateFocused() {
	if len(cs.Items) == 0 || cs.focused >= len(cs.Items) {
		return
	}
	if cs.OnSelect != nil {
		cs.OnSelect(cs.Items[cs.focused])
	}
}

// scrollSelectedToCenter aligns the selected card's center with the
// container's center. No-op when the id matches nothing or the strip has no
// measured size yet.
func (cs *CategoryStrip) scrollSelectedToCenter() {
	if cs.containerW <= 0 {
		return
	}
	idx := -1
	for i := range cs.Items {
		if cs.Items[i].ID == cs.selectedID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	itemCenter := cs.padding + float64(idx)*CategoryCardSlot + CategoryCardWidth/2
	cs.targetOffset = clamp(itemCenter-cs.containerW/2, 0, cs.maxOffset())
}

// revealCard nudges the viewport just enough to expose the card, used for
// keyboard focus traversal (distinct from selection autoscroll, which
// centers).
func (cs *CategoryStrip) revealCard(i int) {
	if !cs.needsScroll {
		return
	}
	start := cs.padding + float64(i)*CategoryCardSlot
	end := start + CategoryCardWidth
	if start-cs.targetOffset < StripEdgePadding {
		cs.targetOffset = clamp(start-StripEdgePadding, 0, cs.maxOffset())
	} else if end-cs.targetOffset > cs.containerW-StripEdgePadding {
		cs.targetOffset = clamp(end-cs.containerW+StripEdgePadding, 0, cs.maxOffset())
	}
}

// Animate advances the smooth scroll by one frame and recommits the
// boundary flags, so the flags never lag the offset by more than a frame.
func (cs *CategoryStrip) Animate() {
	cs.offset = Lerp(cs.offset, cs.targetOffset, ScrollAnimSpeed)
	if diff := cs.targetOffset - cs.offset; diff > -0.5 && diff < 0.5 {
		cs.offset = cs.targetOffset
	}
	cs.updateScrollFlags()
}

// Update processes mouse clicks and keyboard focus traversal. Directional
// keys are routed in by the owning screen via HandleDirection.
func (cs *CategoryStrip) Update() {
	if len(cs.Items) == 0 {
		return
	}
	cs.updateScrollFlags()

	if mx, my, clicked := MouseJustClicked(); clicked {
		cs.handleClick(mx, my)
	}

	if cs.Active && inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			cs.focused = (cs.focused - 1 + len(cs.Items)) % len(cs.Items)
		} else {
			cs.focused = (cs.focused + 1) % len(cs.Items)
		}
		cs.revealCard(cs.focused)
	}
}

func (cs *CategoryStrip) handleClick(mx, my int) {
	if cs.needsScroll && cs.showButtons() {
		if cs.backRect.Contains(mx, my) && cs.canBackward {
			cs.Retreat()
			return
		}
		if cs.fwdRect.Contains(mx, my) && cs.canForward {
			cs.Advance()
			return
		}
	}
	for i, r := range cs.itemRects {
		if r.Contains(mx, my) {
			cs.focused = i
			if cs.OnSelect != nil {
				cs.OnSelect(cs.Items[i])
			}
			return
		}
	}
}

func (cs *CategoryStrip) showButtons() bool {
	return cs.needsScroll && cs.containerW >= StripNarrowWidth
}

func (cs *CategoryStrip) showHint() bool {
	return cs.ShowHint && cs.needsScroll && cs.containerW < StripNarrowWidth
}

// physicalX maps a reading-axis position (already offset-adjusted) to a
// physical x for an element of width w inside the strip starting at baseX.
func (cs *CategoryStrip) physicalX(baseX, readingX, w float64) float64 {
	if cs.RTL {
		return baseX + cs.containerW - readingX - w
	}
	return baseX + readingX
}

// Height returns the vertical space the strip occupies at its current
// state, including the hint row when visible.
func (cs *CategoryStrip) Height() float64 {
	if len(cs.Items) == 0 {
		return 0
	}
	h := float64(CategoryCardHeight)
	if cs.showHint() {
		h += StripHintHeight
	}
	return h
}

// Draw renders the strip at (x, y) and returns the height consumed.
// An empty category list renders nothing.
func (cs *CategoryStrip) Draw(dst *ebiten.Image, x, y float64) float64 {
	if len(cs.Items) == 0 {
		return 0
	}

	cs.Animate()

	clip := dst.SubImage(image.Rect(
		int(x), int(y), int(x+cs.containerW), int(y+CategoryCardHeight),
	)).(*ebiten.Image)

	for i := range cs.Items {
		readingX := cs.padding + float64(i)*CategoryCardSlot - cs.offset
		ix := cs.physicalX(x, readingX, CategoryCardWidth)

		// Skip fully clipped cards
		if ix+CategoryCardWidth < x || ix > x+cs.containerW {
			cs.itemRects[i] = ButtonRect{}
			continue
		}
		cs.itemRects[i] = ButtonRect{X: ix, Y: y, W: CategoryCardWidth, H: CategoryCardHeight}
		cs.drawCard(clip, i, ix, y)
	}

	if cs.needsScroll {
		cs.drawFades(dst, x, y)
	}
	if cs.showButtons() {
		cs.drawButtons(dst, x, y)
	} else {
		cs.backRect = ButtonRect{}
		cs.fwdRect = ButtonRect{}
	}
	if cs.showHint() {
		cs.drawHint(dst, x, y+CategoryCardHeight)
	}

	return cs.Height()
}

func (cs *CategoryStrip) drawCard(dst *ebiten.Image, i int, ix, iy float64) {
	item := &cs.Items[i]
	selected := item.ID != "" && item.ID == cs.selectedID
	focusedCard := cs.Active && i == cs.focused
	drawCategoryCard(dst, item, ix, iy, selected, focusedCard, cs.RTL)
}

// drawCategoryCard renders one category card; shared by the strip and the
// wrapping grid variant.
func drawCategoryCard(dst *ebiten.Image, item *StripItem, ix, iy float64, selected, focusedCard, rtl bool) {
	fill := ColorSurface
	if selected {
		fill = ColorSurfaceHover
	}
	vector.DrawFilledRect(dst, float32(ix), float32(iy),
		CategoryCardWidth, CategoryCardHeight, fill, false)
	if selected {
		vector.StrokeRect(dst, float32(ix), float32(iy),
			CategoryCardWidth, CategoryCardHeight, 2, ColorPrimary, false)
	} else if focusedCard {
		vector.StrokeRect(dst, float32(ix), float32(iy),
			CategoryCardWidth, CategoryCardHeight, 2, ColorFocusBorder, false)
	}

	// Icon area: 56px square centered in the upper portion
	iconSize := 56.0
	iconX := ix + (CategoryCardWidth-iconSize)/2
	iconY := iy + 14
	if item.Icon != nil {
		op := &ebiten.DrawImageOptions{}
		bounds := item.Icon.Bounds()
		op.GeoM.Scale(iconSize/float64(bounds.Dx()), iconSize/float64(bounds.Dy()))
		op.GeoM.Translate(iconX, iconY)
		dst.DrawImage(item.Icon, op)
	} else {
		drawCategoryPlaceholder(dst, iconX, iconY, iconSize, ColorTextMuted)
	}

	labelColor := ColorTextSecondary
	if selected || focusedCard {
		labelColor = ColorText
	}
	label := truncateText(item.Label, CategoryCardWidth-12, FontSizeSmall)
	DrawTextCenteredDir(dst, label, ix+CategoryCardWidth/2, iy+CategoryCardHeight-18,
		FontSizeSmall, labelColor, rtl)
}

// drawFades draws an edge fade on each side where further scrolling is
// possible, mirrored under RTL.
func (cs *CategoryStrip) drawFades(dst *ebiten.Image, x, y float64) {
	fade := cs.fadeImage()

	drawSide := func(physicalLeft bool) {
		op := &ebiten.DrawImageOptions{}
		sy := float64(CategoryCardHeight)
		if physicalLeft {
			op.GeoM.Scale(1, sy)
			op.GeoM.Translate(x, y)
		} else {
			op.GeoM.Scale(-1, sy)
			op.GeoM.Translate(x+cs.containerW, y)
		}
		dst.DrawImage(fade, op)
	}

	left, right := cs.fadeSides()
	if left {
		drawSide(true)
	}
	if right {
		drawSide(false)
	}
}

// fadeSides reports which physical edges need a fade. Backward is physically
// left under LTR and right under RTL; forward is the opposite edge.
func (cs *CategoryStrip) fadeSides() (left, right bool) {
	if cs.canBackward {
		if cs.RTL {
			right = true
		} else {
			left = true
		}
	}
	if cs.canForward {
		if cs.RTL {
			left = true
		} else {
			right = true
		}
	}
	return left, right
}

// buttonRects places the backward and forward buttons on the physical edges
// of the strip. The side assignment flips with reading direction.
func (cs *CategoryStrip) buttonRects(x, y float64) (back, fwd ButtonRect) {
	size := float64(StripButtonSize)
	cy := y + CategoryCardHeight/2

	leftRect := ButtonRect{X: x + 8, Y: cy - size/2, W: size, H: size}
	rightRect := ButtonRect{X: x + cs.containerW - 8 - size, Y: cy - size/2, W: size, H: size}

	if cs.RTL {
		return rightRect, leftRect
	}
	return leftRect, rightRect
}

func (cs *CategoryStrip) drawButtons(dst *ebiten.Image, x, y float64) {
	cs.backRect, cs.fwdRect = cs.buttonRects(x, y)

	leftRect, leftEnabled := cs.backRect, cs.canBackward
	rightRect, rightEnabled := cs.fwdRect, cs.canForward
	if cs.RTL {
		leftRect, rightRect = rightRect, leftRect
		leftEnabled, rightEnabled = rightEnabled, leftEnabled
	}

	drawStripButton(dst, leftRect, true, leftEnabled)
	drawStripButton(dst, rightRect, false, rightEnabled)
}

func drawStripButton(dst *ebiten.Image, r ButtonRect, pointsLeft, enabled bool) {
	clr := ColorTextMuted
	fill := ColorSurface
	if enabled {
		clr = ColorText
		fill = ColorSurfaceHover
	}
	cx := float32(r.X + r.W/2)
	cy := float32(r.Y + r.H/2)
	vector.DrawFilledCircle(dst, cx, cy, float32(r.W/2), fill, false)
	drawChevron(dst, cx, cy, float32(r.W/4), pointsLeft, clr)
}

func (cs *CategoryStrip) drawHint(dst *ebiten.Image, x, y float64) {
	cx := x + cs.containerW/2
	cy := y + StripHintHeight/2
	tw, _ := MeasureTextDir(cs.HintText, FontSizeSmall, cs.RTL)
	DrawTextCenteredDir(dst, cs.HintText, cx, cy, FontSizeSmall, ColorTextMuted, cs.RTL)
	drawChevron(dst, float32(cx-tw/2-14), float32(cy), 4, true, ColorTextMuted)
	drawChevron(dst, float32(cx+tw/2+14), float32(cy), 4, false, ColorTextMuted)
}

// fadeImage lazily builds a 1px-tall horizontal alpha ramp, opaque at x=0,
// stretched and mirrored at draw time.
func (cs *CategoryStrip) fadeImage() *ebiten.Image {
	if cs.fadeImg != nil {
		return cs.fadeImg
	}
	w := StripFadeWidth
	rgba := image.NewRGBA(image.Rect(0, 0, w, 1))
	bg := ColorBackground
	for i := 0; i < w; i++ {
		a := uint32(255 - i*255/(w-1))
		rgba.SetRGBA(i, 0, color.RGBA{
			R: uint8(uint32(bg.R) * a / 255),
			G: uint8(uint32(bg.G) * a / 255),
			B: uint8(uint32(bg.B) * a / 255),
			A: uint8(a),
		})
	}
	cs.fadeImg = ebiten.NewImageFromImage(rgba)
	return cs.fadeImg
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
