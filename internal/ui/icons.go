package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// clipRect builds an integer clip rectangle from float geometry.
func clipRect(x, y, w, h float64) image.Rectangle {
	return image.Rect(int(x), int(y), int(x+w), int(y+h))
}

// drawToggleButton draws a small outlined pill button with a centered label.
func drawToggleButton(dst *ebiten.Image, r ButtonRect, label string, rtl bool) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		ColorSurface, false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		1, ColorTextMuted, false)
	DrawTextCenteredDir(dst, label, r.X+r.W/2, r.Y+r.H/2, FontSizeBody, ColorTextSecondary, rtl)
}

// drawChevron draws a single angle bracket centered at (cx, cy).
func drawChevron(dst *ebiten.Image, cx, cy, r float32, pointsLeft bool, clr color.Color) {
	dir := float32(1)
	if pointsLeft {
		dir = -1
	}
	tipX := cx + dir*r/2
	backX := cx - dir*r/2
	vector.StrokeLine(dst, backX, cy-r, tipX, cy, 2, clr, true)
	vector.StrokeLine(dst, backX, cy+r, tipX, cy, 2, clr, true)
}

// drawCategoryPlaceholder draws the fallback glyph for categories without an
// icon: a price-tag outline with a hole.
func drawCategoryPlaceholder(dst *ebiten.Image, x, y, size float64, clr color.Color) {
	fx := float32(x)
	fy := float32(y)
	s := float32(size)

	// Tag body: square with a clipped corner suggested by two strokes
	vector.StrokeRect(dst, fx+s*0.15, fy+s*0.15, s*0.55, s*0.55, 2, clr, true)
	vector.StrokeLine(dst, fx+s*0.70, fy+s*0.15, fx+s*0.92, fy+s*0.52, 2, clr, true)
	vector.StrokeLine(dst, fx+s*0.92, fy+s*0.52, fx+s*0.52, fy+s*0.92, 2, clr, true)
	vector.StrokeLine(dst, fx+s*0.52, fy+s*0.92, fx+s*0.15, fy+s*0.70, 2, clr, true)
	// Hole
	vector.DrawFilledCircle(dst, fx+s*0.32, fy+s*0.32, s*0.06, clr, true)
}

// drawPhotoPlaceholder draws the fallback for listings without a photo:
// a frame with a mountain-and-sun sketch.
func drawPhotoPlaceholder(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	fx := float32(x)
	fy := float32(y)
	fw := float32(w)
	fh := float32(h)

	vector.StrokeRect(dst, fx, fy, fw, fh, 1.5, clr, true)
	vector.DrawFilledCircle(dst, fx+fw*0.7, fy+fh*0.3, fh*0.1, clr, true)
	vector.StrokeLine(dst, fx+fw*0.1, fy+fh*0.85, fx+fw*0.4, fy+fh*0.45, 1.5, clr, true)
	vector.StrokeLine(dst, fx+fw*0.4, fy+fh*0.45, fx+fw*0.65, fy+fh*0.85, 1.5, clr, true)
	vector.StrokeLine(dst, fx+fw*0.55, fy+fh*0.7, fx+fw*0.72, fy+fh*0.5, 1.5, clr, true)
	vector.StrokeLine(dst, fx+fw*0.72, fy+fh*0.5, fx+fw*0.9, fy+fh*0.85, 1.5, clr, true)
}
