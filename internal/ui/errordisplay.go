package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/souqtv/souqcouch/internal/locale"
)

// ErrorDisplay draws a load error with a button that copies the full text to
// the clipboard, so a kiosk error can be reported verbatim. Button labels
// come from the active locale.
// Store one per screen that shows errors, call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	copyRect    ButtonRect
	copiedTimer int // frames remaining to show the copied confirmation
}

// Draw renders the error text with the copy button after it. Returns the
// total height used. fontSize is typically FontSizeSmall or FontSizeBody.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, errText string, loc locale.Locale, x, y, fontSize float64) float64 {
	if errText == "" {
		ed.copyRect = ButtonRect{}
		return 0
	}

	DrawTextDir(dst, errText, x, y, fontSize, ColorError, loc.RTL)

	label := loc.T("copy")
	tw, _ := MeasureTextDir(errText, fontSize, loc.RTL)
	lw, _ := MeasureTextDir(label, FontSizeSmall, loc.RTL)

	btnX := x + tw + 12
	btnY := y - 2
	btnW := lw + 20
	btnH := fontSize + 6

	ed.copyRect = ButtonRect{X: btnX, Y: btnY, W: btnW, H: btnH}

	if ed.copiedTimer > 0 {
		ed.copiedTimer--
		DrawTextDir(dst, loc.T("copied"), btnX, y, FontSizeSmall, ColorSuccess, loc.RTL)
	} else {
		vector.DrawFilledRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), ColorSurface, false)
		vector.StrokeRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), 1, ColorTextMuted, false)
		DrawTextCenteredDir(dst, label, btnX+btnW/2, btnY+btnH/2, FontSizeSmall, ColorTextSecondary, loc.RTL)
	}

	return fontSize + 8
}

// HandleClick checks if the copy button was clicked. Call from Update with mouse coords.
// Returns true if the click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int, errText string) bool {
	if errText == "" {
		return false
	}
	if PointInRect(mx, my, ed.copyRect.X, ed.copyRect.Y, ed.copyRect.W, ed.copyRect.H) {
		writeClipboard(errText)
		ed.copiedTimer = 120 // ~2 seconds at 60fps
		return true
	}
	return false
}
