package ui

import (
	"bytes"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/text/language"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[faceKey]*text.GoTextFace
)

type faceKey struct {
	size float64
	rtl  bool
}

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[faceKey]*text.GoTextFace)
	return nil
}

// GetFace returns a cached face for the given size. RTL faces shape Arabic
// script and lay glyphs out right-to-left.
func GetFace(size float64, rtl bool) *text.GoTextFace {
	key := faceKey{size: size, rtl: rtl}
	if face, ok := fontFaces[key]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	if rtl {
		face.Direction = text.DirectionRightToLeft
		face.Language = language.Arabic
	}
	fontFaces[key] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	DrawTextDir(dst, txt, x, y, size, clr, false)
}

// DrawTextDir draws text anchored at its left edge; rtl selects Arabic
// shaping for the glyph run, not the anchor side (callers position RTL text
// themselves).
func DrawTextDir(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color, rtl bool) {
	face := GetFace(size, rtl)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	DrawTextCenteredDir(dst, txt, cx, cy, size, clr, false)
}

func DrawTextCenteredDir(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color, rtl bool) {
	w, h := MeasureTextDir(txt, size, rtl)
	DrawTextDir(dst, txt, cx-w/2, cy-h/2, size, clr, rtl)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return MeasureTextDir(txt, size, false)
}

func MeasureTextDir(txt string, size float64, rtl bool) (float64, float64) {
	face := GetFace(size, rtl)
	return text.Measure(txt, face, 0)
}

func DrawTextWrapped(dst *ebiten.Image, txt string, x, y, maxWidth float64, size float64, clr color.Color) float64 {
	face := GetFace(size, false)
	lineHeight := face.Size * 1.4
	words := strings.Fields(txt)
	if len(words) == 0 {
		return 0
	}

	line := words[0]
	cy := y
	for _, word := range words[1:] {
		test := line + " " + word
		w, _ := text.Measure(test, face, 0)
		if w > maxWidth {
			DrawText(dst, line, x, cy, size, clr)
			cy += lineHeight
			line = word
		} else {
			line = test
		}
	}
	DrawText(dst, line, x, cy, size, clr)
	cy += lineHeight
	return cy - y
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	for i := len(s) - 1; i > 0; i-- {
		candidate := s[:i] + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
