package icon

import (
	"image"
	"image/color"
	"math"
)

// Theme colors from the app
var (
	souqGold   = color.RGBA{R: 0xE8, G: 0xA3, B: 0x1D, A: 0xFF}
	goldDark   = color.RGBA{R: 0xB0, G: 0x7A, B: 0x10, A: 0xFF}
	darkBG     = color.RGBA{R: 0x12, G: 0x11, B: 0x0E, A: 0xFF}
	tealAccent = color.RGBA{R: 0x2E, G: 0x9E, B: 0x8F, A: 0xFF}
	glowCol    = color.RGBA{R: 0xE8, G: 0xA3, B: 0x1D, A: 0x50}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	// Fill background
	fillRect(img, 0, 0, size, size, darkBG)

	// Market stall with a scalloped awning, price tag hanging below
	drawAwning(img, s)
	drawPriceTag(img, s)

	return img
}

func drawAwning(img *image.RGBA, s float64) {
	// Canopy bar across the upper third
	barY := s * 0.16
	barH := s * 0.12
	barX := s * 0.08
	barW := s * 0.84
	fillRoundedRect(img, barX, barY, barW, barH, s*0.03, souqGold)

	// Scalloped fringe: half-circles hanging from the bar, alternating shades
	scallops := 4
	scallopR := barW / float64(scallops) / 2
	for i := 0; i < scallops; i++ {
		cx := barX + scallopR + float64(i)*scallopR*2
		c := souqGold
		if i%2 == 1 {
			c = goldDark
		}
		fillDome(img, cx, barY+barH+scallopR*0.9, -scallopR, c)
	}

	// Support posts
	postW := s * 0.05
	postH := s * 0.30
	fillRoundedRect(img, barX, barY+barH, postW, postH, s*0.01, goldDark)
	fillRoundedRect(img, barX+barW-postW, barY+barH, postW, postH, s*0.01, goldDark)
}

func drawPriceTag(img *image.RGBA, s float64) {
	// Glow behind the tag
	cx := s * 0.50
	cy := s * 0.62
	fillCircle(img, cx, cy, s*0.24, glowCol)

	// Rotated square tag body with a clipped corner
	tagX := s * 0.34
	tagY := s * 0.48
	tagW := s * 0.32
	tagH := s * 0.28
	fillRoundedRect(img, tagX, tagY, tagW, tagH, s*0.04, tealAccent)

	// String loop hole
	fillCircle(img, tagX+tagW*0.2, tagY+tagH*0.25, s*0.035, darkBG)

	// String from awning bar to the hole
	drawString(img, cx-s*0.1, s*0.30, tagX+tagW*0.2, tagY+tagH*0.25, souqGold)
}

// drawString draws a slightly sagging line between two points.
func drawString(img *image.RGBA, x0, y0, x1, y1 float64, c color.Color) {
	steps := int(math.Hypot(x1-x0, y1-y0)) * 2
	if steps < 2 {
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t + math.Sin(t*math.Pi)*2
		fillCircle(img, x, y, 0.7, c)
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	x0 := int(cx - r)
	y0 := int(cy - r)
	x1 := int(cx + r + 1)
	y1 := int(cy + r + 1)
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillDome draws the top or bottom half of a circle. A negative radius
// selects the bottom half.
func fillDome(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bottom := r < 0
	if bottom {
		r = -r
	}
	bounds := img.Bounds()
	x0 := int(cx - r)
	x1 := int(cx + r + 1)
	y0 := int(cy - r)
	y1 := int(cy)
	if bottom {
		y0 = int(cy)
		y1 = int(cy + r)
	}
	r2 := r * r

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
