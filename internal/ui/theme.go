package ui

import "image/color"

// Colors — dark theme with a souq-gold accent
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x11, B: 0x0E, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1F, G: 0x1D, B: 0x18, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x2C, G: 0x29, B: 0x22, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xE8, G: 0xA3, B: 0x1D, A: 0xFF} // souq gold
	ColorPrimaryDark   = color.RGBA{R: 0xB0, G: 0x7A, B: 0x10, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0x2E, G: 0x9E, B: 0x8F, A: 0xFF} // teal accent
	ColorText          = color.RGBA{R: 0xE6, G: 0xE2, B: 0xD8, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x9A, G: 0x95, B: 0x88, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x66, G: 0x62, B: 0x58, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xE8, G: 0xA3, B: 0x1D, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants
const (
	// Category strip geometry. The card slot (card + gap) is the atomic
	// scroll-step unit.
	CategoryCardWidth  = 136
	CategoryCardHeight = 120
	CategoryCardGap    = 16
	CategoryCardSlot   = CategoryCardWidth + CategoryCardGap

	// StripBasePadding is the horizontal padding the strip never shrinks
	// below in centered mode.
	StripBasePadding = 40
	// StripEdgePadding is the fixed edge padding once the strip scrolls.
	StripEdgePadding = 16
	// StripEndSpacer keeps the last card off the clipped edge in
	// scrollable mode, matching the leading edge padding.
	StripEndSpacer = 16
	// StripNarrowWidth is the window width under which the directional
	// buttons are hidden and the scroll hint appears instead.
	StripNarrowWidth = 700
	StripButtonSize  = 36
	StripFadeWidth   = 48
	StripHintHeight  = 24

	ListingCardWidth  = 220
	ListingCardHeight = 150
	ListingCardGap    = 28
	ListingFocusPad   = 8
	ListingLabelH     = 40

	SectionPadding = 40
	SectionGap     = 30
	SectionTitleH  = 36

	TopBarHeight = 56

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	FocusAnimSpeed  = 0.15
	ScrollAnimSpeed = 0.12

	DefaultScreenWidth  = 1280
	DefaultScreenHeight = 720

	// ScrollWheelSpeed is pixels per mouse wheel scroll unit.
	ScrollWheelSpeed = 60

	// GridRowHeight is the height of one listing-grid row including focus
	// padding and labels.
	GridRowHeight = ListingCardHeight + ListingLabelH + ListingCardGap + ListingFocusPad*2
)
