package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbTitle      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbText       = tcell.NewRGBColor(230, 230, 230) // Near white
	RgbDimText    = tcell.NewRGBColor(110, 110, 130) // Muted gray-blue

	RgbCellBorder  = tcell.NewRGBColor(90, 90, 110)   // Empty cell brackets
	RgbCellActive  = tcell.NewRGBColor(140, 190, 255) // Brackets on the row being typed
	RgbCorrectBg   = tcell.NewRGBColor(0, 160, 0)     // Matched position
	RgbBounceBg    = tcell.NewRGBColor(50, 255, 50)   // Freshly matched, bouncing
	RgbIncorrectBg = tcell.NewRGBColor(70, 70, 80)    // Wrong position
	RgbCellText    = tcell.NewRGBColor(255, 255, 255) // Note letters

	RgbModeActiveBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModeInactiveBg = tcell.NewRGBColor(50, 50, 60)
	RgbStatusText     = tcell.NewRGBColor(0, 0, 0) // Dark text on light backgrounds

	RgbSubmitReadyBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbSubmitIdleBg  = tcell.NewRGBColor(60, 60, 70)

	RgbOverlayBg     = tcell.NewRGBColor(40, 40, 60)
	RgbOverlayBorder = tcell.NewRGBColor(255, 255, 0)
	RgbWinText       = tcell.NewRGBColor(50, 255, 50)
	RgbLossText      = tcell.NewRGBColor(255, 80, 80)
)

// ConfettiColors cycle across particles
var ConfettiColors = []tcell.Color{
	tcell.NewRGBColor(255, 80, 80),
	tcell.NewRGBColor(255, 255, 0),
	tcell.NewRGBColor(50, 255, 50),
	tcell.NewRGBColor(100, 150, 255),
	tcell.NewRGBColor(255, 192, 203),
}

// ConfettiGlyphs are the particle symbols
var ConfettiGlyphs = []rune{'♪', '♫', '✦', '♬', '*'}
