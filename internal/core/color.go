package core

import "image/color"

// Color is a palette entry used by every surface. Pixel surfaces resolve it
// to RGBA, terminal surfaces to an ANSI 256-color code.
type Color uint8

// Palette used by the game.
const (
	ColorBlack Color = iota
	ColorWhite
	ColorGrey
	ColorDarkRed
	ColorRed
	ColorDarkOrange
	ColorOrange
	ColorDarkGreen
	ColorGreen
	ColorGold
	ColorYellow
	ColorDimGrey
)

var paletteRGBA = [...]color.RGBA{
	ColorBlack:      {0x00, 0x00, 0x00, 0xff},
	ColorWhite:      {0xff, 0xff, 0xff, 0xff},
	ColorGrey:       {0x80, 0x80, 0x80, 0xff},
	ColorDarkRed:    {0x8b, 0x00, 0x00, 0xff},
	ColorRed:        {0xff, 0x00, 0x00, 0xff},
	ColorDarkOrange: {0xff, 0x8c, 0x00, 0xff},
	ColorOrange:     {0xff, 0xa5, 0x00, 0xff},
	ColorDarkGreen:  {0x00, 0x64, 0x00, 0xff},
	ColorGreen:      {0x00, 0x80, 0x00, 0xff},
	ColorGold:       {0xff, 0xd7, 0x00, 0xff},
	ColorYellow:     {0xff, 0xff, 0x00, 0xff},
	ColorDimGrey:    {0x30, 0x30, 0x30, 0xff},
}

var paletteANSI = [...]uint8{
	ColorBlack:      16,
	ColorWhite:      231,
	ColorGrey:       244,
	ColorDarkRed:    88,
	ColorRed:        196,
	ColorDarkOrange: 208,
	ColorOrange:     214,
	ColorDarkGreen:  22,
	ColorGreen:      28,
	ColorGold:       220,
	ColorYellow:     226,
	ColorDimGrey:    236,
}

// RGBA returns the color as an 8-bit RGBA value.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(paletteRGBA) {
		return paletteRGBA[ColorBlack]
	}
	return paletteRGBA[c]
}

// ANSI returns the ANSI 256-color code for terminal output.
func (c Color) ANSI() uint8 {
	if int(c) >= len(paletteANSI) {
		return paletteANSI[ColorBlack]
	}
	return paletteANSI[c]
}
