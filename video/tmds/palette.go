// This file is part of a2dvi.
//
// a2dvi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// a2dvi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with a2dvi.  If not, see <https://www.gnu.org/licenses/>.

package tmds

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Scale the colour by n/d.
func (c RGB) Scale(n, d int) RGB {
	return RGB{
		R: uint8(int(c.R) * n / d),
		G: uint8(int(c.G) * n / d),
		B: uint8(int(c.B) * n / d),
	}
}

// Quantised returns the colour after each channel has been quantised to a
// balanced level. This is the colour that is actually transmitted.
func (c RGB) Quantised() RGB {
	return RGB{R: Quantise(c.R), G: Quantise(c.G), B: Quantise(c.B)}
}

// Palette is the sixteen colours of lo-res and double hi-res graphics.
type Palette [16]RGB

// The lo-res colour numbers.
const (
	Black = iota
	Magenta
	DarkBlue
	Purple
	DarkGreen
	Grey1
	MediumBlue
	LightBlue
	Brown
	Orange
	Grey2
	Pink
	LightGreen
	Yellow
	Aqua
	White
)

// Palettes in the order of the state.Palette type.
var Palettes = []Palette{
	paletteDefault,
	paletteOriginal,
	paletteImproved,
}

// close to the colours produced by an NTSC monitor
var paletteDefault = Palette{
	{0x00, 0x00, 0x00},
	{0x93, 0x0b, 0x7c},
	{0x1f, 0x35, 0xd3},
	{0xbb, 0x36, 0xff},
	{0x00, 0x76, 0x0c},
	{0x7e, 0x7e, 0x7e},
	{0x07, 0xa8, 0xe0},
	{0x9d, 0xac, 0xff},
	{0x62, 0x4c, 0x00},
	{0xf9, 0x56, 0x1d},
	{0x7e, 0x7e, 0x7e},
	{0xff, 0x81, 0xec},
	{0x43, 0xc8, 0x00},
	{0xdc, 0xcd, 0x16},
	{0x5d, 0xf7, 0x84},
	{0xff, 0xff, 0xff},
}

// the palette of the first release of the card
var paletteOriginal = Palette{
	{0x00, 0x00, 0x00},
	{0x72, 0x26, 0x40},
	{0x40, 0x33, 0x7f},
	{0xe4, 0x34, 0xfe},
	{0x0e, 0x59, 0x40},
	{0x80, 0x80, 0x80},
	{0x1b, 0x9a, 0xfe},
	{0xbf, 0xb3, 0xff},
	{0x40, 0x4c, 0x00},
	{0xe4, 0x65, 0x01},
	{0x80, 0x80, 0x80},
	{0xf1, 0xa6, 0xbf},
	{0x1b, 0xcb, 0x01},
	{0xbf, 0xcc, 0x80},
	{0x8d, 0xd9, 0xbf},
	{0xff, 0xff, 0xff},
}

// the IIgs palette
var paletteImproved = Palette{
	{0x00, 0x00, 0x00},
	{0xdd, 0x00, 0x33},
	{0x00, 0x00, 0x99},
	{0xdd, 0x22, 0xdd},
	{0x00, 0x77, 0x22},
	{0x55, 0x55, 0x55},
	{0x22, 0x22, 0xff},
	{0x66, 0xaa, 0xff},
	{0x88, 0x55, 0x00},
	{0xff, 0x66, 0x00},
	{0xaa, 0xaa, 0xaa},
	{0xff, 0x99, 0x88},
	{0x11, 0xdd, 0x00},
	{0xff, 0xff, 0x00},
	{0x44, 0xff, 0x99},
	{0xff, 0xff, 0xff},
}

// Foregrounds are the monochrome colours in the order of the state.ColorMode
// type. Colour mode uses white for text.
var Foregrounds = []RGB{
	{0xff, 0xff, 0xff},
	{0xff, 0xff, 0xff},
	{0x33, 0xff, 0x33},
	{0xff, 0xb0, 0x00},
}

// scanline emulation dims alternate lines to this fraction of full brightness
const (
	dimNumerator   = 5
	dimDenominator = 8
)
