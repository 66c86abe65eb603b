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

package render

import (
	"fmt"

	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/video/scanline"
)

type encoderID int

const (
	encBorder encoderID = iota
	encText
	encLores
	encDGR
	encHires
	encDHGR
	encVidex
	encOverlay
	numEncoders
)

func (e encoderID) String() string {
	switch e {
	case encBorder:
		return "border"
	case encText:
		return "text"
	case encLores:
		return "lores"
	case encDGR:
		return "double lores"
	case encHires:
		return "hires"
	case encDHGR:
		return "double hires"
	case encVidex:
		return "videx"
	case encOverlay:
		return "overlay"
	}
	return "unknown"
}

// an encoder draws the active area of one line. line is the source line and
// dim is the brightness index of the tables
type encoder func(r *Renderer, v scanline.View, line int, dim int)

var encoders [numEncoders]encoder

func init() {
	encoders[encText] = (*Renderer).encodeText
	encoders[encLores] = (*Renderer).encodeLores
	encoders[encDGR] = (*Renderer).encodeDGR
	encoders[encHires] = (*Renderer).encodeHires
	encoders[encDHGR] = (*Renderer).encodeDHGR
	encoders[encVidex] = (*Renderer).encodeVidex
	encoders[encOverlay] = (*Renderer).encodeOverlay
}

// two lines with the same key produce the same output
type lineKey struct {
	enc encoderID
	src int
	dim int
}

type lineSpec struct {
	key lineKey

	// the line passed to the encoder
	line int
}

// the dispatch table is indexed by TEXT<<3 | MIXED<<2 | HIRES<<1 | DOUBLE
type dispatch struct {
	graphics encoderID
	mixed    bool
}

var dispatchTable = [16]dispatch{
	// graphics
	{encLores, false},
	{encDGR, false},
	{encHires, false},
	{encDHGR, false},

	// mixed graphics
	{encLores, true},
	{encDGR, true},
	{encHires, true},
	{encDHGR, true},

	// text. MIXED, HIRES and DOUBLE make no difference
	{encText, false},
	{encText, false},
	{encText, false},
	{encText, false},
	{encText, false},
	{encText, false},
	{encText, false},
	{encText, false},
}

func dispatchIndex(sw softswitch.Switches) int {
	var i int
	if sw.Has(softswitch.Text) {
		i |= 0x08
	}
	if sw.Has(softswitch.Mixed) {
		i |= 0x04
	}
	if sw.Has(softswitch.Hires) {
		i |= 0x02
	}
	if sw.Has(softswitch.DGR | softswitch.Col80) {
		i |= 0x01
	}
	return i
}

// the lines of a lo-res block are the same
func sourceKey(enc encoderID, line int) int {
	switch enc {
	case encLores, encDGR:
		return line / 4
	}
	return line
}

// number of lines at the bottom of the screen in mixed mode
const mixedTextLines = 32

// planFrame decides the encoder of every output line. Returns a description
// of the mode.
func (r *Renderer) planFrame() string {
	scanlines := r.caps.Has(softswitch.ScanlineEmu)

	for y := range r.plan {
		r.plan[y] = lineSpec{key: lineKey{enc: encBorder}}
	}

	if r.caps.Has(softswitch.DebugOverlay) {
		r.plan[0] = lineSpec{key: lineKey{enc: encOverlay, src: -1}}
	}

	if r.sw.Has(softswitch.Text) && r.sw.Has(softswitch.Videx80) && r.caps.Has(softswitch.VidexEnabled) {
		return r.planVidex(scanlines)
	}

	d := dispatchTable[dispatchIndex(r.sw)]

	for line := 0; line < scanline.AppleLines; line++ {
		enc := d.graphics
		if d.mixed && line >= scanline.AppleLines-mixedTextLines {
			enc = encText
		}

		for i := 0; i < scanline.LinesPerApple; i++ {
			y := scanline.BorderLines + line*scanline.LinesPerApple + i
			dim := 0
			if scanlines && i > 0 {
				dim = 1
			}
			r.plan[y] = lineSpec{
				key:  lineKey{enc: enc, src: sourceKey(enc, line), dim: dim},
				line: line,
			}
		}
	}

	if d.graphics == encText {
		if r.sw.Has(softswitch.Col80) {
			return "text 80"
		}
		return "text 40"
	}

	desc := d.graphics.String()
	if d.mixed {
		desc = fmt.Sprintf("mixed %s", desc)
	}
	if d.graphics == encDHGR && r.caps.Has(softswitch.Video7Enabled) {
		desc = fmt.Sprintf("%s (%s)", desc, r.sw.Video7())
	}
	return desc
}

// Videx output uses the number of lines configured in the CRTC
func (r *Renderer) planVidex(scanlines bool) string {
	vx := r.st.Videx
	height := vx.Rows() * vx.LinesPerRow()
	if height > scanline.Height/scanline.LinesPerApple {
		height = scanline.Height / scanline.LinesPerApple
	}
	top := (scanline.Height - height*scanline.LinesPerApple) / 2

	for line := 0; line < height; line++ {
		for i := 0; i < scanline.LinesPerApple; i++ {
			y := top + line*scanline.LinesPerApple + i
			dim := 0
			if scanlines && i > 0 {
				dim = 1
			}
			r.plan[y] = lineSpec{
				key:  lineKey{enc: encVidex, src: line, dim: dim},
				line: line,
			}
		}
	}

	return fmt.Sprintf("videx %dx%d", vx.Columns(), vx.Rows())
}
