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
	"github.com/a2dvi/a2dvi/hardware/memory"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/video/scanline"
)

// charBits returns the dots of one line of a character. Bit zero is the
// leftmost dot.
//
// With the primary character set, characters below $80 are drawn inverse
// ($00 to $3f) or flashing ($40 to $7f) using the glyphs of the normal
// characters. $00 to $1f are drawn with the glyphs at $c0 and $20 to $3f with
// the glyphs at $a0. The alternate character set is drawn as it is found in the
// character generator.
func (r *Renderer) charBits(ch uint8, line int) uint8 {
	cs := r.st.Charset

	if r.sw.Has(softswitch.AltChar) {
		return cs.Line(true, ch, line) & 0x7f
	}

	var invert uint8
	if ch&0x80 == 0 {
		if ch&0x40 == 0x40 {
			invert = r.flasher.mask
		} else {
			invert = 0x7f
		}
		ch = ch&0x3f | (^ch&0x20)<<1 | 0x80
	}

	return (cs.Line(false, ch, line) ^ invert) & 0x7f
}

func (r *Renderer) encodeText(v scanline.View, line int, dim int) {
	row := line / 8
	glyphLine := line % 8
	base := memory.TextRow(row, r.page2)
	banks := &r.st.Banks

	if r.sw.Has(softswitch.Col80) {
		for col := 0; col < 40; col++ {
			a := r.charBits(banks.Aux[base+uint16(col)], glyphLine)
			m := r.charBits(banks.Main[base+uint16(col)], glyphLine)
			for d := 0; d < 7; d++ {
				r.dots[col*14+d] = (a >> d) & 0x01
				r.dots[col*14+7+d] = (m >> d) & 0x01
			}
		}
		r.emitDots(v, dim)
		return
	}

	// in 40 column mode each dot is two pixels wide, which is exactly one
	// word of the output
	t := r.monoTable(dim)
	for col := 0; col < 40; col++ {
		bits := r.charBits(banks.Main[base+uint16(col)], glyphLine)
		for d := 0; d < 7; d++ {
			v.Put(scanline.ActiveFirst+col*7+d, t[((bits>>d)&0x01)*3])
		}
	}
}
