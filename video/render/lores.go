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
	"github.com/a2dvi/a2dvi/video/scanline"
)

// the lo-res colour of the line. each byte holds two blocks, the top block in
// the low nibble
func loresNibble(b uint8, line int) uint8 {
	if (line%8)/4 == 0 {
		return b & 0x0f
	}
	return b >> 4
}

// double lo-res colours in auxiliary memory are rotated by one bit
func rotateAux(c uint8) uint8 {
	return (c<<1 | c>>3) & 0x0f
}

// monochrome display of colour c at dot position p
func colorDot(c uint8, p int) uint8 {
	return (c >> (p % 4)) & 0x01
}

func (r *Renderer) encodeLores(v scanline.View, line int, dim int) {
	base := memory.TextRow(line/8, r.page2)
	banks := &r.st.Banks

	if r.mono {
		for col := 0; col < 40; col++ {
			c := loresNibble(banks.Main[base+uint16(col)], line)
			for p := col * 14; p < (col+1)*14; p++ {
				r.dots[p] = colorDot(c, p)
			}
		}
		r.emitDots(v, dim)
		return
	}

	// each block is fourteen pixels wide, which is seven words of the
	// output
	t := r.pairTable(dim)
	for col := 0; col < 40; col++ {
		c := loresNibble(banks.Main[base+uint16(col)], line)
		w := t[c<<4|c]
		for i := 0; i < 7; i++ {
			v.Put(scanline.ActiveFirst+col*7+i, w)
		}
	}
}

func (r *Renderer) encodeDGR(v scanline.View, line int, dim int) {
	base := memory.TextRow(line/8, r.page2)
	banks := &r.st.Banks

	for col := 0; col < 40; col++ {
		a := rotateAux(loresNibble(banks.Aux[base+uint16(col)], line))
		m := loresNibble(banks.Main[base+uint16(col)], line)
		for i := 0; i < 7; i++ {
			r.colors[col*14+i] = a
			r.colors[col*14+7+i] = m
		}
	}

	if r.mono {
		for p := range r.colors {
			r.dots[p] = colorDot(r.colors[p], p)
		}
		r.emitDots(v, dim)
		return
	}

	r.emitColors(v, dim)
}
