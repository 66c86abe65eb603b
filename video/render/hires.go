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
	"github.com/a2dvi/a2dvi/video/tmds"
)

// hires colours for each combination of palette bit and column parity
var hiresColors = [2][2]uint8{
	{tmds.Purple, tmds.LightGreen},
	{tmds.MediumBlue, tmds.Orange},
}

func (r *Renderer) encodeHires(v scanline.View, line int, dim int) {
	data := r.st.Banks.Main[memory.HiresLine(line, r.page2):]

	if r.mono {
		// the palette bit delays the byte by half a pixel
		for i := range r.dots {
			r.dots[i] = 0
		}
		for col := 0; col < 40; col++ {
			b := data[col]
			shift := int(b >> 7)
			for i := 0; i < 7; i++ {
				d := (b >> i) & 0x01
				p := (col*7+i)*2 + shift
				r.dots[p] = d
				r.dots[p+1] = d
			}
		}
		r.emitDots(v, dim)
		return
	}

	pixel := func(x int) (bool, uint8) {
		if x < 0 || x >= 280 {
			return false, 0
		}
		b := data[x/7]
		return (b>>(x%7))&0x01 == 0x01, b >> 7
	}

	t := r.pairTable(dim)
	for x := 0; x < 280; x++ {
		on, pal := pixel(x)
		left, lpal := pixel(x - 1)
		right, _ := pixel(x + 1)

		var c uint8
		switch {
		case on && (left || right):
			c = tmds.White
		case on:
			c = hiresColors[pal][x&0x01]
		case left && right:
			// a single pixel gap between two lit pixels is filled with the
			// colour of the pixels either side
			c = hiresColors[lpal][(x-1)&0x01]
		}

		v.Put(scanline.ActiveFirst+x, t[c<<4|c])
	}
}
