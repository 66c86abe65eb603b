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
	"github.com/a2dvi/a2dvi/video/tmds"
)

func (r *Renderer) encodeDHGR(v scanline.View, line int, dim int) {
	addr := memory.HiresLine(line, r.page2)
	aux := r.st.Banks.Aux[addr:]
	main := r.st.Banks.Main[addr:]

	// 560 dots. seven from each byte, auxiliary memory first
	for col := 0; col < 40; col++ {
		a := aux[col]
		m := main[col]
		for i := 0; i < 7; i++ {
			r.dots[col*14+i] = (a >> i) & 0x01
			r.dots[col*14+7+i] = (m >> i) & 0x01
		}
	}

	mode := softswitch.Video7Color140
	if r.caps.Has(softswitch.Video7Enabled) {
		mode = r.sw.Video7()
	}

	if r.mono || mode == softswitch.Video7Mono560 {
		r.emitDots(v, dim)
		return
	}

	switch mode {
	case softswitch.Video7ForeBack:
		// 280 pixels. the main byte has the pixels and the auxiliary byte
		// has the foreground and background colours
		for col := 0; col < 40; col++ {
			m := main[col]
			fg := aux[col] >> 4
			bg := aux[col] & 0x0f
			for i := 0; i < 7; i++ {
				c := bg
				if (m>>i)&0x01 == 0x01 {
					c = fg
				}
				r.colors[col*14+i*2] = c
				r.colors[col*14+i*2+1] = c
			}
		}

	case softswitch.Video7Mixed:
		// the high bit of each byte selects colour or monochrome for the
		// seven dots from that byte
		r.colors140()
		for col := 0; col < 80; col++ {
			var b uint8
			if col&0x01 == 0 {
				b = aux[col/2]
			} else {
				b = main[col/2]
			}
			if b&0x80 == 0x80 {
				continue
			}
			for p := col * 7; p < (col+1)*7; p++ {
				r.colors[p] = r.dots[p] * tmds.White
			}
		}

	default:
		r.colors140()
	}

	r.emitColors(v, dim)
}

// each group of four dots is one of the sixteen colours. the first dot is
// the least significant bit of the colour
func (r *Renderer) colors140() {
	for g := 0; g < 140; g++ {
		p := g * 4
		c := r.dots[p] | r.dots[p+1]<<1 | r.dots[p+2]<<2 | r.dots[p+3]<<3
		r.colors[p] = c
		r.colors[p+1] = c
		r.colors[p+2] = c
		r.colors[p+3] = c
	}
}
