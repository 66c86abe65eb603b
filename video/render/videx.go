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
	"github.com/a2dvi/a2dvi/video/scanline"
)

func (r *Renderer) encodeVidex(v scanline.View, line int, dim int) {
	vx := r.st.Videx
	cs := r.st.Charset

	lpr := vx.LinesPerRow()
	row := line / lpr
	sl := line % lpr

	cols := vx.Columns()
	if cols > 80 {
		cols = 80
	}

	cursor := vx.CursorAddress()
	cursorStart, cursorEnd := vx.CursorBand()
	cursorOn := vx.CursorVisible(r.frame) && sl >= cursorStart && sl <= cursorEnd

	addr := vx.StartAddress() + uint16(row*vx.Columns())

	for i := range r.dots {
		r.dots[i] = 0
	}

	for col := 0; col < cols; col++ {
		a := addr + uint16(col)
		bits := cs.VidexLine(vx.Char(a), sl)
		if cursorOn && a&0x7ff == cursor {
			bits ^= 0x7f
		}
		for d := 0; d < 7; d++ {
			r.dots[col*7+d] = (bits >> d) & 0x01
		}
	}

	r.emitDots(v, dim)
}
