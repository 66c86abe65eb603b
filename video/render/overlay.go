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

// the debug overlay shows the bus overflow count as a row of 32 bars on the
// first line of the frame. the most significant bit is on the left. each bar
// is followed by one word of black
func (r *Renderer) encodeOverlay(v scanline.View, _ int, _ int) {
	count := r.st.Counters.Overflows.Load()

	v.Fill(scanline.ActiveFirst, scanline.ActiveLast, r.tables.Black)

	const barWords = scanline.ActiveWords / 35
	for bit := 0; bit < 32; bit++ {
		t := r.tables.Black
		if count&(1<<(31-bit)) != 0 {
			t = r.tables.White
		}
		start := scanline.ActiveFirst + bit*barWords
		v.Fill(start, start+barWords-1, t)
	}
}
