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

// the flasher inverts flashing characters periodically. the period depends on
// the machine
type flasher struct {
	count int
	mask  uint8
}

func (f *flasher) tick(period int) {
	f.count++
	if f.count >= period {
		f.count = 0
		f.mask ^= 0x7f
	}
}
