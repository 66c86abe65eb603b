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

package memory

import "github.com/a2dvi/a2dvi/hardware/softswitch"

// The display pages.
const (
	TextPage1  = uint16(0x0400)
	TextPage2  = uint16(0x0800)
	HiresPage1 = uint16(0x2000)
	HiresPage2 = uint16(0x4000)
)

// DisplayPage2 returns true if the second display page is shown. When 80STORE
// is on PAGE2 selects the bank rather than the page.
func DisplayPage2(sw softswitch.Switches) bool {
	return sw.Has(softswitch.Page2) && !sw.Has(softswitch.Store80)
}

// TextRow returns the address of the first byte of the text row (0 to 23).
// Lo-res graphics use the same layout.
func TextRow(row int, page2 bool) uint16 {
	base := TextPage1
	if page2 {
		base = TextPage2
	}
	return base + uint16(128*(row%8)+40*(row/8))
}

// HiresLine returns the address of the first byte of the hi-res line (0 to
// 191).
func HiresLine(line int, page2 bool) uint16 {
	base := HiresPage1
	if page2 {
		base = HiresPage2
	}
	return base + uint16(0x400*(line%8)+0x80*((line/8)%8)+0x28*(line/64))
}
