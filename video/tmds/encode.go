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

import "math/bits"

// Symbol is a 10-bit TMDS symbol.
type Symbol uint16

// Weight returns the number of one bits in the symbol.
func (s Symbol) Weight() int {
	return bits.OnesCount16(uint16(s) & 0x3ff)
}

// Encode a byte with the DVI 8b/10b algorithm. The disparity argument is the
// running count of ones minus zeros of previously sent symbols. The new
// disparity is returned with the symbol.
func Encode(data uint8, disparity int) (Symbol, int) {
	n1 := bits.OnesCount8(data)
	useXNOR := n1 > 4 || (n1 == 4 && data&0x01 == 0)

	qm := uint16(data & 0x01)
	for i := 1; i < 8; i++ {
		prev := (qm >> (i - 1)) & 0x01
		d := uint16(data>>i) & 0x01
		b := prev ^ d
		if useXNOR {
			b ^= 0x01
		}
		qm |= b << i
	}
	if !useXNOR {
		qm |= 0x100
	}

	q8 := qm&0x100 != 0
	n1q := bits.OnesCount16(qm & 0xff)
	n0q := 8 - n1q

	var out uint16

	switch {
	case disparity == 0 || n1q == n0q:
		if q8 {
			out = 0x100 | (qm & 0xff)
			disparity += n1q - n0q
		} else {
			out = 0x200 | (^qm & 0xff)
			disparity += n0q - n1q
		}
	case (disparity > 0 && n1q > n0q) || (disparity < 0 && n0q > n1q):
		out = 0x200 | (qm & 0x100) | (^qm & 0xff)
		if q8 {
			disparity += 2
		}
		disparity += n0q - n1q
	default:
		out = qm & 0x1ff
		if !q8 {
			disparity -= 2
		}
		disparity += n1q - n0q
	}

	return Symbol(out), disparity
}

// Decode a TMDS data symbol. This is the inverse of Encode() and is used by
// output stages that display the encoded stream.
func Decode(s Symbol) uint8 {
	d := uint16(s) & 0xff
	if s&0x200 != 0 {
		d = ^d & 0xff
	}

	out := d & 0x01
	for i := 1; i < 8; i++ {
		b := ((d >> i) ^ (d >> (i - 1))) & 0x01
		if s&0x100 == 0 {
			b ^= 0x01
		}
		out |= b << i
	}

	return uint8(out)
}
