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

// Lanes is the number of TMDS channels.
const Lanes = 3

// Lane numbers. DVI sends blue on channel 0.
const (
	LaneBlue = iota
	LaneGreen
	LaneRed
)

// Triple is the symbols for two adjacent pixels on each of the three lanes.
// The first pixel is in the low ten bits of each word.
type Triple [Lanes]uint32

// Pack two symbols into a word. The first pixel is in the low bits.
func Pack(first, second Symbol) uint32 {
	return uint32(first) | uint32(second)<<10
}

// Unpack is the inverse of Pack().
func Unpack(w uint32) (Symbol, Symbol) {
	return Symbol(w & 0x3ff), Symbol((w >> 10) & 0x3ff)
}

// Swapped returns the triple with the two pixels exchanged.
func (t Triple) Swapped() Triple {
	var s Triple
	for i, w := range t {
		a, b := Unpack(w)
		s[i] = Pack(b, a)
	}
	return s
}

// TripleFor returns the triple for a pair of pixels.
func TripleFor(first, second RGB) Triple {
	return Triple{
		LaneBlue:  Pack(SymbolFor(first.B), SymbolFor(second.B)),
		LaneGreen: Pack(SymbolFor(first.G), SymbolFor(second.G)),
		LaneRed:   Pack(SymbolFor(first.R), SymbolFor(second.R)),
	}
}

// Decode the two pixels of a triple.
func (t Triple) Decode() (RGB, RGB) {
	ab, bb := Unpack(t[LaneBlue])
	ag, bg := Unpack(t[LaneGreen])
	ar, br := Unpack(t[LaneRed])
	return RGB{R: Decode(ar), G: Decode(ag), B: Decode(ab)},
		RGB{R: Decode(br), G: Decode(bg), B: Decode(bb)}
}

// Brightness index for the tables.
const (
	Normal = 0
	Dim    = 1
)

// Tables are the pre-computed symbols for every pixel pair used by the
// renderer.
type Tables struct {
	// indexed by [colour mode][brightness][dot pattern]. bit 0 of the dot
	// pattern is the first pixel
	Mono [][2][4]Triple

	// indexed by [palette][brightness][first<<4 | second]
	Pairs [][2][256]Triple

	Black Triple
	White Triple
}

// NewTables computes the symbol tables for all palettes and colour modes.
func NewTables() *Tables {
	tab := &Tables{
		Mono:  make([][2][4]Triple, len(Foregrounds)),
		Pairs: make([][2][256]Triple, len(Palettes)),
	}

	black := RGB{}
	for m, fg := range Foregrounds {
		for dim := 0; dim < 2; dim++ {
			c := fg
			if dim == Dim {
				c = c.Scale(dimNumerator, dimDenominator)
			}
			for pat := 0; pat < 4; pat++ {
				first, second := black, black
				if pat&0x01 != 0 {
					first = c
				}
				if pat&0x02 != 0 {
					second = c
				}
				tab.Mono[m][dim][pat] = TripleFor(first, second)
			}
		}
	}

	for p, pal := range Palettes {
		for dim := 0; dim < 2; dim++ {
			for i := 0; i < 256; i++ {
				first := pal[i>>4]
				second := pal[i&0x0f]
				if dim == Dim {
					first = first.Scale(dimNumerator, dimDenominator)
					second = second.Scale(dimNumerator, dimDenominator)
				}
				tab.Pairs[p][dim][i] = TripleFor(first, second)
			}
		}
	}

	tab.Black = TripleFor(black, black)
	tab.White = TripleFor(Foregrounds[0], Foregrounds[0])

	return tab
}

// Lores returns the triple for two pixels of the same colour.
func (tab *Tables) Lores(palette int, dim int, c uint8) Triple {
	return tab.Pairs[palette][dim][(c&0x0f)<<4|c&0x0f]
}
