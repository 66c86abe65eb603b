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

// the balanced levels in ascending order and the symbol for each level
var (
	balancedLevels  []uint8
	balancedSymbols map[Symbol]uint8
)

func init() {
	balancedSymbols = make(map[Symbol]uint8)
	for v := 0; v < 256; v++ {
		if IsBalanced(uint8(v)) {
			balancedLevels = append(balancedLevels, uint8(v))
			s, _ := Encode(uint8(v), 0)
			balancedSymbols[s] = uint8(v)
		}
	}
}

// IsBalanced returns true if the level encodes to a symbol that does not
// change the running disparity of the link.
func IsBalanced(level uint8) bool {
	s, d := Encode(level, 0)
	if d != 0 || s.Weight() != 5 {
		return false
	}

	// the symbol must be the same whatever the running disparity
	for _, disparity := range []int{-8, -2, 2, 8} {
		t, e := Encode(level, disparity)
		if t != s || e != disparity {
			return false
		}
	}
	return true
}

// BalancedLevels returns the list of balanced levels in ascending order.
func BalancedLevels() []uint8 {
	return append([]uint8(nil), balancedLevels...)
}

// IsBalancedSymbol returns true if the symbol is the encoding of a balanced
// level.
func IsBalancedSymbol(s Symbol) bool {
	_, ok := balancedSymbols[s]
	return ok
}

// Quantise returns the balanced level nearest to the value.
func Quantise(v uint8) uint8 {
	best := balancedLevels[0]
	bestDist := 256
	for _, l := range balancedLevels {
		d := int(l) - int(v)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best = l
			bestDist = d
		}
	}
	return best
}

// SymbolFor returns the symbol for the balanced level nearest the value.
func SymbolFor(v uint8) Symbol {
	s, _ := Encode(Quantise(v), 0)
	return s
}
