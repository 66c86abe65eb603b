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

// Package charset holds the active character generator of the card. The
// glyphs themselves come from a Table, which is supplied by the fonts
// package or by the host streaming glyph data through the device registers.
package charset

import (
	"sync/atomic"
)

// Glyph dimensions of the Apple II character generator. Each glyph is eight
// bytes, one per line. Bit zero is the leftmost dot and bit seven is unused.
const (
	Glyphs      = 256
	GlyphHeight = 8
	Size        = Glyphs * GlyphHeight
)

// Glyph dimensions of the Videx character generator. Each glyph occupies 16
// bytes, of which the first nine are displayed.
const (
	VidexGlyphs      = 128
	VidexGlyphHeight = 16
	VidexSize        = VidexGlyphs * VidexGlyphHeight
)

// Table is the selection of fonts available to the card.
type Table interface {
	// Fonts returns the number of fonts in the table
	Fonts() int

	// Font returns a Size byte image of the font. The second return value
	// is false if index is out of range
	Font(index int) ([]uint8, bool)

	// VidexFont returns a VidexSize byte image of the normal or inverse
	// Videx font
	VidexFont(inverse bool) []uint8
}

// Target is a character generator buffer that can be written by the host.
type Target int

// List of valid Target values.
const (
	Local Target = iota
	Alternate
)

// Generator is the active character generator. The buffers are written by
// the bus goroutine and read by the renderer without synchronisation.
type Generator struct {
	Local        [Size]uint8
	Alternate    [Size]uint8
	VidexNormal  [VidexSize]uint8
	VidexInverse [VidexSize]uint8

	localIndex     atomic.Int32
	alternateIndex atomic.Int32

	// count of times a font has been copied into the generator
	reloads atomic.Uint32
}

// NewGenerator creates a generator with the first font of the table as the
// local and alternate character sets.
func NewGenerator(tab Table) *Generator {
	g := &Generator{}
	g.SelectLocal(tab, 0)
	g.SelectAlternate(tab, 0)
	copy(g.VidexNormal[:], tab.VidexFont(false))
	copy(g.VidexInverse[:], tab.VidexFont(true))
	return g
}

// SelectLocal copies the font from the table into the local character set.
// Returns false and leaves the generator unchanged if the index is out of
// range.
func (g *Generator) SelectLocal(tab Table, index int) bool {
	f, ok := tab.Font(index)
	if !ok {
		return false
	}
	copy(g.Local[:], f)
	g.localIndex.Store(int32(index))
	g.reloads.Add(1)
	return true
}

// SelectAlternate copies the font from the table into the alternate
// character set. Returns false and leaves the generator unchanged if the
// index is out of range.
func (g *Generator) SelectAlternate(tab Table, index int) bool {
	f, ok := tab.Font(index)
	if !ok {
		return false
	}
	copy(g.Alternate[:], f)
	g.alternateIndex.Store(int32(index))
	g.reloads.Add(1)
	return true
}

// LocalIndex returns the index of the most recently selected local font.
func (g *Generator) LocalIndex() int {
	return int(g.localIndex.Load())
}

// AlternateIndex returns the index of the most recently selected alternate
// font.
func (g *Generator) AlternateIndex() int {
	return int(g.alternateIndex.Load())
}

// Reloads returns the number of times a font has been copied into the
// generator.
func (g *Generator) Reloads() uint32 {
	return g.reloads.Load()
}

// Poke writes a single byte of glyph data. The offset wraps at the size of
// the buffer.
func (g *Generator) Poke(target Target, offset int, data uint8) {
	offset %= Size
	if target == Alternate {
		g.Alternate[offset] = data
	} else {
		g.Local[offset] = data
	}
}

// Line returns the bit pattern for one line of a glyph in the local or
// alternate character set.
func (g *Generator) Line(alternate bool, ch uint8, line int) uint8 {
	idx := int(ch)*GlyphHeight + line&(GlyphHeight-1)
	if alternate {
		return g.Alternate[idx]
	}
	return g.Local[idx]
}

// VidexLine returns the bit pattern for one line of a Videx glyph. Characters
// with the high bit set come from the inverse font.
func (g *Generator) VidexLine(ch uint8, line int) uint8 {
	idx := int(ch&0x7f)*VidexGlyphHeight + line&(VidexGlyphHeight-1)
	if ch&0x80 == 0x80 {
		return g.VidexInverse[idx]
	}
	return g.VidexNormal[idx]
}
