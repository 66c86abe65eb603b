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

package fonts

import (
	"image"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/a2dvi/a2dvi/hardware/charset"
)

// the face is thirteen pixels high. glyph rows are sampled from this range
const (
	faceTop    = 2
	faceHeight = 9
)

// Builtin implements the charset.Table interface.
type Builtin struct {
	fonts        [][]uint8
	videxNormal  []uint8
	videxInverse []uint8
}

// NewBuiltin is the preferred method of initialisation for the Builtin type.
func NewBuiltin() *Builtin {
	b := &Builtin{}
	b.fonts = append(b.fonts, standard(), alternate())
	b.videxNormal, b.videxInverse = videx()
	return b
}

// Fonts implements the charset.Table interface.
func (b *Builtin) Fonts() int {
	return len(b.fonts)
}

// Font implements the charset.Table interface.
func (b *Builtin) Font(index int) ([]uint8, bool) {
	if index < 0 || index >= len(b.fonts) {
		return nil, false
	}
	return b.fonts[index], true
}

// VidexFont implements the charset.Table interface.
func (b *Builtin) VidexFont(inverse bool) []uint8 {
	if inverse {
		return b.videxInverse
	}
	return b.videxNormal
}

// glyph returns the bit pattern of the character for each of the requested
// number of lines. bit zero is the leftmost pixel
func glyph(r rune, lines int) []uint8 {
	face := basicfont.Face7x13
	out := make([]uint8, lines)

	_, mask, mp, _, ok := face.Glyph(fixed.P(0, face.Ascent), r)
	if !ok {
		return out
	}

	for l := 0; l < lines; l++ {
		y := faceTop + l*faceHeight/lines
		var bits uint8
		for x := 0; x < face.Width && x < 7; x++ {
			if alphaAt(mask, mp.X+x, mp.Y+y) {
				bits |= 0x01 << x
			}
		}
		out[l] = bits
	}

	return out
}

func alphaAt(mask image.Image, x, y int) bool {
	_, _, _, a := mask.At(x, y).RGBA()
	return a > 0x7fff
}

// the rune drawn for a character code. codes are arranged as on the Apple
// II with the printable set repeated through the upper half
func runeFor(ch int) rune {
	c := ch & 0x7f
	switch {
	case c < 0x20:
		// control codes show the upper case letters
		return rune(c + 0x40)
	case c == 0x7f:
		return ' '
	}
	return rune(c)
}

func standard() []uint8 {
	font := make([]uint8, charset.Size)
	for ch := 0; ch < charset.Glyphs; ch++ {
		copy(font[ch*charset.GlyphHeight:], glyph(runeFor(ch), charset.GlyphHeight))
	}
	return font
}

// in the alternate set the lower half is inverse
func alternate() []uint8 {
	font := standard()
	for i := 0; i < charset.Size/2; i++ {
		font[i] ^= 0x7f
	}
	return font
}

func videx() ([]uint8, []uint8) {
	normal := make([]uint8, charset.VidexSize)
	inverse := make([]uint8, charset.VidexSize)
	for ch := 0; ch < charset.VidexGlyphs; ch++ {
		g := glyph(runeFor(ch), charset.VidexGlyphHeight-2)
		off := ch * charset.VidexGlyphHeight
		copy(normal[off+1:], g)
		for i := 0; i < charset.VidexGlyphHeight; i++ {
			inverse[off+i] = normal[off+i] ^ 0x7f
		}
	}
	return normal, inverse
}
