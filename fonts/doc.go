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

// Package fonts is the built-in font selection table. The glyphs are
// rasterised from the 7x13 face in golang.org/x/image/font/basicfont and
// arranged in the layout expected by the character generator.
//
// Two fonts are provided. The first is the standard character set: inverse
// and flashing characters are produced by the renderer from the glyphs in
// the upper half of the set. The second is an alternate character set with
// inverse glyphs pre-computed in the lower half.
//
// The Videx fonts are rasterised from the same face with more lines per
// glyph.
package fonts
