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

// Package tmds generates the TMDS symbols used by the scanline encoders.
//
// DVI carries each colour channel as a stream of 10-bit symbols. The encoder
// for the stream is stateful: the choice of symbol depends on the running DC
// balance of the link. The renderer has no time for that so it only uses
// "balanced" levels. A balanced level is one whose intermediate code has
// four ones and four zeros. The symbol for a balanced level has five ones and
// five zeros, never changes the running balance and is therefore the same
// whatever came before it.
//
// Colours are quantised to the nearest balanced level and the symbols for
// every colour and pixel pair the renderer can produce are computed once, by
// NewTables(). Each table entry is a Triple: one 32-bit word for each of the
// three lanes, holding the symbols for two adjacent pixels.
package tmds
