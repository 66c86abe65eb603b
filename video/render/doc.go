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

// Package render turns the shared state of the card into encoded scanlines.
//
// Once per frame the Renderer takes a copy of the soft switches and the
// configuration and decides which encoder draws each line of the frame. The
// choice is made by a dispatch table over the four mode bits: TEXT, MIXED,
// HIRES and double resolution (DGR and 80COL together). Every combination of
// the bits has an entry.
//
// The output frame is 640x480. The 192 lines of the Apple II display are
// each output twice and are surrounded by a border of 48 lines top and
// bottom and 40 pixels left and right. When scanline emulation is on the
// second copy of each line is encoded with dimmed colours.
//
// Encoded buffers are passed to the output stage through a scanline.Queue.
// A line that is identical to the previous line is copied from the previous
// buffer rather than being encoded again.
package render
