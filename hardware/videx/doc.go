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

// Package videx emulates the Videx Videoterm 80 column card. The card is
// built around a 6845 CRT controller, which is programmed through an
// index/data register pair, and 2K of video RAM, which is seen by the host
// through a 512 byte window.
//
// The Terminal type holds the state of the card as seen on the bus. Rendering
// is performed by the video/render package using the Terminal's accessor
// functions.
package videx
