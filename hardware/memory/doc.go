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

// Package memory shadows the parts of host RAM that are displayed. There are
// two banks, main and auxiliary, each covering the first $6000 bytes of the
// host's address space: zero page and stack, the two text pages and the two
// hi-res pages.
//
// Writes are routed to a bank by the Route() function, which is a pure
// function of the address and the soft switches. The banks are written by the
// bus goroutine and read without synchronisation by the renderer.
package memory
