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

// Package machine identifies the host computer. A Family is a concrete member
// of the Apple II family. A Selection is how the card decides the family:
// either fixed by configuration or automatically detected.
//
// Automatic detection is performed by the Scanner, which watches for the ROM
// identification bytes being read by the host. Most software, including the
// monitor ROM of later machines, reads these bytes early in the boot process.
package machine
