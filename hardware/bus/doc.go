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

// Package bus decodes the raw observations of the host's expansion bus. Each
// observation is a single 32-bit word, one per host bus cycle, and is turned
// into a Sample by a Layout.
//
// Words arrive from a Source. The FIFO type is the hardware-paced source: the
// producer never waits and a word that cannot be queued is dropped and
// counted. The Trace type replays words previously captured to a file.
//
// The file addresses.go names the areas of the host address space that the
// card is interested in.
package bus
