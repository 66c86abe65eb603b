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

// Package softswitch models the display-mode flags of the host. The flags are
// held in a Switches bitset and are changed by bus accesses to the soft switch
// window ($c000 to $c07f) with the Handle() function.
//
// Many switches only exist on later machines. The Capability bitset records
// which register sets are present and Handle() ignores accesses to registers
// that are not.
package softswitch
