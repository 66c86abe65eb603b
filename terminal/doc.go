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

// Package terminal is the console used by the MONITOR mode. It wraps
// "github.com/pkg/term/termios" to put the terminal into cbreak mode so that
// single key presses can be read, and it prints a status line that is
// redrawn in place.
//
// The Menu type implements the device.Menu interface by echoing keys
// forwarded by the host.
package terminal
