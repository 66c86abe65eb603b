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

package assert

import "fmt"

// Check panics if the condition is false. Callers on a hot path should test
// Enabled before calling so that the arguments are not evaluated in a
// normal build.
func Check(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: %s", fmt.Sprintf(msg, args...)))
	}
}
