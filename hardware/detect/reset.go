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

package detect

import (
	"github.com/a2dvi/a2dvi/hardware/bus"
)

// Reset recognises the 6502 reset sequence: the reset vector is read and then
// the first instruction of the RESET routine is fetched.
type Reset struct {
	progress int

	// address of the monitor's RESET routine for the current machine
	target uint16
}

// NewReset is the preferred method of initialisation for the Reset type.
func NewReset(target uint16) *Reset {
	return &Reset{target: target}
}

// SetTarget changes the address of the RESET routine. Progress is cleared.
func (r *Reset) SetTarget(target uint16) {
	r.target = target
	r.progress = 0
}

// Progress returns the number of steps of the sequence that have been seen.
func (r *Reset) Progress() int {
	return r.progress
}

// Observe a bus access. Returns true if the access completes the reset
// sequence.
func (r *Reset) Observe(kind bus.AccessKind, address uint16) bool {
	if kind == bus.Write {
		r.progress = 0
		return false
	}

	switch r.progress {
	case 0:
		if address == bus.ResetVectorLo {
			r.progress = 1
		}
	case 1:
		if address == bus.ResetVectorHi {
			r.progress = 2
		} else {
			r.restart(address)
		}
	case 2:
		if address == r.target {
			r.progress = 0
			return true
		}
		r.restart(address)
	}

	return false
}

// a read that breaks the sequence may be the start of a new sequence
func (r *Reset) restart(address uint16) {
	if address == bus.ResetVectorLo {
		r.progress = 1
	} else {
		r.progress = 0
	}
}
