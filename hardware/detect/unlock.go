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
	"github.com/a2dvi/a2dvi/hardware/machine"
)

// UnlockState is the progress through the unlock sequence.
type UnlockState int

// List of valid UnlockState values.
const (
	Locked UnlockState = iota
	Step1
	Step2
	Unlocked
)

func (s UnlockState) String() string {
	switch s {
	case Locked:
		return "locked"
	case Step1:
		return "step 1"
	case Step2:
		return "step 2"
	case Unlocked:
		return "unlocked"
	}
	return "unknown"
}

// Markers are the addresses used by the unlock sequence for a family of
// machines.
type Markers struct {
	// high byte of every address in the sequence
	Marker uint8

	// low bytes of the sequence: A, A, B
	A uint8
	B uint8

	// reading an address in the window selects font (address & 0x0f)
	WindowLo uint16
	WindowHi uint16

	// reading the commit address makes the selected font active
	Commit uint16
}

// MarkersFor returns the unlock markers for the family. The II family of
// machines have no $cxxx ROM to read so the sequence is in the F8 ROM.
func MarkersFor(f machine.Family) Markers {
	if f.IIFamily() {
		return Markers{
			Marker:   0xfa,
			A:        0xca,
			B:        0xfe,
			WindowLo: 0xf810,
			WindowHi: 0xf81f,
			Commit:   0xf800,
		}
	}
	return Markers{
		Marker:   0xca,
		A:        0xca,
		B:        0xfe,
		WindowLo: 0xcfd0,
		WindowHi: 0xcfdf,
		Commit:   0xcfff,
	}
}

// Unlock recognises the ROMX unlock sequence and the font selection that
// follows it. Only reads are observed.
type Unlock struct {
	state   UnlockState
	markers Markers

	// font selected in the window. -1 if no font has been selected
	font int
}

// NewUnlock is the preferred method of initialisation for the Unlock type.
func NewUnlock(m Markers) *Unlock {
	return &Unlock{markers: m, font: -1}
}

// SetMarkers changes the markers. The state is relocked.
func (u *Unlock) SetMarkers(m Markers) {
	u.markers = m
	u.Relock()
}

// Relock returns the recogniser to the locked state.
func (u *Unlock) Relock() {
	u.state = Locked
	u.font = -1
}

// State returns the current progress.
func (u *Unlock) State() UnlockState {
	return u.state
}

// Read observes a read of the address. If the read commits a font the font
// number and true is returned.
func (u *Unlock) Read(address uint16) (int, bool) {
	if u.state == Unlocked {
		if address >= u.markers.WindowLo && address <= u.markers.WindowHi {
			u.font = int(address & 0x0f)
			return 0, false
		}
		if address == u.markers.Commit && u.font >= 0 {
			f := u.font
			u.Relock()
			return f, true
		}
		return 0, false
	}

	if uint8(address>>8) != u.markers.Marker {
		u.state = Locked
		return 0, false
	}

	switch uint8(address) {
	case u.markers.A:
		switch u.state {
		case Locked:
			u.state = Step1
		case Step1, Step2:
			u.state = Step2
		}
	case u.markers.B:
		if u.state == Step2 {
			u.state = Unlocked
		} else {
			u.state = Locked
		}
	default:
		u.state = Locked
	}

	return 0, false
}
