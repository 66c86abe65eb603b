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

package softswitch

import (
	"github.com/a2dvi/a2dvi/hardware/bus"
)

// Effect is a side effect of a soft switch access that is not reflected in
// the value of the switches.
type Effect int

// List of valid Effect values.
const (
	NoEffect Effect = iota

	// the VBlank status register was accessed. the status is never stored
	// but the access is counted
	VBlankAccess
)

// the access kind a rule responds to
type access int

const (
	anyAccess access = iota
	writeOnly
	readOnly
)

type rule struct {
	access access
	gate   Capability
	apply  func(sw Switches, data uint8) Switches
	effect Effect
}

// the soft switch table is indexed by the low seven bits of the address. a
// zero entry is an address the card has no interest in
var table [0x80]rule

func flag(f Switches, on bool) func(Switches, uint8) Switches {
	return func(sw Switches, _ uint8) Switches {
		return sw.Assign(f, on)
	}
}

// add an off/on pair of rules at address and address+1
func pair(address int, f Switches, acc access, gate Capability) {
	table[address] = rule{access: acc, gate: gate, apply: flag(f, false)}
	table[address+1] = rule{access: acc, gate: gate, apply: flag(f, true)}
}

func init() {
	// IIe memory management and video switches. all are write only, reading
	// these addresses returns the keyboard
	pair(0x00, Store80, writeOnly, ExtendedRegs)
	pair(0x02, AuxRead, writeOnly, ExtendedRegs)
	pair(0x04, AuxWrite, writeOnly, ExtendedRegs)
	pair(0x06, IntCXROM, writeOnly, ExtendedRegs)
	pair(0x08, AltZP, writeOnly, ExtendedRegs)
	pair(0x0a, SlotC3ROM, writeOnly, ExtendedRegs)
	pair(0x0c, Col80, writeOnly, ExtendedRegs)
	pair(0x0e, AltChar, writeOnly, ExtendedRegs)

	// VBlank status. the access kind requirement depends on the capabilities
	// and is decided in Handle()
	table[0x19] = rule{effect: VBlankAccess}

	// IIgs monochrome and NEWVIDEO registers
	table[0x21] = rule{access: writeOnly, gate: GSRegs, apply: func(sw Switches, data uint8) Switches {
		return sw.Assign(Monochrome, data&0x80 == 0x80)
	}}
	table[0x29] = rule{access: writeOnly, gate: GSRegs, apply: func(sw Switches, data uint8) Switches {
		return sw.WithNewVideo(data >> 4)
	}}

	// the original video switches respond to any access on every machine
	pair(0x50, Text, anyAccess, 0)
	pair(0x52, Mixed, anyAccess, 0)
	pair(0x54, Page2, anyAccess, 0)
	pair(0x56, Hires, anyAccess, 0)

	// annunciator 0 switches the Videx card on and off when it is fitted with
	// the soft video switch
	pair(0x58, Videx80, anyAccess, VidexEnabled)

	// annunciator 3. DGR is on when AN3 is off
	table[0x5e] = rule{apply: flag(DGR, true)}
	table[0x5f] = rule{apply: func(sw Switches, _ uint8) Switches {
		if sw.Has(DGR) {
			sw = sw.WithVideo7(video7Shifted(sw))
		}
		return sw.Clear(DGR)
	}}

	// IOUDIS is reversed. $c07e disables the IOU
	table[0x7e] = rule{access: writeOnly, gate: ExtendedRegs, apply: flag(IOUDisable, true)}
	table[0x7f] = rule{access: writeOnly, gate: ExtendedRegs, apply: flag(IOUDisable, false)}
}

// the Video-7 mode is a two bit shift register clocked by AN3 going high. the
// new bit shifted in is the state of 80COL
func video7Shifted(sw Switches) Video7Mode {
	m := (uint8(sw.Video7()) << 1) & 0x02
	if sw.Has(Col80) {
		m |= 0x01
	}
	return Video7Mode(m)
}

// Handle applies a bus access in the soft switch window to the switches. The
// address is masked to the window so callers do not need to check the high
// bits. Accesses that do not meet the requirements of the register are
// ignored.
func Handle(sw Switches, caps Capability, address uint16, kind bus.AccessKind, data uint8) (Switches, Effect) {
	r := &table[address&0x7f]

	if r.effect == VBlankAccess {
		// with the extended register set VBlank is a read only status
		// register. the base machine does not check the access kind
		if caps.Has(ExtendedRegs) && kind != bus.Read {
			return sw, NoEffect
		}
		return sw, VBlankAccess
	}

	if r.apply == nil {
		return sw, NoEffect
	}

	switch r.access {
	case writeOnly:
		if kind != bus.Write {
			return sw, NoEffect
		}
	case readOnly:
		if kind != bus.Read {
			return sw, NoEffect
		}
	}

	if !caps.Has(r.gate) {
		return sw, NoEffect
	}

	return r.apply(sw, data), r.effect
}

// Gated returns true if the address is in the soft switch window and is gated
// by the capability.
func Gated(address uint16, c Capability) bool {
	r := &table[address&0x7f]
	return r.apply != nil && r.gate&c != 0
}

// Unconditional returns true if the address changes the switches regardless
// of access kind and capability.
func Unconditional(address uint16) bool {
	r := &table[address&0x7f]
	return r.apply != nil && r.gate == 0 && r.access == anyAccess
}
