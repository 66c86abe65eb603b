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

package softswitch_test

import (
	"testing"

	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/test"
)

// writes to registers gated by the extended register set must not change
// the switches when the capability is missing
func TestGatedWithoutCapability(t *testing.T) {
	var n int
	for a := uint16(0xc000); a <= 0xc07f; a++ {
		if !softswitch.Gated(a, softswitch.ExtendedRegs) {
			continue
		}
		n++

		for _, start := range []softswitch.Switches{0, ^softswitch.Switches(0)} {
			sw, _ := softswitch.Handle(start, softswitch.GSRegs, a, bus.Write, 0xff)
			test.ExpectEquality(t, sw, start, a)
		}

		// but with the capability the write does change something
		sw0, _ := softswitch.Handle(0, softswitch.ExtendedRegs, a, bus.Write, 0xff)
		sw1, _ := softswitch.Handle(^softswitch.Switches(0), softswitch.ExtendedRegs, a, bus.Write, 0xff)
		test.ExpectSuccess(t, sw0 != 0 || sw1 != ^softswitch.Switches(0), a)
	}
	test.ExpectEquality(t, n, 18)
}

func TestUnconditional(t *testing.T) {
	var n int
	for a := uint16(0xc000); a <= 0xc07f; a++ {
		if !softswitch.Unconditional(a) {
			continue
		}
		n++

		for _, kind := range []bus.AccessKind{bus.Read, bus.Write} {
			off, _ := softswitch.Handle(^softswitch.Switches(0), 0, a, kind, 0)
			on, _ := softswitch.Handle(0, 0, a, kind, 0)
			test.ExpectSuccess(t, off != ^softswitch.Switches(0) || on != 0, a)
		}
	}

	// $c050 to $c057 and $c05e/$c05f
	test.ExpectEquality(t, n, 10)

	sw, _ := softswitch.Handle(softswitch.Text, 0, 0xc050, bus.Read, 0)
	test.ExpectFailure(t, sw.Has(softswitch.Text))
	sw, _ = softswitch.Handle(sw, 0, 0xc057, bus.Write, 0)
	test.ExpectSuccess(t, sw.Has(softswitch.Hires))
	sw, _ = softswitch.Handle(sw, 0, 0xc055, bus.Read, 0)
	test.ExpectSuccess(t, sw.Has(softswitch.Page2))
}

func TestWriteOnly(t *testing.T) {
	// reads of $c001 are keyboard reads
	sw, _ := softswitch.Handle(0, softswitch.ExtendedRegs, 0xc001, bus.Read, 0)
	test.ExpectFailure(t, sw.Has(softswitch.Store80))
	sw, _ = softswitch.Handle(0, softswitch.ExtendedRegs, 0xc001, bus.Write, 0)
	test.ExpectSuccess(t, sw.Has(softswitch.Store80))
}

func TestVBlank(t *testing.T) {
	sw, e := softswitch.Handle(softswitch.Text, softswitch.ExtendedRegs, 0xc019, bus.Read, 0)
	test.ExpectEquality(t, e, softswitch.VBlankAccess)
	test.ExpectEquality(t, sw, softswitch.Text)

	_, e = softswitch.Handle(softswitch.Text, softswitch.ExtendedRegs, 0xc019, bus.Write, 0)
	test.ExpectEquality(t, e, softswitch.NoEffect)

	// the base machine does not check the access kind
	_, e = softswitch.Handle(softswitch.Text, 0, 0xc019, bus.Write, 0)
	test.ExpectEquality(t, e, softswitch.VBlankAccess)
}

func TestGSRegisters(t *testing.T) {
	sw, _ := softswitch.Handle(0, softswitch.ExtendedRegs, 0xc021, bus.Write, 0x80)
	test.ExpectFailure(t, sw.Has(softswitch.Monochrome))

	sw, _ = softswitch.Handle(0, softswitch.GSRegs, 0xc021, bus.Write, 0x80)
	test.ExpectSuccess(t, sw.Has(softswitch.Monochrome))
	sw, _ = softswitch.Handle(sw, softswitch.GSRegs, 0xc021, bus.Write, 0x00)
	test.ExpectFailure(t, sw.Has(softswitch.Monochrome))

	sw, _ = softswitch.Handle(sw, softswitch.GSRegs, 0xc029, bus.Write, 0xa1)
	test.ExpectEquality(t, sw.NewVideo(), uint8(0x0a))
}

func TestVideo7Shift(t *testing.T) {
	caps := softswitch.ExtendedRegs
	sw := softswitch.ResetState
	test.ExpectEquality(t, sw.Video7(), softswitch.Video7Color140)

	// DGR off while DGR is already off does not shift
	sw, _ = softswitch.Handle(sw, caps, 0xc05f, bus.Write, 0)
	test.ExpectEquality(t, sw.Video7(), softswitch.Video7Color140)

	// with 80COL off the shift brings in a zero
	sw, _ = softswitch.Handle(sw, caps, 0xc05e, bus.Write, 0)
	sw, _ = softswitch.Handle(sw, caps, 0xc05f, bus.Write, 0)
	test.ExpectEquality(t, sw.Video7(), softswitch.Video7Mixed)
	sw, _ = softswitch.Handle(sw, caps, 0xc05e, bus.Write, 0)
	sw, _ = softswitch.Handle(sw, caps, 0xc05f, bus.Write, 0)
	test.ExpectEquality(t, sw.Video7(), softswitch.Video7Mono560)

	// with 80COL on the shift brings in a one
	sw, _ = softswitch.Handle(sw, caps, 0xc00d, bus.Write, 0)
	sw, _ = softswitch.Handle(sw, caps, 0xc05e, bus.Write, 0)
	sw, _ = softswitch.Handle(sw, caps, 0xc05f, bus.Write, 0)
	test.ExpectEquality(t, sw.Video7(), softswitch.Video7ForeBack)

	// a second DGR off does not shift again
	sw, _ = softswitch.Handle(sw, caps, 0xc05f, bus.Write, 0)
	test.ExpectEquality(t, sw.Video7(), softswitch.Video7ForeBack)

	sw, _ = softswitch.Handle(sw, caps, 0xc05e, bus.Write, 0)
	sw, _ = softswitch.Handle(sw, caps, 0xc05f, bus.Write, 0)
	test.ExpectEquality(t, sw.Video7(), softswitch.Video7Color140)
}

func TestVidex80(t *testing.T) {
	sw, _ := softswitch.Handle(0, 0, 0xc059, bus.Read, 0)
	test.ExpectFailure(t, sw.Has(softswitch.Videx80))
	sw, _ = softswitch.Handle(0, softswitch.VidexEnabled, 0xc059, bus.Read, 0)
	test.ExpectSuccess(t, sw.Has(softswitch.Videx80))
}

func TestSwitchesString(t *testing.T) {
	test.ExpectEquality(t, softswitch.ResetState.String(), "TEXT V7=140 colour")
}
