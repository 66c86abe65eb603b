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

package memory_test

import (
	"testing"

	"github.com/a2dvi/a2dvi/hardware/memory"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/test"
)

func TestStore80Page2(t *testing.T) {
	var b memory.Banks
	sw := softswitch.Store80 | softswitch.Page2

	test.ExpectEquality(t, b.Write(0x400, 0xc1, sw), memory.BankAux)
	test.ExpectEquality(t, b.Aux[0x400], uint8(0xc1))
	test.ExpectEquality(t, b.Main[0x400], uint8(0x00))
}

func TestStore80Page1(t *testing.T) {
	var b memory.Banks
	sw := softswitch.Store80 | softswitch.AuxWrite

	// 80STORE takes priority over AUXWRITE
	test.ExpectEquality(t, b.Write(0x400, 0xc1, sw), memory.BankMain)
	test.ExpectEquality(t, b.Main[0x400], uint8(0xc1))
	test.ExpectEquality(t, b.Aux[0x400], uint8(0x00))
}

func TestStore80Hires(t *testing.T) {
	sw := softswitch.Store80 | softswitch.Page2

	// without HIRES the hi-res page is routed by AUXWRITE
	test.ExpectEquality(t, memory.Route(0x2000, sw), memory.BankMain)
	test.ExpectEquality(t, memory.Route(0x2000, sw|softswitch.Hires), memory.BankAux)

	// the second hi-res page is never affected by 80STORE
	test.ExpectEquality(t, memory.Route(0x4000, sw|softswitch.Hires), memory.BankMain)
}

func TestAuxWrite(t *testing.T) {
	test.ExpectEquality(t, memory.Route(0x0200, softswitch.AuxWrite), memory.BankAux)
	test.ExpectEquality(t, memory.Route(0x5fff, softswitch.AuxWrite), memory.BankAux)

	// zero page and stack
	test.ExpectEquality(t, memory.Route(0x0000, softswitch.AuxWrite), memory.BankMain)
	test.ExpectEquality(t, memory.Route(0x01ff, softswitch.AuxWrite), memory.BankMain)
}

func TestMenuSuppression(t *testing.T) {
	sw := softswitch.MenuActive
	test.ExpectEquality(t, memory.Route(0x0400, sw), memory.BankNone)
	test.ExpectEquality(t, memory.Route(0x0400, sw|softswitch.AuxWrite), memory.BankAux)
	test.ExpectEquality(t, memory.Route(0x0400, sw|softswitch.Store80|softswitch.Page2), memory.BankAux)

	var b memory.Banks
	test.ExpectEquality(t, b.Write(0x0400, 0xff, sw), memory.BankNone)
	test.ExpectEquality(t, b.Main[0x0400], uint8(0x00))
}

// every write lands in exactly one bank unless it is suppressed
func TestExactlyOneBank(t *testing.T) {
	flags := []softswitch.Switches{softswitch.Store80, softswitch.Page2, softswitch.AuxWrite, softswitch.Hires}
	for combo := 0; combo < 1<<len(flags); combo++ {
		var sw softswitch.Switches
		for i, f := range flags {
			if combo&(1<<i) != 0 {
				sw |= f
			}
		}
		for _, a := range []uint16{0x0010, 0x0400, 0x07ff, 0x0800, 0x2000, 0x3fff, 0x4000} {
			var b memory.Banks
			bank := b.Write(a, 0x5a, sw)
			test.ExpectInequality(t, bank, memory.BankNone, sw)
			var n int
			if b.Main[a] == 0x5a {
				n++
			}
			if b.Aux[a] == 0x5a {
				n++
			}
			test.ExpectEquality(t, n, 1, sw, a)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	var b memory.Banks
	test.ExpectEquality(t, b.Write(0x6000, 0xff, 0), memory.BankNone)
	test.ExpectEquality(t, len(b.Slice(memory.BankMain, 0x5ff0, 40)), 16)
}

func TestAddresses(t *testing.T) {
	test.ExpectEquality(t, memory.TextRow(0, false), uint16(0x400))
	test.ExpectEquality(t, memory.TextRow(1, false), uint16(0x480))
	test.ExpectEquality(t, memory.TextRow(8, false), uint16(0x428))
	test.ExpectEquality(t, memory.TextRow(23, true), uint16(0xbd0))

	test.ExpectEquality(t, memory.HiresLine(0, false), uint16(0x2000))
	test.ExpectEquality(t, memory.HiresLine(1, false), uint16(0x2400))
	test.ExpectEquality(t, memory.HiresLine(8, false), uint16(0x2080))
	test.ExpectEquality(t, memory.HiresLine(64, false), uint16(0x2028))
	test.ExpectEquality(t, memory.HiresLine(191, true), uint16(0x5fd0))

	test.ExpectSuccess(t, memory.DisplayPage2(softswitch.Page2))
	test.ExpectFailure(t, memory.DisplayPage2(softswitch.Page2|softswitch.Store80))
}
