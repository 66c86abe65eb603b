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

package detect_test

import (
	"testing"

	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/hardware/detect"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/test"
)

func addr(m detect.Markers, lo uint8) uint16 {
	return uint16(m.Marker)<<8 | uint16(lo)
}

func TestUnlockSequence(t *testing.T) {
	for _, f := range []machine.Family{machine.II, machine.IIe} {
		m := detect.MarkersFor(f)
		u := detect.NewUnlock(m)

		u.Read(addr(m, m.A))
		test.ExpectEquality(t, u.State(), detect.Step1, f)
		u.Read(addr(m, m.A))
		test.ExpectEquality(t, u.State(), detect.Step2, f)
		u.Read(addr(m, m.B))
		test.ExpectEquality(t, u.State(), detect.Unlocked, f)
	}
}

func TestUnlockWrongFinal(t *testing.T) {
	m := detect.MarkersFor(machine.IIeEnhanced)
	u := detect.NewUnlock(m)
	u.Read(addr(m, m.A))
	u.Read(addr(m, m.A))
	u.Read(addr(m, 0x12))
	test.ExpectEquality(t, u.State(), detect.Locked)
}

func TestUnlockBWithoutProgress(t *testing.T) {
	m := detect.MarkersFor(machine.IIe)
	u := detect.NewUnlock(m)
	u.Read(addr(m, m.B))
	test.ExpectEquality(t, u.State(), detect.Locked)

	// B after a single A is also a mismatch
	u.Read(addr(m, m.A))
	u.Read(addr(m, m.B))
	test.ExpectEquality(t, u.State(), detect.Locked)
}

func TestUnlockInterrupted(t *testing.T) {
	m := detect.MarkersFor(machine.IIe)
	u := detect.NewUnlock(m)
	u.Read(addr(m, m.A))
	u.Read(0xd000)
	test.ExpectEquality(t, u.State(), detect.Locked)
}

func TestFontCommit(t *testing.T) {
	m := detect.MarkersFor(machine.IIe)
	u := detect.NewUnlock(m)
	u.Read(addr(m, m.A))
	u.Read(addr(m, m.A))
	u.Read(addr(m, m.B))

	// commit without a font selection does nothing
	_, ok := u.Read(m.Commit)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, u.State(), detect.Unlocked)

	_, ok = u.Read(0xcfd5)
	test.ExpectFailure(t, ok)

	// the last font in the window is the one that is committed
	_, ok = u.Read(0xcfd7)
	test.ExpectFailure(t, ok)

	f, ok := u.Read(m.Commit)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, 7)
	test.ExpectEquality(t, u.State(), detect.Locked)
}

func TestFontCommitIIFamily(t *testing.T) {
	m := detect.MarkersFor(machine.Pravetz)
	test.ExpectEquality(t, m.Commit, uint16(0xf800))

	u := detect.NewUnlock(m)
	u.Read(0xfaca)
	u.Read(0xfaca)
	u.Read(0xfafe)
	u.Read(0xf81c)
	f, ok := u.Read(0xf800)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, 12)
}

func TestResetSequence(t *testing.T) {
	r := detect.NewReset(machine.IIe.ResetAddress())
	test.ExpectFailure(t, r.Observe(bus.Read, 0xfffc))
	test.ExpectFailure(t, r.Observe(bus.Read, 0xfffd))
	test.ExpectSuccess(t, r.Observe(bus.Read, 0xfa62))
	test.ExpectEquality(t, r.Progress(), 0)
}

func TestResetInterleavedWrite(t *testing.T) {
	seq := []uint16{0xfffc, 0xfffd, 0xfa62}

	// a write inserted at each position breaks the sequence
	for i := 1; i < len(seq); i++ {
		r := detect.NewReset(0xfa62)
		var done bool
		for j, a := range seq {
			if j == i {
				r.Observe(bus.Write, 0x0100)
			}
			done = r.Observe(bus.Read, a)
		}
		test.ExpectFailure(t, done, i)
	}
}

func TestResetRestart(t *testing.T) {
	r := detect.NewReset(0xfa62)
	r.Observe(bus.Read, 0xfffc)
	r.Observe(bus.Read, 0xfffc)
	test.ExpectEquality(t, r.Progress(), 1)
	r.Observe(bus.Read, 0xfffd)
	test.ExpectEquality(t, r.Progress(), 2)

	// the wrong address after the vector
	test.ExpectFailure(t, r.Observe(bus.Read, 0xfa63))
	test.ExpectEquality(t, r.Progress(), 0)
}
