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

package bus_test

import (
	"bytes"
	"testing"

	"github.com/a2dvi/a2dvi/curated"
	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/test"
)

func TestDefaultLayout(t *testing.T) {
	l := bus.DefaultLayout
	test.DemandSuccess(t, l.Validate())

	// R/W high is a read. device-select high is not asserted
	s := l.Decode(0xc054<<10 | 1<<9 | 1<<8 | 0x12)
	test.ExpectEquality(t, s.Address, uint16(0xc054))
	test.ExpectEquality(t, s.Data, uint8(0x12))
	test.ExpectEquality(t, s.Kind, bus.Read)
	test.ExpectFailure(t, s.DevSel)

	// R/W low is a write. device-select low is asserted
	s = l.Decode(0xc08f<<10 | 0xa5)
	test.ExpectEquality(t, s.Address, uint16(0xc08f))
	test.ExpectEquality(t, s.Data, uint8(0xa5))
	test.ExpectEquality(t, s.Kind, bus.Write)
	test.ExpectSuccess(t, s.DevSel)
}

func TestEncodeDecode(t *testing.T) {
	l := bus.DefaultLayout
	for _, s := range []bus.Sample{
		{Address: 0x0400, Data: 0xc1, Kind: bus.Write},
		{Address: 0xfffc, Data: 0x62, Kind: bus.Read},
		{Address: 0xc0b3, Data: 0x00, Kind: bus.Read, DevSel: true},
	} {
		test.ExpectEquality(t, l.Decode(l.Encode(s)), s)
	}
}

func TestBadLayout(t *testing.T) {
	l := bus.DefaultLayout
	l.RWBit = 3
	err := l.Validate()
	test.ExpectSuccess(t, curated.Is(err, bus.BadLayout))

	l = bus.DefaultLayout
	l.AddressShift = 20
	test.ExpectFailure(t, l.Validate())
}

func TestAreas(t *testing.T) {
	test.ExpectEquality(t, bus.MapAddress(0x0400), bus.RAM)
	test.ExpectEquality(t, bus.MapAddress(0xc054), bus.IO)
	test.ExpectEquality(t, bus.MapAddress(0xc300), bus.SlotROM)
	test.ExpectEquality(t, bus.MapAddress(0xcfff), bus.ExpansionROM)
	test.ExpectEquality(t, bus.MapAddress(0xfa62), bus.ROM)

	test.ExpectSuccess(t, bus.IsDeviceRegister(0xc0b4))
	test.ExpectFailure(t, bus.IsDeviceRegister(0xc054))
	test.ExpectFailure(t, bus.IsDeviceRegister(0xc1b4))

	slot, reg := bus.DeviceSlot(0xc0b4)
	test.ExpectEquality(t, slot, 3)
	test.ExpectEquality(t, reg, 4)
}

func TestFIFOOverflow(t *testing.T) {
	f := bus.NewFIFO(2)
	test.ExpectSuccess(t, f.Push(1))
	test.ExpectSuccess(t, f.Push(2))
	test.ExpectFailure(t, f.Push(3))
	test.ExpectFailure(t, f.Push(4))
	test.ExpectEquality(t, f.Overflows(), uint32(2))

	w, ok := f.Next()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, uint32(1))

	// space for one more
	test.ExpectSuccess(t, f.Push(5))
	f.Close()

	var got []uint32
	for {
		w, ok := f.Next()
		if !ok {
			break
		}
		got = append(got, w)
	}
	test.ExpectEquality(t, len(got), 2)
	test.ExpectEquality(t, got[0], uint32(2))
	test.ExpectEquality(t, got[1], uint32(5))
}

func TestTrace(t *testing.T) {
	var b bytes.Buffer

	w := bus.NewTraceWriter(&b)
	for i := uint32(0); i < 100; i++ {
		test.DemandSuccess(t, w.Write(i*0x01010101))
	}
	test.DemandSuccess(t, w.Flush())
	test.ExpectEquality(t, b.Len(), 400)

	tr := bus.NewTrace(&b)
	var n uint32
	for {
		v, ok := tr.Next()
		if !ok {
			break
		}
		test.ExpectEquality(t, v, n*0x01010101)
		n++
	}
	test.ExpectEquality(t, n, uint32(100))
	test.ExpectSuccess(t, tr.Err())
}

func TestTruncatedTrace(t *testing.T) {
	tr := bus.NewTrace(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6}))
	_, ok := tr.Next()
	test.ExpectSuccess(t, ok)
	_, ok = tr.Next()
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, curated.Is(tr.Err(), bus.TraceError))
}
