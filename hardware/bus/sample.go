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

package bus

import (
	"fmt"

	"github.com/a2dvi/a2dvi/curated"
)

// AccessKind is the direction of a bus cycle.
type AccessKind int

// List of valid AccessKind values.
const (
	Read AccessKind = iota
	Write
)

func (k AccessKind) String() string {
	if k == Write {
		return "write"
	}
	return "read"
}

// Sample is a single decoded bus transaction.
type Sample struct {
	Address uint16
	Data    uint8
	Kind    AccessKind

	// DevSel is true when the host has asserted device-select for the slot
	// the card is sitting in
	DevSel bool
}

func (s Sample) String() string {
	var d string
	if s.DevSel {
		d = " devsel"
	}
	return fmt.Sprintf("%-5s $%04x = $%02x%s", s.Kind, s.Address, s.Data, d)
}

// Layout describes where each field of a Sample is to be found in a raw bus
// word. Bit positions are supplied by the platform.
type Layout struct {
	DataShift    uint
	AddressShift uint
	RWBit        uint
	DevSelBit    uint

	// the R/W line is high for a read on the Apple II
	WriteLow bool

	// device-select is an active low signal on the Apple II
	DevSelLow bool
}

// DefaultLayout puts data in bits 0-7, R/W in bit 8, device-select in bit 9
// and the address in bits 10-25.
var DefaultLayout = Layout{
	DataShift:    0,
	RWBit:        8,
	DevSelBit:    9,
	AddressShift: 10,
	WriteLow:     true,
	DevSelLow:    true,
}

// Sentinal error returned by Layout.Validate().
const (
	BadLayout = "bus layout: %v"
)

// Validate checks that no two fields share a bit and that every field fits in
// a 32-bit word.
func (l Layout) Validate() error {
	if l.DataShift+8 > 32 {
		return curated.Errorf(BadLayout, "data field does not fit")
	}
	if l.AddressShift+16 > 32 {
		return curated.Errorf(BadLayout, "address field does not fit")
	}
	if l.RWBit >= 32 || l.DevSelBit >= 32 {
		return curated.Errorf(BadLayout, "control bit out of range")
	}

	var used uint32
	claim := func(mask uint32, name string) error {
		if used&mask != 0 {
			return curated.Errorf(BadLayout, fmt.Sprintf("%s field overlaps", name))
		}
		used |= mask
		return nil
	}

	if err := claim(uint32(0xff)<<l.DataShift, "data"); err != nil {
		return err
	}
	if err := claim(uint32(0xffff)<<l.AddressShift, "address"); err != nil {
		return err
	}
	if err := claim(uint32(1)<<l.RWBit, "R/W"); err != nil {
		return err
	}
	if err := claim(uint32(1)<<l.DevSelBit, "device-select"); err != nil {
		return err
	}

	return nil
}

// Decode unpacks a raw bus word. Any word is a legal bus state.
func (l Layout) Decode(word uint32) Sample {
	s := Sample{
		Address: uint16(word >> l.AddressShift),
		Data:    uint8(word >> l.DataShift),
	}

	rw := word&(1<<l.RWBit) != 0
	if rw == l.WriteLow {
		s.Kind = Read
	} else {
		s.Kind = Write
	}

	ds := word&(1<<l.DevSelBit) != 0
	s.DevSel = ds != l.DevSelLow

	return s
}

// Encode is the inverse of Decode. It is used to create trace files and
// synthetic bus traffic.
func (l Layout) Encode(s Sample) uint32 {
	word := uint32(s.Address)<<l.AddressShift | uint32(s.Data)<<l.DataShift

	if (s.Kind == Read) == l.WriteLow {
		word |= 1 << l.RWBit
	}
	if s.DevSel != l.DevSelLow {
		word |= 1 << l.DevSelBit
	}

	return word
}
