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

// Area represents the different areas of the host address space as seen by
// the card.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case IO:
		return "I/O"
	case SlotROM:
		return "slot ROM"
	case ExpansionROM:
		return "expansion ROM"
	case ROM:
		return "ROM"
	}

	return "undefined"
}

// List of valid Area values.
const (
	Undefined Area = iota
	RAM
	IO
	SlotROM
	ExpansionROM
	ROM
)

// The origin and memory top for each area.
const (
	OriginRAM          = uint16(0x0000)
	MemtopRAM          = uint16(0xbfff)
	OriginIO           = uint16(0xc000)
	MemtopIO           = uint16(0xc0ff)
	OriginSlotROM      = uint16(0xc100)
	MemtopSlotROM      = uint16(0xc7ff)
	OriginExpansionROM = uint16(0xc800)
	MemtopExpansionROM = uint16(0xcfff)
	OriginROM          = uint16(0xd000)
	MemtopROM          = uint16(0xffff)
)

// Addresses with a fixed meaning.
const (
	SoftSwitchOrigin = uint16(0xc000)
	SoftSwitchMemtop = uint16(0xc07f)

	// device registers for slot n are at DeviceOrigin + n<<4
	DeviceOrigin = uint16(0xc080)

	// writing or reading $cfff releases the expansion ROM space
	ExpansionRelease = uint16(0xcfff)

	ResetVectorLo = uint16(0xfffc)
	ResetVectorHi = uint16(0xfffd)
)

// MapAddress returns the area the address falls in.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopRAM:
		return RAM
	case address <= MemtopIO:
		return IO
	case address <= MemtopSlotROM:
		return SlotROM
	case address <= MemtopExpansionROM:
		return ExpansionROM
	}
	return ROM
}

// IsDeviceRegister returns true if the address is in the device register
// window of any slot.
func IsDeviceRegister(address uint16) bool {
	return address&0xff80 == DeviceOrigin
}

// DeviceSlot returns the slot number and register number for an address in
// the device register window. Only meaningful if IsDeviceRegister() is true.
func DeviceSlot(address uint16) (slot int, register int) {
	return int(address>>4) & 0x07, int(address & 0x0f)
}
