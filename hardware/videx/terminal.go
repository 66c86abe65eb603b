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

package videx

import (
	"github.com/a2dvi/a2dvi/hardware/bus"
)

// Addresses of the Videx card. The card is always in slot 3.
const (
	RegisterOrigin = uint16(0xc0b0)
	RegisterMemtop = uint16(0xc0bf)
	WindowOrigin   = uint16(0xcc00)
	WindowMemtop   = uint16(0xcdff)
	Slot           = 3
)

// VRAMSize is the amount of video RAM on the card.
const VRAMSize = 2048

// NumRegisters is the number of CRTC registers that are emulated.
const NumRegisters = 16

// Names of the CRTC registers used by the card.
const (
	RegHorizDisplayed = 1
	RegVertDisplayed  = 6
	RegMaxScanLine    = 9
	RegCursorStart    = 10
	RegCursorEnd      = 11
	RegStartHi        = 12
	RegStartLo        = 13
	RegCursorHi       = 14
	RegCursorLo       = 15
)

// BlinkMode is the cursor blink mode, from bits 5 and 6 of R10.
type BlinkMode int

// List of valid BlinkMode values.
const (
	BlinkSteady BlinkMode = iota
	BlinkHidden
	BlinkFast
	BlinkSlow
)

func (m BlinkMode) String() string {
	switch m {
	case BlinkSteady:
		return "steady"
	case BlinkHidden:
		return "hidden"
	case BlinkFast:
		return "blink 1/16"
	case BlinkSlow:
		return "blink 1/32"
	}
	return "unknown"
}

// the register values set by the Videx firmware on initialisation
var defaultRegisters = [NumRegisters]uint8{
	0x7b, 0x50, 0x62, 0x29, 0x1b, 0x08, 0x18, 0x19,
	0x00, 0x08, 0x60, 0x08, 0x00, 0x00, 0x00, 0x00,
}

// Terminal is the state of the Videx card.
type Terminal struct {
	VRAM [VRAMSize]uint8
	Regs [NumRegisters]uint8

	index uint8
	bank  uint8
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal() *Terminal {
	t := &Terminal{}
	t.Reset()
	return t
}

// Reset the CRTC registers to the values set by the Videx firmware. The
// contents of VRAM are not changed.
func (t *Terminal) Reset() {
	t.Regs = defaultRegisters
	t.index = 0
	t.bank = 0
}

// Register handles an access to the register window. Any access selects the
// VRAM bank. Writes to an even address select the CRTC register and writes
// to an odd address change the selected register.
func (t *Terminal) Register(address uint16, kind bus.AccessKind, data uint8) {
	t.bank = uint8(address>>2) & 0x03

	if kind != bus.Write {
		return
	}

	if address&0x01 == 0 {
		t.index = data & 0x1f
		return
	}

	if t.index < NumRegisters {
		t.Regs[t.index] = data
	}
}

// Index returns the currently selected CRTC register.
func (t *Terminal) Index() uint8 {
	return t.index
}

// Bank returns the currently selected VRAM bank.
func (t *Terminal) Bank() uint8 {
	return t.bank
}

// WriteVRAM writes through the VRAM window. The address must be in the
// window.
func (t *Terminal) WriteVRAM(address uint16, data uint8) {
	t.VRAM[t.vramAddress(address)] = data
}

func (t *Terminal) vramAddress(address uint16) int {
	return int(t.bank)*512 + int(address&0x1ff)
}

// Columns returns the number of displayed columns.
func (t *Terminal) Columns() int {
	return int(t.Regs[RegHorizDisplayed])
}

// Rows returns the number of displayed rows.
func (t *Terminal) Rows() int {
	return int(t.Regs[RegVertDisplayed] & 0x7f)
}

// LinesPerRow returns the number of scanlines in each character row.
func (t *Terminal) LinesPerRow() int {
	return int(t.Regs[RegMaxScanLine]&0x1f) + 1
}

// StartAddress returns the VRAM address of the first displayed character.
func (t *Terminal) StartAddress() uint16 {
	return (uint16(t.Regs[RegStartHi]&0x3f)<<8 | uint16(t.Regs[RegStartLo])) & (VRAMSize - 1)
}

// CursorAddress returns the VRAM address of the cursor.
func (t *Terminal) CursorAddress() uint16 {
	return (uint16(t.Regs[RegCursorHi]&0x3f)<<8 | uint16(t.Regs[RegCursorLo])) & (VRAMSize - 1)
}

// CursorBand returns the first and last scanline of the cursor.
func (t *Terminal) CursorBand() (int, int) {
	return int(t.Regs[RegCursorStart] & 0x1f), int(t.Regs[RegCursorEnd] & 0x1f)
}

// Blink returns the cursor blink mode.
func (t *Terminal) Blink() BlinkMode {
	return BlinkMode((t.Regs[RegCursorStart] >> 5) & 0x03)
}

// CursorVisible returns true if the cursor is visible in the frame. The blink
// rates are 1/16 and 1/32 of the field rate, so the fast cursor is on for
// eight frames and off for eight.
func (t *Terminal) CursorVisible(frame uint64) bool {
	switch t.Blink() {
	case BlinkSteady:
		return true
	case BlinkHidden:
		return false
	case BlinkFast:
		return (frame/8)&0x01 == 0
	case BlinkSlow:
		return (frame/16)&0x01 == 0
	}
	return false
}

// Char returns the character at the VRAM address, which wraps.
func (t *Terminal) Char(address uint16) uint8 {
	return t.VRAM[address&(VRAMSize-1)]
}

// InWindow returns true if the address is in the VRAM window.
func InWindow(address uint16) bool {
	return address >= WindowOrigin && address <= WindowMemtop
}

// InRegisters returns true if the address is in the register window.
func InRegisters(address uint16) bool {
	return address >= RegisterOrigin && address <= RegisterMemtop
}
