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

package device

import (
	"fmt"

	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/hardware/charset"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/state"
	"github.com/a2dvi/a2dvi/logger"
)

// ID is the value read from register zero.
const ID = 'A' | 0x80

// Register numbers.
const (
	RegID = iota
	RegSetCapabilities
	RegClearCapabilities
	RegColorMode
	RegLocalCharset
	RegAlternateCharset
	RegMachine
	RegPalette
	RegCharsetOffsetLo
	RegCharsetOffsetHi
	RegCharsetData
	RegCharsetTarget
	_
	RegMenuKey
	RegLock
	RegCommand
)

// Command values written to RegCommand.
const (
	CmdDefaults     = 0xa0
	CmdLoad         = 0xa1
	CmdSave         = 0xa2
	CmdResetCounter = 0xa3
)

// Result values read from RegCommand.
const (
	ResultOK     = 0x00
	ResultFailed = 0xff
)

// UnlockValue written to RegLock allows writes to the other registers.
const UnlockValue = 0xa5

// Storage is the persisted configuration of the card.
type Storage interface {
	LoadDefaults() error
	Load() error
	Save() error
}

// Menu receives keys forwarded by the host while the menu is active.
type Menu interface {
	ForwardKey(key uint8)
}

// Host is the part of the card that is not in the shared state.
type Host interface {
	Selection() machine.Selection
	SetSelection(machine.Selection)
}

// the order of capabilities in the capability registers
var capabilityBits = []softswitch.Capability{
	softswitch.ScanlineEmu,
	softswitch.Video7Enabled,
	softswitch.DebugOverlay,
	softswitch.ForceMono,
	softswitch.VidexEnabled,
}

// CapabilitiesFromRegister converts the value of a capability register to
// capability flags.
func CapabilitiesFromRegister(v uint8) softswitch.Capability {
	var c softswitch.Capability
	for i, b := range capabilityBits {
		if v&(1<<i) != 0 {
			c |= b
		}
	}
	return c
}

// RegisterFromCapabilities is the inverse of CapabilitiesFromRegister().
// Capabilities with no register bit are not included.
func RegisterFromCapabilities(c softswitch.Capability) uint8 {
	var v uint8
	for i, b := range capabilityBits {
		if c.Has(b) {
			v |= 1 << i
		}
	}
	return v
}

// Registers is the device register interface. It is only used by the bus
// goroutine.
type Registers struct {
	st      *state.State
	fonts   charset.Table
	host    Host
	storage Storage
	menu    Menu

	locked bool
	offset int
	target charset.Target
	result uint8

	// rejected values are only logged once
	rejected map[[2]uint8]bool
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. The storage and menu arguments can be nil.
func NewRegisters(st *state.State, fonts charset.Table, host Host, storage Storage, menu Menu) *Registers {
	return &Registers{
		st:       st,
		fonts:    fonts,
		host:     host,
		storage:  storage,
		menu:     menu,
		rejected: make(map[[2]uint8]bool),
	}
}

// AttachStorage sets the storage used by the load and save commands. A nil
// value means the commands do nothing.
func (r *Registers) AttachStorage(storage Storage) {
	r.storage = storage
}

// AttachMenu sets the recipient of forwarded keys.
func (r *Registers) AttachMenu(menu Menu) {
	r.menu = menu
}

// Reset clears the lock and the character generator streaming state.
func (r *Registers) Reset() {
	r.locked = false
	r.offset = 0
	r.target = charset.Local
}

// Locked returns true if register writes are locked.
func (r *Registers) Locked() bool {
	return r.locked
}

// Access handles a bus access to a device register. The return value is the
// value of the register for a read.
func (r *Registers) Access(reg int, kind bus.AccessKind, data uint8) uint8 {
	reg &= 0x0f
	if kind == bus.Read {
		return r.read(reg)
	}

	if reg == RegLock {
		r.locked = data != UnlockValue
		return 0
	}
	if r.locked {
		return 0
	}

	r.write(reg, data)
	return 0
}

func (r *Registers) read(reg int) uint8 {
	switch reg {
	case RegID:
		return ID
	case RegSetCapabilities:
		return RegisterFromCapabilities(r.st.Capabilities())
	case RegColorMode:
		return uint8(r.st.ColorMode())
	case RegLocalCharset:
		return uint8(r.st.Charset.LocalIndex())
	case RegAlternateCharset:
		return uint8(r.st.Charset.AlternateIndex())
	case RegMachine:
		return uint8(r.st.Family())
	case RegPalette:
		return uint8(r.st.Palette())
	case RegLock:
		if r.locked {
			return 0x01
		}
		return 0x00
	case RegCommand:
		return r.result
	}
	return 0
}

func (r *Registers) write(reg int, data uint8) {
	switch reg {
	case RegSetCapabilities:
		r.st.SetCapabilities(r.st.Capabilities() | CapabilitiesFromRegister(data))
	case RegClearCapabilities:
		r.st.SetCapabilities(r.st.Capabilities() &^ CapabilitiesFromRegister(data))
	case RegColorMode:
		r.st.SetColorMode(state.ColorMode(data & 0x03))
	case RegLocalCharset:
		if !r.st.Charset.SelectLocal(r.fonts, int(data)) {
			r.reject(reg, data)
		}
	case RegAlternateCharset:
		if !r.st.Charset.SelectAlternate(r.fonts, int(data)) {
			r.reject(reg, data)
		}
	case RegMachine:
		sel, ok := machine.SelectionFromRegister(data)
		if !ok {
			r.reject(reg, data)
			return
		}
		r.host.SetSelection(sel)
	case RegPalette:
		if !r.st.SetPalette(state.Palette(data)) {
			r.reject(reg, data)
		}
	case RegCharsetOffsetLo:
		r.offset = r.offset&0xff00 | int(data)
	case RegCharsetOffsetHi:
		r.offset = r.offset&0x00ff | int(data)<<8
	case RegCharsetData:
		r.st.Charset.Poke(r.target, r.offset, data)
		r.offset = (r.offset + 1) % charset.Size
	case RegCharsetTarget:
		switch data {
		case 0:
			r.target = charset.Local
		case 1:
			r.target = charset.Alternate
		default:
			r.reject(reg, data)
		}
	case RegMenuKey:
		if r.menu != nil && r.st.Switches().Has(softswitch.MenuActive) {
			r.menu.ForwardKey(data)
		}
	case RegCommand:
		r.command(data)
	default:
		r.reject(reg, data)
	}
}

func (r *Registers) command(cmd uint8) {
	var err error

	switch cmd {
	case CmdDefaults:
		if r.storage != nil {
			err = r.storage.LoadDefaults()
		}
	case CmdLoad:
		if r.storage != nil {
			err = r.storage.Load()
		}
	case CmdSave:
		if r.storage != nil {
			err = r.storage.Save()
		}
	case CmdResetCounter:
		r.st.Counters.Reset()
	default:
		r.reject(RegCommand, cmd)
		return
	}

	if err != nil {
		logger.Log(logger.Allow, "device", err)
		r.result = ResultFailed
		return
	}
	r.result = ResultOK
}

func (r *Registers) reject(reg int, data uint8) {
	k := [2]uint8{uint8(reg), data}
	if r.rejected[k] {
		return
	}
	r.rejected[k] = true
	logger.Log(logger.Allow, "device", fmt.Sprintf("ignored value $%02x for register $%x", data, reg))
}
