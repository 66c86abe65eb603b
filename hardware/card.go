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

package hardware

import (
	"fmt"

	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/hardware/charset"
	"github.com/a2dvi/a2dvi/hardware/detect"
	"github.com/a2dvi/a2dvi/hardware/device"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/state"
	"github.com/a2dvi/a2dvi/hardware/videx"
	"github.com/a2dvi/a2dvi/logger"
)

// a handler deals with a sample in one sixteenth of the address space
type handler func(c *Card, s bus.Sample)

// Card is the root of the emulation. It observes the bus and maintains the
// shared state that is read by the renderer.
type Card struct {
	st     *state.State
	fonts  charset.Table
	layout bus.Layout

	// the device registers are exported so that storage and menu can be
	// attached
	Registers *device.Registers

	reset   *detect.Reset
	unlock  *detect.Unlock
	scanner *machine.Scanner

	selection machine.Selection

	// the slot the device registers were last accessed through. -1 if the
	// registers have never been accessed
	slot int

	// slot three owns the expansion ROM space
	c8Slot3 bool

	handlers [16]handler
}

// NewCard is the preferred method of initialisation for the Card type. The
// layout describes how bus words are decoded.
func NewCard(fonts charset.Table, layout bus.Layout) (*Card, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	c := &Card{
		st:        state.NewState(fonts),
		fonts:     fonts,
		layout:    layout,
		scanner:   machine.NewScanner(),
		selection: machine.Auto,
		slot:      -1,
	}

	f := c.st.Family()
	c.reset = detect.NewReset(f.ResetAddress())
	c.unlock = detect.NewUnlock(detect.MarkersFor(f))
	c.Registers = device.NewRegisters(c.st, fonts, c, nil, nil)

	for i := 0x0; i <= 0x5; i++ {
		c.handlers[i] = (*Card).ram
	}
	for i := 0x6; i <= 0xb; i++ {
		c.handlers[i] = (*Card).ignore
	}
	c.handlers[0xc] = (*Card).io
	for i := 0xd; i <= 0xf; i++ {
		c.handlers[i] = (*Card).rom
	}

	return c, nil
}

func (c *Card) String() string {
	return fmt.Sprintf("%s [%s] %s", c.st.Family(), c.selection, c.st.Switches())
}

// State returns the shared state of the card.
func (c *Card) State() *state.State {
	return c.st
}

// Fonts returns the font selection table.
func (c *Card) Fonts() charset.Table {
	return c.fonts
}

// Layout returns the bus layout used to decode words.
func (c *Card) Layout() bus.Layout {
	return c.layout
}

// Slot returns the slot the device registers were last accessed through. The
// second value is false if the registers have not been accessed.
func (c *Card) Slot() (int, bool) {
	return c.slot, c.slot >= 0
}

// Selection returns the machine selection.
func (c *Card) Selection() machine.Selection {
	return c.selection
}

// SetSelection changes the machine selection. A fixed selection takes effect
// immediately. The automatic selection starts a new detection. Selecting the
// current selection again changes nothing.
func (c *Card) SetSelection(sel machine.Selection) {
	if sel == c.selection {
		return
	}
	c.selection = sel
	c.scanner.Reset()
	if f, ok := sel.Family(); ok {
		c.setFamily(f)
	} else {
		c.setFamily(machine.Unknown)
	}
}

func (c *Card) setFamily(f machine.Family) {
	if f == c.st.Family() {
		return
	}
	c.st.SetFamily(f)
	c.unlock.SetMarkers(detect.MarkersFor(f))
	c.reset.SetTarget(f.ResetAddress())
	logger.Logf(logger.Allow, "card", "machine: %s", f)
}

// applyReset returns the card to the state it has after the host has been
// reset.
func (c *Card) applyReset() {
	c.st.SetSwitches(softswitch.ResetState)
	c.unlock.Relock()
	c.Registers.Reset()
	c.c8Slot3 = false

	c.st.Counters.Resets.Add(1)
	c.st.Counters.OverflowAtReset.Store(c.st.Counters.Overflows.Load())

	// the detected family is kept until a new signature is seen. a reset
	// does not redraw the start-up banner
	if c.selection.IsAuto() {
		c.scanner.Reset()
	}

	logger.Log(logger.Allow, "card", "host reset")
}

// zero page and stack writes
func (c *Card) ram(s bus.Sample) {
	if s.Kind != bus.Write {
		return
	}

	switch {
	case s.Address < 0x100:
		c.st.Counters.LastZeroPage.Store(uint32(s.Address))
	case s.Address < 0x200:
		c.st.Counters.LastStack.Store(uint32(s.Address))
	}

	// the start-up banner is written to the text page during the boot
	if s.Address < 0x800 {
		c.detect(s)
	}

	c.st.Banks.Write(s.Address, s.Data, c.st.Switches())
}

func (c *Card) ignore(_ bus.Sample) {
}

// the IO and slot space
func (c *Card) io(s bus.Sample) {
	a := s.Address

	switch {
	case a <= bus.SoftSwitchMemtop:
		c.softswitch(s)
		return

	case a <= bus.MemtopIO:
		if c.st.Capabilities().Has(softswitch.VidexEnabled) && videx.InRegisters(a) {
			c.st.Videx.Register(a, s.Kind, s.Data)
		}
		return
	}

	if s.Kind == bus.Read {
		c.readUnlock(a)
	}

	switch {
	case a>>8 == 0xc3:
		sw := c.st.Switches()
		if !sw.Has(softswitch.IntCXROM) && (sw.Has(softswitch.SlotC3ROM) || c.st.Family().IIFamily()) {
			c.c8Slot3 = true
		}

	case a == bus.ExpansionRelease:
		c.c8Slot3 = false

	case videx.InWindow(a):
		if s.Kind == bus.Write && c.c8Slot3 && c.st.Capabilities().Has(softswitch.VidexEnabled) {
			c.st.Videx.WriteVRAM(a, s.Data)
		}
	}
}

func (c *Card) softswitch(s bus.Sample) {
	sw, effect := softswitch.Handle(c.st.Switches(), c.st.Capabilities(), s.Address, s.Kind, s.Data)
	if effect == softswitch.VBlankAccess {
		c.st.Counters.VBlankReads.Add(1)
		return
	}
	c.st.SetSwitches(sw)
}

// the monitor and language card ROM
func (c *Card) rom(s bus.Sample) {
	if s.Kind != bus.Read {
		return
	}

	c.st.Counters.LastPC.Store(uint32(s.Address))
	c.readUnlock(s.Address)
	c.detect(s)
}

func (c *Card) readUnlock(address uint16) {
	font, ok := c.unlock.Read(address)
	if !ok {
		return
	}

	c.st.Counters.Unlocks.Add(1)
	if c.st.Charset.SelectLocal(c.fonts, font) {
		logger.Logf(logger.Allow, "card", "font %d selected", font)
	}
}

func (c *Card) detect(s bus.Sample) {
	if !c.selection.IsAuto() || c.scanner.Latched() != machine.Unknown {
		return
	}
	if !c.scanner.Interested(s.Address) {
		return
	}
	if f, ok := c.scanner.Observe(s.Address, s.Data); ok {
		c.setFamily(f)
	}
}

// SetMenuActive changes the menu flag. Writes to main memory are not shadowed
// while the menu is active.
func (c *Card) SetMenuActive(active bool) {
	c.st.SetSwitches(c.st.Switches().Assign(softswitch.MenuActive, active))
}
