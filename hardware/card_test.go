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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/a2dvi/a2dvi/fonts"
	"github.com/a2dvi/a2dvi/hardware"
	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/hardware/device"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/preferences"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/state"
	"github.com/a2dvi/a2dvi/test"
)

// device registers are accessed through slot five
const deviceBase = 0xc0d0

func newCard(t *testing.T) *hardware.Card {
	t.Helper()
	c, err := hardware.NewCard(fonts.NewBuiltin(), bus.DefaultLayout)
	test.DemandSuccess(t, err)
	return c
}

func read(c *hardware.Card, address uint16) {
	c.StepSample(bus.Sample{Address: address, Kind: bus.Read})
}

func write(c *hardware.Card, address uint16, data uint8) {
	c.StepSample(bus.Sample{Address: address, Data: data, Kind: bus.Write})
}

func writeReg(c *hardware.Card, reg int, data uint8) {
	c.StepSample(bus.Sample{Address: deviceBase + uint16(reg), Data: data, Kind: bus.Write, DevSel: true})
}

func TestBadLayout(t *testing.T) {
	l := bus.DefaultLayout
	l.AddressShift = l.DataShift
	_, err := hardware.NewCard(fonts.NewBuiltin(), l)
	test.ExpectFailure(t, err)
}

func TestReset(t *testing.T) {
	c := newCard(t)
	st := c.State()

	read(c, 0xc050)
	test.ExpectFailure(t, st.Switches().Has(softswitch.Text))

	// an interleaved write breaks the sequence
	read(c, bus.ResetVectorLo)
	write(c, 0x0300, 0x00)
	read(c, bus.ResetVectorHi)
	read(c, 0xfa62)
	test.ExpectEquality(t, st.Counters.Resets.Load(), uint32(0))
	test.ExpectFailure(t, st.Switches().Has(softswitch.Text))

	read(c, bus.ResetVectorLo)
	read(c, bus.ResetVectorHi)
	read(c, 0xfa62)
	test.ExpectEquality(t, st.Counters.Resets.Load(), uint32(1))
	test.ExpectEquality(t, st.Switches(), softswitch.ResetState)
}

func TestMemoryShadow(t *testing.T) {
	c := newCard(t)
	st := c.State()

	write(c, 0x0400, 0xc1)
	test.ExpectEquality(t, st.Banks.Main[0x400], uint8(0xc1))

	// 80STORE and PAGE2 send text page writes to auxiliary memory
	write(c, 0xc001, 0)
	read(c, 0xc055)
	write(c, 0x0400, 0xc2)
	test.ExpectEquality(t, st.Banks.Main[0x400], uint8(0xc1))
	test.ExpectEquality(t, st.Banks.Aux[0x400], uint8(0xc2))

	// reads are not shadowed and writes above the shadow are ignored
	c.StepSample(bus.Sample{Address: 0x0401, Data: 0xff, Kind: bus.Read})
	test.ExpectEquality(t, st.Banks.Aux[0x401], uint8(0x00))
	write(c, 0x9000, 0xff)

	// the menu suppresses writes to main memory
	read(c, 0xc054)
	c.SetMenuActive(true)
	write(c, 0x0402, 0xaa)
	test.ExpectEquality(t, st.Banks.Main[0x402], uint8(0x00))
}

func TestDeviceRegisters(t *testing.T) {
	c := newCard(t)
	st := c.State()

	_, ok := c.Slot()
	test.ExpectFailure(t, ok)

	writeReg(c, device.RegColorMode, uint8(state.ColorModeAmber))
	test.ExpectEquality(t, st.ColorMode(), state.ColorModeAmber)

	slot, ok := c.Slot()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, slot, 5)

	// without device select the access is an ordinary IO access
	write(c, deviceBase+device.RegColorMode, uint8(state.ColorModeGreen))
	test.ExpectEquality(t, st.ColorMode(), state.ColorModeAmber)

	writeReg(c, device.RegMachine, uint8(machine.Fixed(machine.IIgs).Register()))
	test.ExpectEquality(t, st.Family(), machine.IIgs)
	test.ExpectSuccess(t, st.Capabilities().Has(softswitch.GSRegs))
	test.ExpectFailure(t, c.Selection().IsAuto())
}

func TestPersistReload(t *testing.T) {
	c := newCard(t)
	st := c.State()

	p, err := preferences.NewPreferences(c, filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	c.Registers.AttachStorage(p)

	writeReg(c, device.RegColorMode, uint8(state.ColorModeGreen))
	writeReg(c, device.RegPalette, uint8(state.PaletteImproved))
	writeReg(c, device.RegSetCapabilities, device.RegisterFromCapabilities(softswitch.ScanlineEmu))
	writeReg(c, device.RegCommand, device.CmdSave)
	test.ExpectEquality(t, c.Registers.Access(device.RegCommand, bus.Read, 0), uint8(device.ResultOK))

	writeReg(c, device.RegColorMode, uint8(state.ColorModeColor))
	writeReg(c, device.RegPalette, uint8(state.PaletteDefault))
	writeReg(c, device.RegClearCapabilities, device.RegisterFromCapabilities(softswitch.ScanlineEmu))
	test.ExpectEquality(t, st.ColorMode(), state.ColorModeColor)

	writeReg(c, device.RegCommand, device.CmdLoad)
	test.ExpectEquality(t, c.Registers.Access(device.RegCommand, bus.Read, 0), uint8(device.ResultOK))
	test.ExpectEquality(t, st.ColorMode(), state.ColorModeGreen)
	test.ExpectEquality(t, st.Palette(), state.PaletteImproved)
	test.ExpectSuccess(t, st.Capabilities().Has(softswitch.ScanlineEmu))

	// defaults
	writeReg(c, device.RegCommand, device.CmdDefaults)
	test.ExpectEquality(t, st.ColorMode(), state.ColorModeColor)
	test.ExpectFailure(t, st.Capabilities().Has(softswitch.ScanlineEmu))
}

func TestAutoDetect(t *testing.T) {
	c := newCard(t)
	st := c.State()
	test.ExpectEquality(t, st.Family(), machine.Unknown)

	c.StepSample(bus.Sample{Address: 0xfbb3, Data: 0x06, Kind: bus.Read})
	test.ExpectEquality(t, st.Family(), machine.Unknown)
	c.StepSample(bus.Sample{Address: 0xfbc0, Data: 0xe0, Kind: bus.Read})
	test.ExpectEquality(t, st.Family(), machine.IIeEnhanced)

	// a reset keeps the family but starts detection again
	read(c, bus.ResetVectorLo)
	read(c, bus.ResetVectorHi)
	read(c, 0xfa62)
	test.ExpectEquality(t, st.Family(), machine.IIeEnhanced)

	c.StepSample(bus.Sample{Address: 0xfbb3, Data: 0xea, Kind: bus.Read})
	test.ExpectEquality(t, st.Family(), machine.II)
}

// writes the start-up banner to the first row of the text page in normal
// characters
func writeBanner(c *hardware.Card, address uint16, banner string) {
	for i := 0; i < len(banner); i++ {
		write(c, address+uint16(i), banner[i]|0x80)
	}
}

func TestBootBannerII(t *testing.T) {
	c := newCard(t)
	st := c.State()

	// the zero page and stack activity of the boot does not identify the
	// machine
	for a := uint16(0); a < 0x200; a++ {
		write(c, a, uint8(a))
	}
	test.ExpectEquality(t, st.Family(), machine.Unknown)

	// the screen is cleared before the banner is written
	for a := uint16(0x400); a < 0x428; a++ {
		write(c, a, 0xa0)
	}
	test.ExpectEquality(t, st.Family(), machine.Unknown)

	writeBanner(c, 0x040f, "APPLE ][")
	test.ExpectEquality(t, st.Family(), machine.II)
	test.ExpectFailure(t, st.Capabilities().Has(softswitch.ExtendedRegs))

	// the unlock sequence of the II is in the F8 ROM
	read(c, 0xfaca)
	read(c, 0xfaca)
	read(c, 0xfafe)
	read(c, 0xf811)
	read(c, 0xf800)
	test.ExpectEquality(t, st.Charset.LocalIndex(), 1)
	test.ExpectEquality(t, st.Counters.Unlocks.Load(), uint32(1))

	// the II has no SLOTC3ROM switch. slot three always claims the window
	st.SetCapabilities(st.Capabilities() | softswitch.VidexEnabled)
	read(c, 0xc300)
	write(c, 0xcc00, 0x41)
	test.ExpectEquality(t, st.Videx.VRAM[0], uint8(0x41))
}

func TestBootBannerIIe(t *testing.T) {
	c := newCard(t)
	st := c.State()

	writeBanner(c, 0x0410, "Apple ][")
	test.ExpectEquality(t, st.Family(), machine.IIe)

	// a latched family is not changed by the text that follows
	writeBanner(c, 0x0410, "APPLE ][")
	test.ExpectEquality(t, st.Family(), machine.IIe)

	c = newCard(t)
	st = c.State()
	writeBanner(c, 0x040f, "Apple //e")
	test.ExpectEquality(t, st.Family(), machine.IIeEnhanced)
}

func TestReloadKeepsDetectedFamily(t *testing.T) {
	c := newCard(t)
	st := c.State()

	p, err := preferences.NewPreferences(c, filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	c.Registers.AttachStorage(p)

	writeBanner(c, 0x040f, "APPLE ][")
	test.DemandEquality(t, st.Family(), machine.II)
	caps := st.Capabilities()

	writeReg(c, device.RegCommand, device.CmdSave)
	writeReg(c, device.RegCommand, device.CmdLoad)
	test.ExpectEquality(t, c.Registers.Access(device.RegCommand, bus.Read, 0), uint8(device.ResultOK))
	test.ExpectEquality(t, st.Family(), machine.II)
	test.ExpectEquality(t, st.Capabilities(), caps)
	test.ExpectSuccess(t, c.Selection().IsAuto())

	// changing the selection does start a new detection
	writeReg(c, device.RegMachine, machine.Fixed(machine.IIgs).Register())
	test.ExpectEquality(t, st.Family(), machine.IIgs)
	writeReg(c, device.RegMachine, machine.Auto.Register())
	test.ExpectEquality(t, st.Family(), machine.Unknown)
}

func TestUnlockSelectsFont(t *testing.T) {
	c := newCard(t)
	st := c.State()
	test.ExpectEquality(t, st.Charset.LocalIndex(), 0)

	read(c, 0xcaca)
	read(c, 0xcaca)
	read(c, 0xcafe)
	read(c, 0xcfd1)
	read(c, 0xcfff)

	test.ExpectEquality(t, st.Charset.LocalIndex(), 1)
	test.ExpectEquality(t, st.Counters.Unlocks.Load(), uint32(1))
}

func TestVidexWindow(t *testing.T) {
	c := newCard(t)
	st := c.State()
	st.SetCapabilities(st.Capabilities() | softswitch.VidexEnabled)

	// the window is not claimed
	write(c, 0xcc00, 0x41)
	test.ExpectEquality(t, st.Videx.VRAM[0], uint8(0x00))

	// claim the window with SLOTC3ROM on
	write(c, 0xc00b, 0)
	read(c, 0xc300)
	write(c, 0xcc00, 0x41)
	test.ExpectEquality(t, st.Videx.VRAM[0], uint8(0x41))

	// bank one
	read(c, 0xc0b4)
	write(c, 0xcc00, 0x42)
	test.ExpectEquality(t, st.Videx.VRAM[512], uint8(0x42))

	// release
	read(c, 0xcfff)
	write(c, 0xcc01, 0x43)
	test.ExpectEquality(t, st.Videx.VRAM[513], uint8(0x00))
}

func TestStepDecodes(t *testing.T) {
	c := newCard(t)
	st := c.State()

	c.Step(bus.DefaultLayout.Encode(bus.Sample{Address: 0xc050, Kind: bus.Read}))
	test.ExpectFailure(t, st.Switches().Has(softswitch.Text))
	test.ExpectEquality(t, st.Counters.Samples.Load(), uint64(1))
}
