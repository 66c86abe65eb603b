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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/a2dvi/a2dvi/hardware/charset"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/preferences"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/state"
	"github.com/a2dvi/a2dvi/test"
)

type fonts struct{}

func (fonts) Fonts() int { return 4 }

func (fonts) Font(index int) ([]uint8, bool) {
	if index < 0 || index >= 4 {
		return nil, false
	}
	return make([]uint8, charset.Size), true
}

func (fonts) VidexFont(bool) []uint8 { return make([]uint8, charset.VidexSize) }

type card struct {
	st  *state.State
	sel machine.Selection
}

func (c *card) State() *state.State              { return c.st }
func (c *card) Fonts() charset.Table             { return fonts{} }
func (c *card) Selection() machine.Selection     { return c.sel }
func (c *card) SetSelection(s machine.Selection) { c.sel = s }

func newCard() *card {
	return &card{st: state.NewState(fonts{}), sel: machine.Auto}
}

func TestRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	c := newCard()

	p, err := preferences.NewPreferences(c, fn)
	test.DemandSuccess(t, err)

	c.st.SetColorMode(state.ColorModeAmber)
	c.st.SetPalette(state.PaletteOriginal)
	c.st.SetCapabilities(c.st.Capabilities() | softswitch.ScanlineEmu | softswitch.ForceMono)
	c.st.Charset.SelectLocal(fonts{}, 3)
	c.sel = machine.Fixed(machine.IIeEnhanced)
	test.DemandSuccess(t, p.Save())

	// change everything and then reload
	c.st.SetColorMode(state.ColorModeWhite)
	c.st.SetPalette(state.PaletteImproved)
	c.st.SetCapabilities(softswitch.VidexEnabled)
	c.st.Charset.SelectLocal(fonts{}, 1)
	c.sel = machine.Auto
	test.DemandSuccess(t, p.Load())

	test.ExpectEquality(t, c.st.ColorMode(), state.ColorModeAmber)
	test.ExpectEquality(t, c.st.Palette(), state.PaletteOriginal)
	test.ExpectSuccess(t, c.st.Capabilities().Has(softswitch.ScanlineEmu|softswitch.ForceMono))
	test.ExpectFailure(t, c.st.Capabilities().Has(softswitch.Video7Enabled))
	test.ExpectFailure(t, c.st.Capabilities().Has(softswitch.VidexEnabled))
	test.ExpectEquality(t, c.st.Charset.LocalIndex(), 3)
	test.ExpectEquality(t, c.sel, machine.Fixed(machine.IIeEnhanced))
}

func TestDefaults(t *testing.T) {
	c := newCard()
	p, err := preferences.NewPreferences(c, filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	c.st.SetColorMode(state.ColorModeGreen)
	c.sel = machine.Fixed(machine.II)
	test.DemandSuccess(t, p.LoadDefaults())

	test.ExpectEquality(t, c.st.ColorMode(), state.ColorModeColor)
	test.ExpectSuccess(t, c.sel.IsAuto())
	test.ExpectSuccess(t, c.st.Capabilities().Has(softswitch.Video7Enabled|softswitch.VidexEnabled))
}

func TestMissingFile(t *testing.T) {
	c := newCard()
	p, err := preferences.NewPreferences(c, filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	// a missing file leaves the defaults in place
	test.ExpectSuccess(t, p.Load())
	test.ExpectEquality(t, p.Machine.String(), "auto")
}

func TestBadMachine(t *testing.T) {
	c := newCard()
	p, err := preferences.NewPreferences(c, filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.Machine.Set("TRS-80"))
	err = p.Apply()
	test.ExpectFailure(t, err)
}
