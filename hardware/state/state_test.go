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

package state_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"

	"github.com/a2dvi/a2dvi/hardware/charset"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/state"
	"github.com/a2dvi/a2dvi/test"
)

type blank struct{}

func (blank) Fonts() int { return 1 }

func (blank) Font(index int) ([]uint8, bool) {
	if index != 0 {
		return nil, false
	}
	return make([]uint8, charset.Size), true
}

func (blank) VidexFont(bool) []uint8 { return make([]uint8, charset.VidexSize) }

func TestInitialState(t *testing.T) {
	st := state.NewState(blank{})
	test.ExpectEquality(t, st.Switches(), softswitch.ResetState)
	test.ExpectEquality(t, st.Family(), machine.Unknown)
	test.ExpectSuccess(t, st.Capabilities().Has(softswitch.ExtendedRegs))
	test.ExpectEquality(t, st.ColorMode(), state.ColorModeColor)
	test.ExpectEquality(t, st.Palette(), state.PaletteDefault)
}

func TestSetFamily(t *testing.T) {
	st := state.NewState(blank{})
	st.SetCapabilities(st.Capabilities() | softswitch.ScanlineEmu)

	st.SetFamily(machine.IIgs)
	test.ExpectSuccess(t, st.Capabilities().Has(softswitch.GSRegs|softswitch.ExtendedRegs))
	test.ExpectSuccess(t, st.Capabilities().Has(softswitch.ScanlineEmu))

	// family capabilities are replaced but configured capabilities remain
	st.SetFamily(machine.II)
	test.ExpectFailure(t, st.Capabilities().Has(softswitch.GSRegs))
	test.ExpectFailure(t, st.Capabilities().Has(softswitch.ExtendedRegs))
	test.ExpectSuccess(t, st.Capabilities().Has(softswitch.ScanlineEmu))
}

func TestRanges(t *testing.T) {
	st := state.NewState(blank{})
	test.ExpectSuccess(t, st.SetColorMode(state.ColorModeAmber))
	test.ExpectFailure(t, st.SetColorMode(state.NumColorModes))
	test.ExpectEquality(t, st.ColorMode(), state.ColorModeAmber)

	test.ExpectSuccess(t, st.SetPalette(state.PaletteImproved))
	test.ExpectFailure(t, st.SetPalette(-1))
	test.ExpectEquality(t, st.Palette(), state.PaletteImproved)
}

func TestMonochrome(t *testing.T) {
	st := state.NewState(blank{})
	test.ExpectFailure(t, st.Monochrome())
	st.SetSwitches(st.Switches() | softswitch.Monochrome)
	test.ExpectSuccess(t, st.Monochrome())
	st.SetSwitches(st.Switches().Clear(softswitch.Monochrome))
	st.SetCapabilities(st.Capabilities() | softswitch.ForceMono)
	test.ExpectSuccess(t, st.Monochrome())
}

func TestCounters(t *testing.T) {
	st := state.NewState(blank{})
	st.Counters.Resets.Add(2)
	st.Counters.Frames.Add(5)
	st.Counters.Reset()
	test.ExpectEquality(t, st.Counters.Resets.Load(), uint32(0))
	test.ExpectEquality(t, st.Counters.Frames.Load(), uint64(5))
}

func TestSummary(t *testing.T) {
	st := state.NewState(blank{})
	st.Counters.Resets.Add(2)
	st.Counters.LastPC.Store(0xfa62)

	s := st.Summary()
	test.ExpectEquality(t, s.Family, machine.Unknown.String())
	test.ExpectEquality(t, s.Switches, softswitch.ResetState.String())
	test.ExpectEquality(t, s.Counters.Resets, uint32(2))
	test.ExpectEquality(t, s.Counters.LastPC, uint16(0xfa62))
	test.ExpectEquality(t, s.Videx.Columns, 80)
	test.ExpectEquality(t, s.Videx.Rows, 24)

	// summaries of an unchanged state are identical
	if diff := deep.Equal(s, st.Summary()); diff != nil {
		t.Errorf("summary changed: %v\n%s", diff, spew.Sdump(s))
	}

	st.Counters.Unlocks.Add(1)
	if diff := deep.Equal(s, st.Summary()); len(diff) != 1 {
		t.Errorf("expected one difference: %v\n%s", diff, spew.Sdump(st.Summary()))
	}
}
