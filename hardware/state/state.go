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

// Package state is the single aggregate of state shared between the bus
// goroutine and the render goroutine.
//
// The bus goroutine is the only writer. Flag words and counters are atomic
// values so that the renderer always sees a complete word. The memory banks,
// character generator and Videx VRAM are plain arrays: the renderer may see a
// byte before it sees the soft switch change that accompanies it, but
// because every frame re-reads the state the error lasts no longer than one
// frame.
package state

import (
	"sync/atomic"

	"github.com/a2dvi/a2dvi/assert"
	"github.com/a2dvi/a2dvi/hardware/charset"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/memory"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/videx"
)

// ColorMode is the colour of monochrome output. ColorModeColor uses white
// for text and the palette for graphics.
type ColorMode int

// List of valid ColorMode values.
const (
	ColorModeColor ColorMode = iota
	ColorModeWhite
	ColorModeGreen
	ColorModeAmber
	NumColorModes
)

func (m ColorMode) String() string {
	switch m {
	case ColorModeColor:
		return "color"
	case ColorModeWhite:
		return "white"
	case ColorModeGreen:
		return "green"
	case ColorModeAmber:
		return "amber"
	}
	return "unknown"
}

// Palette selects one of the calibrated colour palettes.
type Palette int

// List of valid Palette values.
const (
	PaletteDefault Palette = iota
	PaletteOriginal
	PaletteImproved
	NumPalettes
)

func (p Palette) String() string {
	switch p {
	case PaletteDefault:
		return "default"
	case PaletteOriginal:
		return "original"
	case PaletteImproved:
		return "improved"
	}
	return "unknown"
}

// State is the shared aggregate.
type State struct {
	switches     atomic.Uint32
	capabilities atomic.Uint32
	colorMode    atomic.Int32
	palette      atomic.Int32
	family       atomic.Int32

	Banks   memory.Banks
	Charset *charset.Generator
	Videx   *videx.Terminal

	Counters Counters

	// the goroutine that owns the state. zero until Claim() is called
	writer atomic.Uint64
}

// NewState is the preferred method of initialisation for the State type.
func NewState(fonts charset.Table) *State {
	st := &State{
		Charset: charset.NewGenerator(fonts),
		Videx:   videx.NewTerminal(),
	}
	st.switches.Store(uint32(softswitch.ResetState))
	st.family.Store(int32(machine.Unknown))
	st.capabilities.Store(uint32(machine.Unknown.Capabilities()))
	return st
}

// Claim records the calling goroutine as the only writer of the state. Only
// checked when the assert package is built with the assertions tag.
func (st *State) Claim() {
	st.writer.Store(assert.GetGoRoutineID())
}

func (st *State) checkWriter() {
	if assert.Enabled {
		w := st.writer.Load()
		assert.Check(w == 0 || w == assert.GetGoRoutineID(), "state written by a second goroutine")
	}
}

// Switches returns the current soft switches.
func (st *State) Switches() softswitch.Switches {
	return softswitch.Switches(st.switches.Load())
}

// SetSwitches replaces the soft switches.
func (st *State) SetSwitches(sw softswitch.Switches) {
	st.checkWriter()
	st.switches.Store(uint32(sw))
}

// Capabilities returns the current capability flags.
func (st *State) Capabilities() softswitch.Capability {
	return softswitch.Capability(st.capabilities.Load())
}

// SetCapabilities replaces the capability flags.
func (st *State) SetCapabilities(c softswitch.Capability) {
	st.checkWriter()
	st.capabilities.Store(uint32(c))
}

// ColorMode returns the current colour mode.
func (st *State) ColorMode() ColorMode {
	return ColorMode(st.colorMode.Load())
}

// SetColorMode changes the colour mode. Out of range values are ignored and
// false returned.
func (st *State) SetColorMode(m ColorMode) bool {
	if m < 0 || m >= NumColorModes {
		return false
	}
	st.checkWriter()
	st.colorMode.Store(int32(m))
	return true
}

// Palette returns the current palette.
func (st *State) Palette() Palette {
	return Palette(st.palette.Load())
}

// SetPalette changes the palette. Out of range values are ignored and false
// returned.
func (st *State) SetPalette(p Palette) bool {
	if p < 0 || p >= NumPalettes {
		return false
	}
	st.checkWriter()
	st.palette.Store(int32(p))
	return true
}

// Family returns the machine family in effect.
func (st *State) Family() machine.Family {
	return machine.Family(st.family.Load())
}

// SetFamily changes the machine family and the capabilities that come with
// it. Capabilities from configuration are not changed.
func (st *State) SetFamily(f machine.Family) {
	st.checkWriter()
	st.family.Store(int32(f))
	c := st.Capabilities() &^ softswitch.FamilyMask
	st.capabilities.Store(uint32(c | f.Capabilities()))
}

// Monochrome returns true if graphics should be rendered without colour.
func (st *State) Monochrome() bool {
	return st.Capabilities().Has(softswitch.ForceMono) || st.Switches().Has(softswitch.Monochrome)
}
