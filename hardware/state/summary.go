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

package state

import (
	"fmt"

	"github.com/a2dvi/a2dvi/hardware/videx"
)

// Summary is a copy of the state without the memory banks or the character
// generator. A Summary can be taken from any goroutine but the Videx
// registers may be mid-update.
type Summary struct {
	Switches     string
	Capabilities string
	Family       string
	ColorMode    string
	Palette      string

	LocalCharset     int
	AlternateCharset int

	Videx struct {
		Registers [videx.NumRegisters]uint8
		Columns   int
		Rows      int
	}

	Counters struct {
		Samples         uint64
		Overflows       uint32
		OverflowAtReset uint32
		Resets          uint32
		VBlankReads     uint32
		Unlocks         uint32
		LastZeroPage    uint16
		LastStack       uint16
		LastPC          uint16
		Frames          uint64
		Lines           uint64
	}
}

// Summary returns a summary of the current state.
func (st *State) Summary() Summary {
	var s Summary

	s.Switches = st.Switches().String()
	s.Capabilities = st.Capabilities().String()
	s.Family = st.Family().String()
	s.ColorMode = st.ColorMode().String()
	s.Palette = st.Palette().String()
	s.LocalCharset = st.Charset.LocalIndex()
	s.AlternateCharset = st.Charset.AlternateIndex()

	s.Videx.Registers = st.Videx.Regs
	s.Videx.Columns = st.Videx.Columns()
	s.Videx.Rows = st.Videx.Rows()

	c := &st.Counters
	s.Counters.Samples = c.Samples.Load()
	s.Counters.Overflows = c.Overflows.Load()
	s.Counters.OverflowAtReset = c.OverflowAtReset.Load()
	s.Counters.Resets = c.Resets.Load()
	s.Counters.VBlankReads = c.VBlankReads.Load()
	s.Counters.Unlocks = c.Unlocks.Load()
	s.Counters.LastZeroPage = uint16(c.LastZeroPage.Load())
	s.Counters.LastStack = uint16(c.LastStack.Load())
	s.Counters.LastPC = uint16(c.LastPC.Load())
	s.Counters.Frames = c.Frames.Load()
	s.Counters.Lines = c.Lines.Load()

	return s
}

// StatusLine is a single line description of the summary.
func (s Summary) StatusLine() string {
	return fmt.Sprintf("%s | %s | pc=$%04x frames=%d overflows=%d resets=%d",
		s.Family, s.Switches, s.Counters.LastPC, s.Counters.Frames,
		s.Counters.Overflows, s.Counters.Resets)
}
