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

package softswitch

import "strings"

// Switches is the bitset of host display-mode flags. In addition to the single
// bit flags, two multi-bit fields are packed into the upper bits: the 2-bit
// Video-7 mode and the 4-bit IIgs NEWVIDEO field.
type Switches uint32

// List of single bit switches.
const (
	Text Switches = 1 << iota
	Mixed
	Page2
	Hires
	Store80
	AuxRead
	AuxWrite
	AltZP
	Col80
	AltChar
	SlotC3ROM
	IntCXROM
	IOUDisable
	Monochrome
	DGR
	Videx80
	MenuActive
)

const (
	video7Shift   = 24
	video7Mask    = Switches(0x03) << video7Shift
	newVideoShift = 28
	newVideoMask  = Switches(0x0f) << newVideoShift
)

// ResetState is the value of the switches after a host reset.
const ResetState = Text | Switches(Video7Color140)<<video7Shift

// Has returns true if all the flags in f are set.
func (s Switches) Has(f Switches) bool {
	return s&f == f
}

// Set the flags in f.
func (s Switches) Set(f Switches) Switches {
	return s | f
}

// Clear the flags in f.
func (s Switches) Clear(f Switches) Switches {
	return s &^ f
}

// Assign sets or clears the flags in f.
func (s Switches) Assign(f Switches, on bool) Switches {
	if on {
		return s | f
	}
	return s &^ f
}

// Video7Mode is the value of the 2-bit shift register found on Video-7
// compatible cards. It selects how double hi-res is displayed.
type Video7Mode uint8

// List of valid Video7Mode values.
const (
	Video7Mono560 Video7Mode = iota
	Video7ForeBack
	Video7Mixed
	Video7Color140
)

func (m Video7Mode) String() string {
	switch m {
	case Video7Mono560:
		return "560 mono"
	case Video7ForeBack:
		return "fore/back"
	case Video7Mixed:
		return "mixed"
	case Video7Color140:
		return "140 colour"
	}
	return "unknown"
}

// Video7 returns the current value of the Video-7 mode field.
func (s Switches) Video7() Video7Mode {
	return Video7Mode((s & video7Mask) >> video7Shift)
}

// WithVideo7 returns switches with the Video-7 mode field replaced.
func (s Switches) WithVideo7(m Video7Mode) Switches {
	return s&^video7Mask | (Switches(m&0x03) << video7Shift)
}

// NewVideo returns the IIgs NEWVIDEO field. The field holds the upper nibble
// of the value written to $c029.
func (s Switches) NewVideo() uint8 {
	return uint8((s & newVideoMask) >> newVideoShift)
}

// WithNewVideo returns switches with the NEWVIDEO field replaced.
func (s Switches) WithNewVideo(v uint8) Switches {
	return s&^newVideoMask | (Switches(v&0x0f) << newVideoShift)
}

var switchNames = []struct {
	f    Switches
	name string
}{
	{Text, "TEXT"},
	{Mixed, "MIXED"},
	{Page2, "PAGE2"},
	{Hires, "HIRES"},
	{Store80, "80STORE"},
	{AuxRead, "AUXREAD"},
	{AuxWrite, "AUXWRITE"},
	{AltZP, "ALTZP"},
	{Col80, "80COL"},
	{AltChar, "ALTCHAR"},
	{SlotC3ROM, "SLOTC3ROM"},
	{IntCXROM, "INTCXROM"},
	{IOUDisable, "IOUDIS"},
	{Monochrome, "MONO"},
	{DGR, "DGR"},
	{Videx80, "VIDEX80"},
	{MenuActive, "MENU"},
}

func (s Switches) String() string {
	var b strings.Builder
	for _, n := range switchNames {
		if s.Has(n.f) {
			b.WriteString(n.name)
			b.WriteRune(' ')
		}
	}
	b.WriteString("V7=")
	b.WriteString(s.Video7().String())
	return b.String()
}
