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

// Capability flags are derived from the machine family and from the card's
// configuration. They are stable during a frame.
type Capability uint32

// List of capabilities.
const (
	// the IIe register set ($c000 to $c00f writes, IOUDIS)
	ExtendedRegs Capability = 1 << iota

	// the IIgs video registers
	GSRegs

	// the remaining flags are under the control of the card's configuration
	ForceMono
	ScanlineEmu
	Video7Enabled
	VidexEnabled
	DebugOverlay
	TestMode
	MenuEnabled
)

// FamilyMask are the capabilities that come from the machine family. All
// other capabilities come from configuration.
const FamilyMask = ExtendedRegs | GSRegs

// Has returns true if all the capabilities in c are present.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

// Assign sets or clears the capabilities in f.
func (c Capability) Assign(f Capability, on bool) Capability {
	if on {
		return c | f
	}
	return c &^ f
}

var capabilityNames = []struct {
	f    Capability
	name string
}{
	{ExtendedRegs, "extended"},
	{GSRegs, "gs"},
	{ForceMono, "mono"},
	{ScanlineEmu, "scanlines"},
	{Video7Enabled, "video7"},
	{VidexEnabled, "videx"},
	{DebugOverlay, "debug"},
	{TestMode, "test"},
	{MenuEnabled, "menu"},
}

func (c Capability) String() string {
	var s []string
	for _, n := range capabilityNames {
		if c.Has(n.f) {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, " ")
}
