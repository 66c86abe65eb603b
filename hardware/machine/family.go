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

package machine

import (
	"strings"

	"github.com/a2dvi/a2dvi/curated"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
)

// Family is a member of the Apple II family of computers, or a clone.
type Family int

// List of valid Family values. Unknown is the family before auto-detection has
// latched a concrete family.
const (
	Unknown Family = iota
	II
	IIe
	IIeEnhanced
	IIgs
	Pravetz
)

// NumFamilies is the number of concrete families. Useful for range checking
// the machine override register.
const NumFamilies = int(Pravetz)

func (f Family) String() string {
	switch f {
	case II:
		return "II"
	case IIe:
		return "IIe"
	case IIeEnhanced:
		return "IIe enhanced"
	case IIgs:
		return "IIgs"
	case Pravetz:
		return "Pravetz"
	}
	return "unknown"
}

// Capabilities returns the register sets present in the family. An unknown
// family is treated like a IIe so that the extended registers work before
// the ROM has been identified.
func (f Family) Capabilities() softswitch.Capability {
	switch f {
	case II:
		return 0
	case IIe, IIeEnhanced, Pravetz, Unknown:
		return softswitch.ExtendedRegs
	case IIgs:
		return softswitch.ExtendedRegs | softswitch.GSRegs
	}
	return 0
}

// FlashPeriod is the number of frames between each toggle of the flashing
// text mask.
func (f Family) FlashPeriod() int {
	switch f {
	case II, Pravetz:
		return 14
	}
	return 16
}

// IIFamily returns true if the machine has the original II style ROM layout.
func (f Family) IIFamily() bool {
	return f == II || f == Pravetz
}

// ResetAddress is the address of the first instruction of the monitor's
// RESET routine. Only an authentic reset reaches this address via the reset
// vector.
func (f Family) ResetAddress() uint16 {
	return 0xfa62
}

// Sentinal error returned by ParseSelection().
const (
	UnknownSelection = "machine: unknown selection (%s)"
)

// Selection is either a fixed Family or the automatic detection of a family.
type Selection struct {
	auto   bool
	family Family
}

// Auto is the Selection that detects the family from the host's ROM.
var Auto = Selection{auto: true}

// Fixed returns a Selection of a specific family.
func Fixed(f Family) Selection {
	return Selection{family: f}
}

// IsAuto returns true if the selection is automatic.
func (s Selection) IsAuto() bool {
	return s.auto
}

// Family returns the fixed family. The second return value is false for
// automatic selections.
func (s Selection) Family() (Family, bool) {
	if s.auto {
		return Unknown, false
	}
	return s.family, true
}

func (s Selection) String() string {
	if s.auto {
		return "auto"
	}
	return s.family.String()
}

// Register returns the value of the selection as presented by the machine
// override device register. Zero is automatic.
func (s Selection) Register() uint8 {
	if s.auto {
		return 0
	}
	return uint8(s.family)
}

// SelectionFromRegister is the inverse of Register(). Out of range values
// return false.
func SelectionFromRegister(v uint8) (Selection, bool) {
	if v == 0 {
		return Auto, true
	}
	if int(v) > NumFamilies {
		return Selection{}, false
	}
	return Fixed(Family(v)), true
}

// ParseSelection returns the Selection named by the string. Used by the
// preferences file and the command line.
func ParseSelection(s string) (Selection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "AUTO":
		return Auto, nil
	case "II", "II+":
		return Fixed(II), nil
	case "IIE":
		return Fixed(IIe), nil
	case "IIE ENHANCED", "ENHANCED":
		return Fixed(IIeEnhanced), nil
	case "IIGS", "GS":
		return Fixed(IIgs), nil
	case "PRAVETZ":
		return Fixed(Pravetz), nil
	}
	return Selection{}, curated.Errorf(UnknownSelection, s)
}
