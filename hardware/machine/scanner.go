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

import "bytes"

// Probe is a single byte of a ROM signature.
type Probe struct {
	Address uint16
	Data    uint8
}

// Signature is a set of probes that identify a family. All probes must have
// been observed for the signature to match.
type Signature struct {
	Family Family
	Probes []Probe
}

// Signatures is the list of ROM signatures checked by the Scanner, in order
// of priority. The IIgs and the Pravetz clones cannot be told apart from the
// enhanced IIe and the II+ by these bytes so they are only available as fixed
// selections.
var Signatures = []Signature{
	{Family: II, Probes: []Probe{{0xfbb3, 0x38}, {0xfb1e, 0xad}}},
	{Family: II, Probes: []Probe{{0xfbb3, 0xea}}},
	{Family: IIe, Probes: []Probe{{0xfbb3, 0x06}, {0xfbc0, 0xea}}},
	{Family: IIeEnhanced, Probes: []Probe{{0xfbb3, 0x06}, {0xfbc0, 0xe0}}},

	// IIc
	{Family: IIeEnhanced, Probes: []Probe{{0xfbb3, 0x06}, {0xfbc0, 0x00}}},
}

// Banner is the start-up message written by the monitor to the first row of
// the text page when the machine is switched on.
type Banner struct {
	Family Family
	Text   string
}

// Banners is the list of start-up messages checked by the Scanner. Characters
// are compared without the high bit so the normal, inverse and flashing
// forms of a letter are not distinguished.
var Banners = []Banner{
	{Family: II, Text: "APPLE ]["},
	{Family: IIe, Text: "Apple ]["},
	{Family: IIeEnhanced, Text: "Apple //e"},
	{Family: IIeEnhanced, Text: "Apple //c"},
}

// the first row of the text page
const (
	bannerRow    = 0x0400
	bannerRowEnd = 0x0428
)

// Scanner watches bus traffic for the start-up banner written to the text
// page and for the ID bytes of the host ROM.
type Scanner struct {
	// the set of addresses named by any probe
	interest map[uint16]bool

	observed map[uint16]uint8
	latched  Family

	// the first row of the text page as it has been written
	row [bannerRowEnd - bannerRow]uint8
}

// NewScanner is the preferred method of initialisation for the Scanner type.
func NewScanner() *Scanner {
	sc := &Scanner{
		interest: make(map[uint16]bool),
		observed: make(map[uint16]uint8),
	}
	for _, sig := range Signatures {
		for _, p := range sig.Probes {
			sc.interest[p.Address] = true
		}
	}
	return sc
}

// Reset forgets all observations and any latched family.
func (sc *Scanner) Reset() {
	clear(sc.observed)
	clear(sc.row[:])
	sc.latched = Unknown
}

// Latched returns the family that has been detected. Unknown if no family has
// been detected yet.
func (sc *Scanner) Latched() Family {
	return sc.latched
}

// Interested returns true if the address is one of the probe addresses or is
// in the first row of the text page.
func (sc *Scanner) Interested(address uint16) bool {
	return sc.interest[address] || (address >= bannerRow && address < bannerRowEnd)
}

// Observe a byte on the bus. Writes to the text page and reads of the ROM
// are both offered to the scanner. Returns true and the family if the observation
// completes a signature. Once a family has been latched further observations
// are ignored until Reset().
func (sc *Scanner) Observe(address uint16, data uint8) (Family, bool) {
	if sc.latched != Unknown {
		return sc.latched, false
	}

	if address >= bannerRow && address < bannerRowEnd {
		sc.row[address-bannerRow] = data & 0x7f
		for _, b := range Banners {
			if bytes.Contains(sc.row[:], []byte(b.Text)) {
				sc.latched = b.Family
				return b.Family, true
			}
		}
		return Unknown, false
	}

	if !sc.interest[address] {
		return Unknown, false
	}

	sc.observed[address] = data

	for _, sig := range Signatures {
		if sc.matches(sig) {
			sc.latched = sig.Family
			return sig.Family, true
		}
	}

	return Unknown, false
}

func (sc *Scanner) matches(sig Signature) bool {
	for _, p := range sig.Probes {
		d, ok := sc.observed[p.Address]
		if !ok || d != p.Data {
			return false
		}
	}
	return true
}
