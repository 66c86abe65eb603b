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

package memory

import (
	"github.com/a2dvi/a2dvi/hardware/softswitch"
)

// Size of each bank.
const Size = 0x6000

// Bank identifies one of the two shadow banks.
type Bank int

// List of valid Bank values. BankNone is returned by Route() when a write is
// suppressed.
const (
	BankNone Bank = iota
	BankMain
	BankAux
)

func (b Bank) String() string {
	switch b {
	case BankMain:
		return "main"
	case BankAux:
		return "aux"
	}
	return "none"
}

// Banks is the main and auxiliary shadow memory.
type Banks struct {
	Main [Size]uint8
	Aux  [Size]uint8
}

// Route decides which bank receives a write to the address. The address must
// be less than Size.
//
// When 80STORE is on the primary text page, and the hi-res page if HIRES is
// also on, is selected by PAGE2. Otherwise the bank is selected by AUXWRITE.
// Zero page and the stack always go to main memory. Writes to main memory are
// suppressed while the menu is active.
func Route(address uint16, sw softswitch.Switches) Bank {
	main := BankMain
	if sw.Has(softswitch.MenuActive) {
		main = BankNone
	}

	if sw.Has(softswitch.Store80) {
		if (address >= 0x400 && address < 0x800) || (sw.Has(softswitch.Hires) && address >= 0x2000 && address < 0x4000) {
			if sw.Has(softswitch.Page2) {
				return BankAux
			}
			return main
		}
	}

	if address >= 0x200 {
		if sw.Has(softswitch.AuxWrite) {
			return BankAux
		}
		return main
	}

	return BankMain
}

// Write the data to the bank chosen by Route(). Returns the bank that was
// written to. Addresses outside the shadow are ignored and BankNone returned.
func (b *Banks) Write(address uint16, data uint8, sw softswitch.Switches) Bank {
	if address >= Size {
		return BankNone
	}

	bank := Route(address, sw)
	switch bank {
	case BankMain:
		b.Main[address] = data
	case BankAux:
		b.Aux[address] = data
	}
	return bank
}

// Slice returns n bytes of the bank starting at address. The slice is
// shortened if it would extend past the end of the bank.
func (b *Banks) Slice(bank Bank, address uint16, n int) []uint8 {
	if int(address) >= Size {
		return nil
	}
	end := int(address) + n
	if end > Size {
		end = Size
	}
	switch bank {
	case BankMain:
		return b.Main[address:end]
	case BankAux:
		return b.Aux[address:end]
	}
	return nil
}
