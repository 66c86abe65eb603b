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

// Package device implements the card's own register interface. The host sees
// sixteen registers in the device-select window of the slot the card is
// fitted to ($c080 + slot*16).
//
//	reg  write                                  read
//	$0   -                                      card id ($c1)
//	$1   set capability bits                    capability bits
//	$2   clear capability bits                  -
//	$3   colour mode                            colour mode
//	$4   local character set                    local character set
//	$5   alternate character set                alternate character set
//	$6   machine override (0 is auto)           machine family
//	$7   palette                                palette
//	$8   character generator offset (low)       -
//	$9   character generator offset (high)      -
//	$a   character generator data               -
//	$b   character generator target             -
//	$d   forward key to menu                    -
//	$e   lock ($a5 unlocks)                     lock state
//	$f   command                                result of last command
//
// Capability bits are: bit 0 scanline emulation, bit 1 Video-7, bit 2 debug
// overlay, bit 3 force monochrome and bit 4 Videx.
//
// Commands are: $a0 restore defaults, $a1 reload configuration, $a2 save
// configuration and $a3 reset the diagnostic counters.
//
// Writes of values that have no meaning are ignored.
package device
