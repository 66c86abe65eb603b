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

// Package hardware is the base package for the card. It and its sub-packages
// contain everything required to follow the host machine from the bus.
//
// The Card type is the root of the emulation. Words from a bus.Source are
// decoded into samples and each sample is dispatched by the high nibble of
// its address: shadow memory writes, the IO space (soft switches, device
// registers, the Videx terminal and the expansion ROM window) and ROM reads
// (reset, unlock and machine detection).
//
// The card can be run continuously with Run() or stepped sample by sample
// with Step() and StepSample(). In both cases the state of the card is found
// in the state.State returned by State(), which is shared with the renderer.
package hardware
