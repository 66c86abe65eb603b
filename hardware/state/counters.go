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
	"sync/atomic"
)

// Counters are diagnostic values. They are written by the bus goroutine except
// for Frames and Lines, which are written by the render goroutine.
type Counters struct {
	Samples     atomic.Uint64
	Overflows   atomic.Uint32
	Resets      atomic.Uint32
	VBlankReads atomic.Uint32
	Unlocks     atomic.Uint32

	// value of Overflows at the most recent reset
	OverflowAtReset atomic.Uint32

	// the most recent zero page, stack and program counter addresses. the
	// program counter is inferred from reads of ROM
	LastZeroPage atomic.Uint32
	LastStack    atomic.Uint32
	LastPC       atomic.Uint32

	Frames atomic.Uint64
	Lines  atomic.Uint64
}

// Reset the counters that are under the control of the host. Frames and Lines
// are not changed.
func (c *Counters) Reset() {
	c.Samples.Store(0)
	c.Overflows.Store(0)
	c.Resets.Store(0)
	c.VBlankReads.Store(0)
	c.Unlocks.Store(0)
	c.OverflowAtReset.Store(0)
}

func (c *Counters) String() string {
	return fmt.Sprintf("samples=%d overflows=%d resets=%d vblank=%d unlocks=%d frames=%d",
		c.Samples.Load(), c.Overflows.Load(), c.Resets.Load(),
		c.VBlankReads.Load(), c.Unlocks.Load(), c.Frames.Load())
}
