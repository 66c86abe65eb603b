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

package hardware

import (
	"context"

	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/logger"
)

// PerformanceBrake is the number of samples between checks of the context
// and the overflow count of the source.
const PerformanceBrake = 1024

// Run takes words from the source until the source is exhausted or the
// context is cancelled. The calling goroutine becomes the only writer of the
// card's state.
//
// Returns nil if the source is exhausted or the context's error if it is
// cancelled.
func (c *Card) Run(ctx context.Context, src bus.Source) error {
	c.st.Claim()

	over, _ := src.(bus.Overflower)

	// overflows are added to the counter rather than stored so that the
	// counter can be reset by the host
	var seen uint32
	overflows := func() {
		if over != nil {
			n := over.Overflows()
			c.st.Counters.Overflows.Add(n - seen)
			seen = n
		}
	}

	var brake int
	for {
		w, ok := src.Next()
		if !ok {
			break
		}
		c.Step(w)

		brake++
		if brake >= PerformanceBrake {
			brake = 0
			overflows()
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}

	overflows()
	logger.Logf(logger.Allow, "card", "bus source exhausted after %d samples", c.st.Counters.Samples.Load())

	return nil
}
