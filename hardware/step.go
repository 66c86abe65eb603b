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
	"github.com/a2dvi/a2dvi/hardware/bus"
)

// Step decodes a single bus word and applies it to the card.
func (c *Card) Step(word uint32) {
	c.StepSample(c.layout.Decode(word))
}

// StepSample applies a decoded bus sample to the card. The sample is first
// offered to the reset detector: the reset is applied before the sample is
// handled so that the sample completing the sequence is handled with the
// reset state.
func (c *Card) StepSample(s bus.Sample) {
	c.st.Counters.Samples.Add(1)

	if c.reset.Observe(s.Kind, s.Address) {
		c.applyReset()
	}

	if s.DevSel && bus.IsDeviceRegister(s.Address) {
		slot, reg := bus.DeviceSlot(s.Address)
		c.slot = slot
		c.Registers.Access(reg, s.Kind, s.Data)
		return
	}

	c.handlers[s.Address>>12](c, s)
}
