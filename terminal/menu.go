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

package terminal

import (
	"fmt"
	"io"
	"sync"
)

// Menu receives keys forwarded by the host while the menu is active. Each key
// is written to the output as it arrives.
type Menu struct {
	output io.Writer

	crit sync.Mutex
	keys []uint8
}

// NewMenu is the preferred method of initialisation for the Menu type.
func NewMenu(output io.Writer) *Menu {
	return &Menu{output: output}
}

// ForwardKey implements the device.Menu interface.
func (m *Menu) ForwardKey(key uint8) {
	m.crit.Lock()
	m.keys = append(m.keys, key)
	m.crit.Unlock()

	if m.output != nil {
		fmt.Fprintf(m.output, "menu key: $%02x\n", key)
	}
}

// Keys returns the keys received so far.
func (m *Menu) Keys() []uint8 {
	m.crit.Lock()
	defer m.crit.Unlock()
	k := make([]uint8, len(m.keys))
	copy(k, m.keys)
	return k
}
