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

package terminal_test

import (
	"os"
	"testing"

	"github.com/go-test/deep"

	"github.com/a2dvi/a2dvi/terminal"
	"github.com/a2dvi/a2dvi/test"
)

func TestMenu(t *testing.T) {
	w := &test.Writer{}
	m := terminal.NewMenu(w)
	m.ForwardKey(0x8d)
	m.ForwardKey(0x9b)

	if diff := deep.Equal(m.Keys(), []uint8{0x8d, 0x9b}); diff != nil {
		t.Error(diff)
	}
	test.ExpectSuccess(t, w.Compare("menu key: $8d\nmenu key: $9b\n"))
}

func TestNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	var pt terminal.Terminal
	test.ExpectFailure(t, pt.Initialise(r, w))
	test.ExpectFailure(t, pt.Initialise(nil, w))
}
