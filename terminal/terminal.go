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
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/a2dvi/a2dvi/curated"
)

// Sentinal error returned by Initialise().
const (
	TerminalError = "terminal: %v"
)

// Terminal is a posix terminal in cbreak mode.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// the status line is redrawn in place. printing a full line moves the
	// status line down
	crit   sync.Mutex
	status string
}

// Initialise the terminal. The input file must be a terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return curated.Errorf(TerminalError, "requires an input file")
	}
	if outputFile == nil {
		return curated.Errorf(TerminalError, "requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return curated.Errorf(TerminalError, err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// Print writes the formatted string to the output file. The status line is
// redrawn afterwards.
func (pt *Terminal) Print(s string, a ...any) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	fmt.Fprintf(pt.output, "\r\033[K"+s, a...)
	fmt.Fprintf(pt.output, "\r\033[K%s", pt.status)
}

// Write implements the io.Writer interface. The status line is redrawn
// afterwards.
func (pt *Terminal) Write(p []byte) (int, error) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	fmt.Fprint(pt.output, "\r\033[K")
	n, err := pt.output.Write(p)
	fmt.Fprintf(pt.output, "\r\033[K%s", pt.status)
	return n, err
}

// Status replaces the status line.
func (pt *Terminal) Status(s string) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.status = s
	fmt.Fprintf(pt.output, "\r\033[K%s", pt.status)
}

// Keys returns a channel of key presses. The channel is closed when the input
// file returns an error or the context is cancelled. The reading goroutine
// may remain blocked on the input file after cancellation until the next
// key press.
func (pt *Terminal) Keys(ctx context.Context) <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		b := make([]byte, 1)
		for {
			n, err := pt.input.Read(b)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			select {
			case keys <- b[0]:
			case <-ctx.Done():
				return
			}
		}
	}()
	return keys
}
