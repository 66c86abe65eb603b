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

package bus

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/a2dvi/a2dvi/curated"
)

// Sentinal error returned by trace functions.
const (
	TraceError = "trace: %v"
)

// Trace replays a capture of bus words. The file is a sequence of little
// endian 32-bit words with no header.
type Trace struct {
	r   *bufio.Reader
	buf [4]byte
	err error
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace(r io.Reader) *Trace {
	return &Trace{
		r: bufio.NewReaderSize(r, 64*1024),
	}
}

// Next implements the Source interface.
func (t *Trace) Next() (uint32, bool) {
	if t.err != nil {
		return 0, false
	}

	_, err := io.ReadFull(t.r, t.buf[:])
	if err != nil {
		// a truncated final word is an error. a clean end of file is not
		if !errors.Is(err, io.EOF) {
			t.err = curated.Errorf(TraceError, err)
		} else {
			t.err = io.EOF
		}
		return 0, false
	}

	return binary.LittleEndian.Uint32(t.buf[:]), true
}

// Err returns the error that ended the trace. A trace that ended cleanly
// returns nil.
func (t *Trace) Err() error {
	if errors.Is(t.err, io.EOF) {
		return nil
	}
	return t.err
}

// TraceWriter captures bus words to a file in the format read by Trace.
type TraceWriter struct {
	w   *bufio.Writer
	buf [4]byte
}

// NewTraceWriter is the preferred method of initialisation for the
// TraceWriter type.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{
		w: bufio.NewWriter(w),
	}
}

// Write a single word to the trace.
func (t *TraceWriter) Write(word uint32) error {
	binary.LittleEndian.PutUint32(t.buf[:], word)
	_, err := t.w.Write(t.buf[:])
	if err != nil {
		return curated.Errorf(TraceError, err)
	}
	return nil
}

// WriteSample encodes the sample with the layout before writing it.
func (t *TraceWriter) WriteSample(l Layout, s Sample) error {
	return t.Write(l.Encode(s))
}

// Flush must be called once all words have been written.
func (t *TraceWriter) Flush() error {
	if err := t.w.Flush(); err != nil {
		return curated.Errorf(TraceError, err)
	}
	return nil
}
