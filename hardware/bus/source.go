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
	"context"
	"sync/atomic"
)

// Source is the upstream supplier of raw bus words. Next() blocks until a word
// is available. The second return value is false once the source has been
// exhausted.
type Source interface {
	Next() (uint32, bool)
}

// Overflower is implemented by sources that can drop words.
type Overflower interface {
	Overflows() uint32
}

// FIFO is a hardware-paced Source. The producer side never blocks: a word
// that cannot be queued is lost and the overflow counter incremented.
type FIFO struct {
	words    chan uint32
	overflow atomic.Uint32
}

// NewFIFO is the preferred method of initialisation for the FIFO type.
func NewFIFO(depth int) *FIFO {
	if depth < 1 {
		depth = 1
	}
	return &FIFO{
		words: make(chan uint32, depth),
	}
}

// Push a word onto the FIFO. Returns false if the word was dropped.
func (f *FIFO) Push(word uint32) bool {
	select {
	case f.words <- word:
		return true
	default:
		f.overflow.Add(1)
		return false
	}
}

// Close indicates that there will be no more words. Must only be called by the
// producer.
func (f *FIFO) Close() {
	close(f.words)
}

// Next implements the Source interface.
func (f *FIFO) Next() (uint32, bool) {
	w, ok := <-f.words
	return w, ok
}

// Overflows implements the Overflower interface.
func (f *FIFO) Overflows() uint32 {
	return f.overflow.Load()
}

// Feed copies words from src to the FIFO until src is exhausted or the
// context is cancelled. The FIFO is closed on return. Words are pushed at
// the rate the source supplies them, so a slow consumer causes overflow in
// the same way as it would with the real bus.
func (f *FIFO) Feed(ctx context.Context, src Source) {
	defer f.Close()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		w, ok := src.Next()
		if !ok {
			return
		}
		f.Push(w)
	}
}

// Words is a Source over a slice of words. Useful for tests.
type Words struct {
	words []uint32
	idx   int
}

// NewWords creates a Source that supplies the words in order.
func NewWords(words []uint32) *Words {
	return &Words{words: words}
}

// Next implements the Source interface.
func (w *Words) Next() (uint32, bool) {
	if w.idx >= len(w.words) {
		return 0, false
	}
	v := w.words[w.idx]
	w.idx++
	return v, true
}
