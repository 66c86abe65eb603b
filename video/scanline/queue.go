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

package scanline

import (
	"context"
)

// Queue moves buffers between the renderer and the output stage. Buffers are
// taken from the free channel by the renderer, pushed to the valid channel
// when they are encoded, received by the output stage and released back to
// the free channel when they have been sent. A buffer is owned by exactly one
// side at a time.
type Queue struct {
	free  chan *Buffer
	valid chan *Buffer
}

// NewQueue creates a queue with n buffers.
func NewQueue(n int) *Queue {
	if n < 2 {
		n = 2
	}
	q := &Queue{
		free:  make(chan *Buffer, n),
		valid: make(chan *Buffer, n),
	}
	for i := 0; i < n; i++ {
		q.free <- &Buffer{}
	}
	return q
}

// Acquire a free buffer. Blocks until one is available.
func (q *Queue) Acquire() *Buffer {
	return <-q.free
}

// Push an encoded buffer to the output stage. The caller must not touch the
// buffer afterwards.
func (q *Queue) Push(b *Buffer) {
	q.valid <- b
}

// Receive an encoded buffer. Blocks until one is available.
func (q *Queue) Receive() *Buffer {
	return <-q.valid
}

// Release a buffer that has been sent. The caller must not touch the buffer
// afterwards.
func (q *Queue) Release(b *Buffer) {
	q.free <- b
}

// AcquireContext is the same as Acquire() but returns early with the
// context's error if the context is cancelled.
func (q *Queue) AcquireContext(ctx context.Context) (*Buffer, error) {
	select {
	case b := <-q.free:
		return b, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// PushContext is the same as Push() but returns early with the context's
// error if the context is cancelled. The buffer is still owned by the caller
// in that case.
func (q *Queue) PushContext(ctx context.Context, b *Buffer) error {
	select {
	case q.valid <- b:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReceiveContext is the same as Receive() but returns early with the
// context's error if the context is cancelled.
func (q *Queue) ReceiveContext(ctx context.Context) (*Buffer, error) {
	select {
	case b := <-q.valid:
		return b, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
