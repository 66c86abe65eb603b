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

package scanline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/a2dvi/a2dvi/test"
	"github.com/a2dvi/a2dvi/video/scanline"
	"github.com/a2dvi/a2dvi/video/tmds"
)

func TestView(t *testing.T) {
	var b scanline.Buffer
	v := b.View()

	// a word in the active area is not touched by Border()
	const w = scanline.ActiveFirst + 5

	tr := tmds.Triple{1, 2, 3}
	v.Put(w, tr)
	test.ExpectEquality(t, b.Lane(tmds.LaneBlue)[w], uint32(1))
	test.ExpectEquality(t, b.Lane(tmds.LaneGreen)[w], uint32(2))
	test.ExpectEquality(t, b.Lane(tmds.LaneRed)[w], uint32(3))
	test.ExpectEquality(t, b.Get(w), tr)

	v.Border(tmds.Triple{7, 7, 7})
	test.ExpectEquality(t, b.Get(0), tmds.Triple{7, 7, 7})
	test.ExpectEquality(t, b.Get(scanline.ActiveFirst-1), tmds.Triple{7, 7, 7})
	test.ExpectEquality(t, b.Get(scanline.ActiveFirst), tmds.Triple{})
	test.ExpectEquality(t, b.Get(w), tr)
	test.ExpectEquality(t, b.Get(scanline.ActiveLast), tmds.Triple{7, 7, 7})
	test.ExpectEquality(t, b.Get(scanline.WordsPerLane-1), tmds.Triple{7, 7, 7})

	var c scanline.Buffer
	c.Line = 10
	c.CopyFrom(&b)
	test.ExpectEquality(t, c.Get(w), tr)
	test.ExpectEquality(t, c.Line, 10)
}

func TestQueueOwnership(t *testing.T) {
	q := scanline.NewQueue(2)

	a := q.Acquire()
	b := q.Acquire()
	test.ExpectInequality(t, a, b)

	// no more free buffers
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := q.AcquireContext(ctx)
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))

	a.Line = 1
	q.Push(a)
	b.Line = 2
	q.Push(b)

	r := q.Receive()
	test.ExpectEquality(t, r.Line, 1)
	q.Release(r)

	c, err := q.AcquireContext(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, a)

	r, err = q.ReceiveContext(context.Background())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.Line, 2)
}
