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

// Package scanline contains the buffers that carry encoded scanlines from the
// renderer to the output stage, and the queue that moves them.
//
// A buffer has one segment of words for each TMDS lane. Each word holds the
// symbols of two pixels so a 640 pixel line is 320 words per lane.
package scanline

import (
	"github.com/a2dvi/a2dvi/video/tmds"
)

// Dimensions of the output.
const (
	Width          = 640
	Height         = 480
	WordsPerLane   = Width / 2
	BorderWords    = 20
	ActiveWords    = 280
	ActiveFirst    = BorderWords
	ActiveLast     = BorderWords + ActiveWords
	BorderLines    = 48
	AppleLines     = 192
	LinesPerApple  = 2
	ActiveLines    = AppleLines * LinesPerApple
	FirstAppleLine = BorderLines
)

// Buffer is a single encoded scanline.
type Buffer struct {
	words [tmds.Lanes * WordsPerLane]uint32

	// the output line number of the buffer
	Line int
}

// Lane returns the words of one lane.
func (b *Buffer) Lane(lane int) []uint32 {
	return b.words[lane*WordsPerLane : (lane+1)*WordsPerLane]
}

// View returns a lane-triple view of the buffer.
func (b *Buffer) View() View {
	return View{
		blue:  b.Lane(tmds.LaneBlue),
		green: b.Lane(tmds.LaneGreen),
		red:   b.Lane(tmds.LaneRed),
	}
}

// CopyFrom copies the encoded words of another buffer. The line number is not
// copied.
func (b *Buffer) CopyFrom(o *Buffer) {
	b.words = o.words
}

// Get returns the triple at the word index.
func (b *Buffer) Get(i int) tmds.Triple {
	return tmds.Triple{
		tmds.LaneBlue:  b.words[tmds.LaneBlue*WordsPerLane+i],
		tmds.LaneGreen: b.words[tmds.LaneGreen*WordsPerLane+i],
		tmds.LaneRed:   b.words[tmds.LaneRed*WordsPerLane+i],
	}
}

// View is a writable view of the three lanes of a buffer. It is created once
// per scanline and indexed by word.
type View struct {
	blue, green, red []uint32
}

// Put the triple at the word index.
func (v View) Put(i int, t tmds.Triple) {
	v.blue[i] = t[tmds.LaneBlue]
	v.green[i] = t[tmds.LaneGreen]
	v.red[i] = t[tmds.LaneRed]
}

// Fill the words from index start up to but not including end.
func (v View) Fill(start, end int, t tmds.Triple) {
	for i := start; i < end; i++ {
		v.Put(i, t)
	}
}

// Border fills the left and right borders.
func (v View) Border(t tmds.Triple) {
	v.Fill(0, ActiveFirst, t)
	v.Fill(ActiveLast, WordsPerLane, t)
}
