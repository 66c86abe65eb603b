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

package display

import (
	"context"
	"time"

	"github.com/a2dvi/a2dvi/logger"
)

// Starved returns true if the frame count has not moved between two
// observations.
func Starved(prev, cur uint64) bool {
	return cur == prev
}

// Watchdog checks that a frame counter is moving. Starvation is logged once
// when it starts and once when it ends.
type Watchdog struct {
	frames  func() uint64
	last    uint64
	starved bool
}

// NewWatchdog is the preferred method of initialisation for the Watchdog
// type. The frames function returns the current frame count.
func NewWatchdog(frames func() uint64) *Watchdog {
	return &Watchdog{
		frames: frames,
		last:   frames(),
	}
}

// Check the frame counter. Returns true if no frames have been completed
// since the previous check.
func (w *Watchdog) Check() bool {
	cur := w.frames()
	starved := Starved(w.last, cur)
	w.last = cur

	if starved != w.starved {
		w.starved = starved
		if starved {
			logger.Log(logger.Allow, "watchdog", "renderer is starved")
		} else {
			logger.Log(logger.Allow, "watchdog", "renderer has recovered")
		}
	}

	return starved
}

// Run checks the frame counter at the interval until the context is
// cancelled.
func (w *Watchdog) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.Check()
		}
	}
}
