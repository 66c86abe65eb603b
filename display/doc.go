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

// Package display contains the output stages of the renderer. An output
// stage receives encoded scanlines from a scanline.Queue and does something
// with them.
//
// The Headless type decodes the TMDS symbols of every scanline back into
// pixels and collects them into frames. Completed frames can be captured
// with Snapshot() and written as a PNG with WritePNG(), and are passed to any
// attached FrameRenderer. The FFMPEG type is a FrameRenderer that records
// frames to a video file.
//
// The Watchdog type checks that the renderer is producing frames.
//
// The sdlpreview sub-package is a windowed output stage.
package display
