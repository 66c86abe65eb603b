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

// Package sdlpreview is a windowed output stage. Frames completed by a
// display.Headless are shown in an SDL window.
//
// SDL requires that the window is serviced from the main thread. Frames
// arrive through the NewFrame() function on the output stage goroutine and
// are shown by the next call to Service(), which must be called from the
// main thread.
package sdlpreview

import (
	"image"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/a2dvi/a2dvi/curated"
	"github.com/a2dvi/a2dvi/video/scanline"
)

// Sentinal error returned by the preview.
const (
	PreviewError = "sdl preview: %v"
)

// number of bytes per pixel (indicating PIXELFORMAT)
const pixelDepth = 4

// Preview is an SDL window showing the output of the card. It implements the
// display.FrameRenderer interface.
type Preview struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is written by NewFrame() and read by Service()
	crit   sync.Mutex
	pixels []byte
	fresh  bool

	// the function called when the snapshot key is pressed
	snapshot func()
}

// NewPreview is the preferred method of initialisation for the Preview type.
// Must be called from the main thread.
func NewPreview(scale float32) (*Preview, error) {
	var err error

	pv := &Preview{
		pixels: make([]byte, scanline.Width*scanline.Height*pixelDepth),
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(PreviewError, err)
	}

	w := int32(float32(scanline.Width) * scale)
	h := int32(float32(scanline.Height) * scale)
	pv.window, err = sdl.CreateWindow("a2dvi", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(PreviewError, err)
	}

	pv.renderer, err = sdl.CreateRenderer(pv.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(PreviewError, err)
	}

	// everything applied to the renderer will be scaled
	err = pv.renderer.SetScale(scale, scale)
	if err != nil {
		return nil, curated.Errorf(PreviewError, err)
	}

	// the byte order of image.RGBA
	pv.texture, err = pv.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, scanline.Width, scanline.Height)
	if err != nil {
		return nil, curated.Errorf(PreviewError, err)
	}

	return pv, nil
}

// SetSnapshot sets the function called when F12 is pressed.
func (pv *Preview) SetSnapshot(f func()) {
	pv.snapshot = f
}

// NewFrame implements the display.FrameRenderer interface.
func (pv *Preview) NewFrame(img *image.RGBA) error {
	pv.crit.Lock()
	defer pv.crit.Unlock()
	copy(pv.pixels, img.Pix)
	pv.fresh = true
	return nil
}

// Service the window. Returns false if the window has been closed. Must be
// called from the main thread.
func (pv *Preview) Service() (bool, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false, nil
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				break
			}
			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false, nil
			case sdl.SCANCODE_F12:
				if pv.snapshot != nil {
					pv.snapshot()
				}
			}
		}
	}

	pv.crit.Lock()
	if pv.fresh {
		pv.fresh = false
		err := pv.texture.Update(nil, pv.pixels, scanline.Width*pixelDepth)
		if err != nil {
			pv.crit.Unlock()
			return false, curated.Errorf(PreviewError, err)
		}
	}
	pv.crit.Unlock()

	if err := pv.renderer.Clear(); err != nil {
		return false, curated.Errorf(PreviewError, err)
	}
	if err := pv.renderer.Copy(pv.texture, nil, nil); err != nil {
		return false, curated.Errorf(PreviewError, err)
	}
	pv.renderer.Present()

	return true, nil
}

// Destroy the window. Must be called from the main thread.
func (pv *Preview) Destroy() {
	if pv.texture != nil {
		_ = pv.texture.Destroy()
	}
	if pv.renderer != nil {
		_ = pv.renderer.Destroy()
	}
	if pv.window != nil {
		_ = pv.window.Destroy()
	}
	sdl.Quit()
}
