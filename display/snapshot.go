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
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/a2dvi/a2dvi/curated"
	"github.com/a2dvi/a2dvi/resources"
)

// Sentinal error returned by snapshot functions.
const (
	SnapshotError = "snapshot: %v"
)

// WritePNG encodes the image as a PNG. The image is scaled by the scale
// factor with nearest neighbour scaling so that the individual pixels remain
// sharp. Scale values less than one are treated as one.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	if err := png.Encode(w, img); err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	return nil
}

// SnapshotFile writes the image as a PNG file in the snapshot directory of
// the resource path. The name of the file is returned.
func SnapshotFile(img image.Image, scale int) (string, error) {
	fn, err := resources.JoinPath("snapshots", fmt.Sprintf("a2dvi_%s.png", time.Now().Format("20060102_150405")))
	if err != nil {
		return "", curated.Errorf(SnapshotError, err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf(SnapshotError, err)
	}

	err = WritePNG(f, img, scale)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf(SnapshotError, cerr)
	}
	if err != nil {
		return "", err
	}

	return fn, nil
}
