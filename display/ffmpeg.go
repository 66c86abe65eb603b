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
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/a2dvi/a2dvi/curated"
	"github.com/a2dvi/a2dvi/video/scanline"
)

// Profile selects the encoding options of the FFMPEG recorder.
type Profile string

// List of valid Profile values.
const (
	ProfileFast Profile = "FAST"
	Profile1080 Profile = "1080"
)

// Sentinal error returned by the FFMPEG recorder.
const (
	FFMPEGError = "ffmpeg: %v"
)

// the frame rate of the output. each frame is sent to the encoder exactly
// once so this is also the rate of the recording
const frameRate = 60

// Session is used to configure the FFMPEG process on the call to Start()
type Session struct {
	Log      io.Writer
	Filename string
	Profile  Profile
}

// FFMPEG records frames to a video file by piping them to an ffmpeg process.
// It implements the FrameRenderer interface.
type FFMPEG struct {
	conf Session

	// the time the recording started
	start  time.Time
	frames int

	// the running ffmpeg command and the data pipe to it
	encoder *exec.Cmd
	pipe    io.WriteCloser
}

// NewFFMPEG is the preferred method of initialisation for the FFMPEG type.
// An empty filename in the session is replaced with a name based on the
// current time.
func NewFFMPEG(conf Session) *FFMPEG {
	if conf.Filename == "" {
		conf.Filename = fmt.Sprintf("a2dvi_%s.mp4", time.Now().Format("20060102_150405"))
	}
	if conf.Profile == "" {
		conf.Profile = ProfileFast
	}
	return &FFMPEG{conf: conf}
}

func (vid *FFMPEG) log(s string, a ...any) {
	if vid.conf.Log != nil {
		fmt.Fprintf(vid.conf.Log, s, a...)
	}
}

// Start the ffmpeg process.
func (vid *FFMPEG) Start() error {
	if vid.pipe != nil {
		return curated.Errorf(FFMPEGError, "already recording")
	}

	var ffmpegInput = []string{
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", scanline.Width, scanline.Height),
		"-r", fmt.Sprintf("%d", frameRate),
		"-i", "-", // stdin pipe created below
	}

	var ffmpegFast = []string{
		"-crf", "18", // amount of compression. 12 and higher starts to lose colour fidelity
		"-preset", "fast",
	}

	var ffmpeg1080p = []string{
		"-crf", "11",
		"-preset", "medium",
		"-vf", "scale=-2:1080:flags=neighbor,pad=1920:1080:(ow-iw)/2:(oh-ih)/2",
	}

	var ffmpegOutput = []string{
		"-v", "error", // less noisy output from the ffmpeg command
		"-y", // always overwrite output file
		vid.conf.Filename,
	}

	var opts []string

	opts = append(opts, ffmpegInput...)
	switch vid.conf.Profile {
	case ProfileFast:
		opts = append(opts, ffmpegFast...)
	case Profile1080:
		opts = append(opts, ffmpeg1080p...)
	default:
		return curated.Errorf(FFMPEGError, fmt.Sprintf("unknown profile: %s", vid.conf.Profile))
	}
	opts = append(opts, ffmpegOutput...)

	vid.encoder = exec.Command("ffmpeg", opts...)

	var err error
	vid.pipe, err = vid.encoder.StdinPipe()
	if err != nil {
		return curated.Errorf(FFMPEGError, err)
	}

	vid.encoder.Stderr = os.Stderr
	vid.encoder.Stdout = os.Stdout

	err = vid.encoder.Start()
	if err != nil {
		vid.pipe = nil
		return curated.Errorf(FFMPEGError, err)
	}

	vid.start = time.Now()
	vid.frames = 0
	vid.log("recording video to %s\n", vid.conf.Filename)

	return nil
}

// NewFrame implements the FrameRenderer interface.
func (vid *FFMPEG) NewFrame(img *image.RGBA) error {
	if vid.pipe == nil {
		return nil
	}
	if _, err := vid.pipe.Write(img.Pix); err != nil {
		return curated.Errorf(FFMPEGError, err)
	}
	vid.frames++
	return nil
}

// Destroy closes the pipe to the ffmpeg process and waits for it to finish.
func (vid *FFMPEG) Destroy() {
	if vid.pipe == nil {
		return
	}

	vid.pipe.Close()
	if err := vid.encoder.Wait(); err != nil {
		vid.log("%s\n", err.Error())
	}
	vid.pipe = nil
	vid.encoder = nil

	// summarise results
	diff := time.Since(vid.start)
	fps := float64(vid.frames) / diff.Seconds()

	mins := int(diff.Minutes())
	secs := int(diff.Seconds()) % 60

	var dur strings.Builder
	if mins > 0 {
		fmt.Fprintf(&dur, " %dmin", mins)
		if mins > 1 {
			fmt.Fprintf(&dur, "s")
		}
	}
	fmt.Fprintf(&dur, " %dsec", secs)
	if secs != 1 {
		fmt.Fprintf(&dur, "s")
	}

	vid.log("%d frames recorded in%s (%.02f fps)\n", vid.frames, dur.String(), fps)
}
