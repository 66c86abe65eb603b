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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/a2dvi/a2dvi/display"
	"github.com/a2dvi/a2dvi/display/sdlpreview"
	"github.com/a2dvi/a2dvi/fonts"
	"github.com/a2dvi/a2dvi/hardware"
	"github.com/a2dvi/a2dvi/hardware/bus"
	"github.com/a2dvi/a2dvi/hardware/preferences"
	"github.com/a2dvi/a2dvi/logger"
	"github.com/a2dvi/a2dvi/modalflag"
	"github.com/a2dvi/a2dvi/prefs"
	"github.com/a2dvi/a2dvi/statsview"
	"github.com/a2dvi/a2dvi/terminal"
	"github.com/a2dvi/a2dvi/version"
	"github.com/a2dvi/a2dvi/video/render"
	"github.com/a2dvi/a2dvi/video/scanline"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of windows
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the window
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. Returns false
	// if the window has been closed by the user.
	Service() (bool, error)
}

// communication between the main() function and the launch() function. SDL
// requires that window creation and event handling occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// cancelling the context asks launch() to finish. it will reply with a
	// reqQuit request when it has done so
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(ctx, sync)

	destroy := func(gui GuiCreator) GuiCreator {
		if gui != nil {
			gui.Destroy()
		}
		return nil
	}

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			cancel()

		case creator := <-sync.creator:
			var err error

			gui = destroy(gui)
			gui, err = creator()
			if err != nil {
				// a nil pointer in an interface does not equal nil
				gui = nil
				sync.creationError <- err
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				gui = destroy(gui)

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				ok, err := gui.Service()
				if err != nil {
					fmt.Printf("* error in window: %v\n", err)
				}
				if !ok || err != nil {
					gui = destroy(gui)
					cancel()
				}
			} else {
				// nothing to service. don't spin
				time.Sleep(time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate window creation and to quit.
func launch(ctx context.Context, sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PREVIEW", "MONITOR", "STATE")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "PREVIEW":
		err = preview(ctx, md, sync)

	case "MONITOR":
		err = monitor(ctx, md)

	case "STATE":
		err = dumpState(ctx, md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode
type commonFlags struct {
	prefsFile *string
	prefs     *string
	machine   *string
	log       *bool
	statsview *bool
	paced     *bool
	fifoDepth *int
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		prefsFile: md.AddString("prefsFile", "", "preferences file (default is in the resources directory)"),
		prefs:     md.AddString("prefs", "", "preferences values taking priority over the preferences file"),
		machine:   md.AddString("machine", "", "machine selection: AUTO, II, IIe, ENHANCED, IIgs, PRAVETZ"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		paced:     md.AddBool("paced", false, "feed the trace through a FIFO at the rate it is read"),
		fifoDepth: md.AddInt("fifo", 4096, "depth of the FIFO when paced"),
	}
}

// apply the flags that do not depend on the pipeline
func (f commonFlags) apply() {
	if *f.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *f.statsview {
		statsview.Launch(os.Stdout)
	}

	cl := *f.prefs
	if *f.machine != "" {
		cl = fmt.Sprintf("%s; machine.selection::%s", cl, *f.machine)
	}
	prefs.PushCommandLineStack(cl)
}

// pipeline is the card, renderer and output stage connected together.
type pipeline struct {
	card     *hardware.Card
	prefs    *preferences.Preferences
	queue    *scanline.Queue
	renderer *render.Renderer
	headless *display.Headless
}

// depth of the scanline queue between renderer and output stage
const queueDepth = 4

func newPipeline(f commonFlags) (*pipeline, error) {
	p := &pipeline{}

	var err error

	p.card, err = hardware.NewCard(fonts.NewBuiltin(), bus.DefaultLayout)
	if err != nil {
		return nil, err
	}

	p.prefs, err = preferences.NewPreferences(p.card, *f.prefsFile)
	if err != nil {
		return nil, err
	}

	// a missing preferences file leaves the defaults in place
	err = p.prefs.LoadWithCommandLine()
	if err != nil {
		return nil, err
	}
	p.card.Registers.AttachStorage(p.prefs)

	p.queue = scanline.NewQueue(queueDepth)
	p.renderer = render.NewRenderer(p.card.State(), p.queue)
	p.headless = display.NewHeadless(p.queue)

	return p, nil
}

// openTrace opens the trace file named by the first remaining argument. The
// returned function closes the file and returns any error encountered by the
// trace reader.
func openTrace(md *modalflag.Modes) (*bus.Trace, func() error, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, fmt.Errorf("bus trace required for %s mode", md)
	case 1:
	default:
		return nil, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return nil, nil, err
	}

	trace := bus.NewTrace(f)
	return trace, func() error {
		f.Close()
		return trace.Err()
	}, nil
}

// number of frames rendered after the bus source is exhausted. a frame
// started before the end of the source may show a partially updated screen
const settleFrames = 2

// run the pipeline. if hold is true the pipeline continues to render after
// the source is exhausted, until the context is cancelled.
func (p *pipeline) run(ctx context.Context, f commonFlags, src bus.Source, watchdog time.Duration, hold bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if *f.paced {
		fifo := bus.NewFIFO(*f.fifoDepth)
		go fifo.Feed(ctx, src)
		src = fifo
	}

	var wg sync.WaitGroup
	var renderErr, outputErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		renderErr = p.renderer.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		outputErr = p.headless.Run(ctx)
		if outputErr != nil {
			cancel()
		}
	}()

	if watchdog > 0 {
		wd := display.NewWatchdog(p.headless.Frames)
		go wd.Run(ctx, watchdog)
	}

	busErr := p.card.Run(ctx, src)

	if busErr == nil {
		if hold {
			<-ctx.Done()
		} else {
			p.settle(ctx)
		}
	}

	cancel()
	wg.Wait()

	for _, err := range []error{busErr, renderErr, outputErr} {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return nil
}

// wait for settleFrames more frames to be completed
func (p *pipeline) settle(ctx context.Context) {
	target := p.headless.Frames() + settleFrames

	tck := time.NewTicker(5 * time.Millisecond)
	defer tck.Stop()

	for p.headless.Frames() < target {
		select {
		case <-ctx.Done():
			return
		case <-tck.C:
		}
	}
}

// takeSnapshot of the most recent frame and log the filename
func (p *pipeline) takeSnapshot(scale int) {
	fn, err := display.SnapshotFile(p.headless.Snapshot(), scale)
	if err != nil {
		logger.Log(logger.Allow, "a2dvi", err)
		return
	}
	logger.Logf(logger.Allow, "a2dvi", "snapshot saved to %s", fn)
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	f := addCommonFlags(md)
	png := md.AddString("png", "", "write the final frame to a PNG file")
	scale := md.AddInt("scale", 1, "scaling of the PNG file")
	record := md.AddBool("record", false, "record the output to video with ffmpeg")
	recordFile := md.AddString("recordFile", "", "filename of the video recording")
	profile := md.AddString("profile", string(display.ProfileFast), "ffmpeg profile: FAST, 1080")
	watchdog := md.AddDuration("watchdog", time.Second, "interval for checking the output stage (0 to disable)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	f.apply()

	pl, err := newPipeline(f)
	if err != nil {
		return err
	}

	trace, done, err := openTrace(md)
	if err != nil {
		return err
	}

	if *record {
		vid := display.NewFFMPEG(display.Session{
			Log:      os.Stdout,
			Filename: *recordFile,
			Profile:  display.Profile(strings.ToUpper(*profile)),
		})
		err = vid.Start()
		if err != nil {
			done()
			return err
		}
		defer vid.Destroy()
		pl.headless.AddFrameRenderer(vid)
	}

	err = pl.run(ctx, f, trace, *watchdog, false)
	if traceErr := done(); err == nil {
		err = traceErr
	}
	if err != nil {
		return err
	}

	if *png != "" {
		w, err := os.Create(*png)
		if err != nil {
			return err
		}
		defer w.Close()
		err = display.WritePNG(w, pl.headless.Snapshot(), *scale)
		if err != nil {
			return err
		}
	}

	fmt.Println(pl.card.State().Summary().StatusLine())

	return nil
}

func preview(ctx context.Context, md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	f := addCommonFlags(md)
	scale := md.AddFloat64("scale", 1.0, "window scaling")
	snapshotScale := md.AddInt("snapshotScale", 2, "scaling of snapshots (F12)")
	watchdog := md.AddDuration("watchdog", time.Second, "interval for checking the output stage (0 to disable)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	f.apply()

	pl, err := newPipeline(f)
	if err != nil {
		return err
	}

	trace, done, err := openTrace(md)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlpreview.NewPreview(float32(*scale))
	}

	var pv *sdlpreview.Preview
	select {
	case g := <-sync.creation:
		pv = g.(*sdlpreview.Preview)
	case err := <-sync.creationError:
		done()
		return err
	}

	pv.SetSnapshot(func() {
		pl.takeSnapshot(*snapshotScale)
	})
	pl.headless.AddFrameRenderer(pv)

	// the window stays open after the trace is exhausted. closing the window
	// cancels the context
	err = pl.run(ctx, f, trace, *watchdog, true)
	if traceErr := done(); err == nil {
		err = traceErr
	}

	return err
}

// how often the status line is redrawn in MONITOR mode
const statusInterval = 100 * time.Millisecond

func monitor(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	f := addCommonFlags(md)
	menu := md.AddBool("menu", false, "start with the menu active. menu keys written to the card are echoed")
	snapshotScale := md.AddInt("snapshotScale", 2, "scaling of snapshots")
	md.AdditionalHelp("keys: q quit, s snapshot, l show recent log")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	f.apply()

	pl, err := newPipeline(f)
	if err != nil {
		return err
	}

	trace, done, err := openTrace(md)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		done()
		return err
	}
	err = term.CBreakMode()
	if err != nil {
		done()
		return err
	}
	defer term.CanonicalMode()

	// the monitor takes over stdout. log entries are shown with the l key
	logger.SetEcho(nil, false)

	pl.card.Registers.AttachMenu(terminal.NewMenu(&term))
	pl.card.SetMenuActive(*menu)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		keys := term.Keys(ctx)
		tck := time.NewTicker(statusInterval)
		defer tck.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-tck.C:
				term.Status(pl.card.State().Summary().StatusLine())
			case k, ok := <-keys:
				if !ok {
					return
				}
				switch k {
				case 'q', 'Q':
					cancel()
				case 's', 'S':
					pl.takeSnapshot(*snapshotScale)
				case 'l', 'L':
					logger.Tail(&term, 10)
				}
			}
		}
	}()

	err = pl.run(ctx, f, trace, 0, true)
	if traceErr := done(); err == nil {
		err = traceErr
	}
	term.Print("%s\n", pl.card.State().Summary().StatusLine())

	return err
}

func dumpState(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	f := addCommonFlags(md)
	out := md.AddString("out", "", "write the memviz graph to file (default is stdout)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	f.apply()

	pl, err := newPipeline(f)
	if err != nil {
		return err
	}

	trace, done, err := openTrace(md)
	if err != nil {
		return err
	}

	// the renderer and output stage are not needed for a state dump
	err = pl.card.Run(ctx, trace)
	if traceErr := done(); err == nil {
		err = traceErr
	}
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		fo, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer fo.Close()
		w = fo
	}

	summary := pl.card.State().Summary()
	memviz.Map(w, &summary)

	return nil
}
