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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It divides the command line into modes, each with its own flags.
//
// The a2dvi command line is an example:
//
//	a2dvi -log PREVIEW -scale 2 trace.bin
//
// The top level mode has the -log flag and the sub-modes RUN, PREVIEW,
// MONITOR and STATE. The PREVIEW mode has its own -scale flag and the
// remaining argument is the trace file:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	log := md.AddBool("log", false, "echo log to stdout")
//	md.AddSubModes("RUN", "PREVIEW", "MONITOR", "STATE")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "PREVIEW":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 1.0, "window scaling")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		trace := md.GetArg(0)
//	}
//
// If the argument following the flags is not one of the sub-modes then the
// first sub-mode is selected and the argument is left for the next mode.
//
// A -help flag is understood by every mode. The help message lists the flags
// and sub-modes of the mode and any text given to AdditionalHelp().
package modalflag
