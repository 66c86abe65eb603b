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

// Package version reports the version of the a2dvi build. The version number
// is set by the linker:
//
//	go build -ldflags "-X github.com/a2dvi/a2dvi/version.number=v1.0.0"
//
// Builds without a number are described by the VCS information embedded by
// the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "a2dvi"

// set by the linker
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line describing the version.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	version, revision = describe(number, readSettings())
}

func readSettings() map[string]string {
	s := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			s[v.Key] = v.Value
		}
	}
	return s
}

// describe the build from the linker number and the build settings
func describe(number string, settings map[string]string) (string, string) {
	rev := settings["vcs.revision"]
	if rev == "" {
		rev = "no revision information"
	} else if settings["vcs.modified"] == "true" {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case settings["vcs"] != "":
		return "unreleased", rev
	}
	return "local", rev
}
