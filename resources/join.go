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

package resources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/a2dvi/a2dvi/curated"
)

// Sentinal error returned by JoinPath().
const (
	NoResourcePath = "resources: %v"
)

// the name of the portable resource directory. if a directory of this name
// exists in the current working directory then it is used in preference to
// the user's configuration directory
const portablePath = ".a2dvi"

// the name of the resource directory in the user's configuration directory
const configPath = "a2dvi"

// the base path can be overridden for testing
var overrideBase string

// SetBase forces the base resource path. An empty string restores the normal
// behaviour.
func SetBase(base string) {
	overrideBase = base
}

func basePath() (string, error) {
	if overrideBase != "" {
		return overrideBase, nil
	}

	if fi, err := os.Stat(portablePath); err == nil && fi.IsDir() {
		return portablePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf(NoResourcePath, err)
	}
	return filepath.Join(cfg, configPath), nil
}

// JoinPath prepends the resource path to the supplied path. Any missing
// directories in the path are created but the final element is not.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	b, err := basePath()
	if err != nil {
		return "", err
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", curated.Errorf(NoResourcePath, err)
	}

	return p, nil
}
