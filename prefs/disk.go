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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/a2dvi/a2dvi/curated"
)

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while a2dvi is running ***"

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// the separator between key and value in the preferences file.
const separator = " :: "

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: key %s already added"
	NoFile       = "prefs: no file: %v"
	BadFile      = "prefs: bad file: %v"
)

// Disk represents preference values as stored on disk. More than one Disk
// instance can use the same file. Values added to one instance are preserved
// when a different instance saves to the file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(NoFile, "empty path")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	if strings.Contains(key, separator) || strings.Contains(key, "\n") {
		return curated.Errorf(BadFile, fmt.Sprintf("illegal key %q", key))
	}
	dsk.entries[key] = p
	return nil
}

func (dsk *Disk) String() string {
	keys := dsk.sortedKeys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values in the Disk instance.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.sortedKeys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(BadFile, err)
		}
	}
	return nil
}

// readFile returns all key/value pairs in the preferences file. Keys that are
// in the list of defunct keys are dropped. A file that does not exist returns
// an empty map and no error.
func (dsk *Disk) readFile() (map[string]string, error) {
	kv := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, curated.Errorf(NoFile, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// first line must be the boilerplate
	if !scanner.Scan() {
		return kv, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(BadFile, "not a preferences file")
	}

	for scanner.Scan() {
		p := strings.SplitN(scanner.Text(), separator, 2)
		if len(p) != 2 {
			continue
		}
		if isDefunct(p[0]) {
			continue
		}
		kv[p[0]] = p[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(BadFile, err)
	}

	return kv, nil
}

// Save current preference values to disk. Entries in the file that belong to
// other Disk instances are preserved.
func (dsk *Disk) Save() error {
	kv, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		kv[k] = p.String()
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(NoFile, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, kv[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(NoFile, err)
	}

	return nil
}

// Load preference values from disk. Values in the file that have not been
// added to the Disk instance are ignored. If useCommandLine is true then
// values from the top of the command line stack take precedence.
func (dsk *Disk) Load(useCommandLine bool) error {
	kv, err := dsk.readFile()
	if err != nil {
		return err
	}

	for _, k := range dsk.sortedKeys() {
		p := dsk.entries[k]

		if useCommandLine {
			if ok, v := GetCommandLinePref(k); ok {
				if err := p.Set(v); err != nil {
					return curated.Errorf(BadFile, err)
				}
				continue
			}
		}

		if v, ok := kv[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(BadFile, err)
			}
		}
	}

	return nil
}
