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

// Package preferences is the persisted configuration of the card. It is the
// implementation of the device.Storage interface used by the device
// registers: restoring the defaults, loading and saving.
//
// Values are held in prefs types and stored with a prefs.Disk. Loading a
// value does not change the card: the values are applied to the card as a
// group with Apply() once loading has completed.
package preferences

import (
	"github.com/a2dvi/a2dvi/curated"
	"github.com/a2dvi/a2dvi/hardware/charset"
	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/state"
	"github.com/a2dvi/a2dvi/prefs"
	"github.com/a2dvi/a2dvi/resources"
)

// Card is the interface to the card required by the preferences.
type Card interface {
	State() *state.State
	Fonts() charset.Table
	Selection() machine.Selection
	SetSelection(machine.Selection)
}

// Preferences defines and collates all the preference values of the card.
type Preferences struct {
	dsk  *prefs.Disk
	card Card

	ColorMode prefs.Int
	Palette   prefs.Int
	Scanlines prefs.Bool
	Video7    prefs.Bool
	ForceMono prefs.Bool
	Videx     prefs.Bool

	// "auto" or the name of a machine family
	Machine prefs.String

	LocalCharset     prefs.Int
	AlternateCharset prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty the default preferences file in the
// resource directory is used. The preferences are not loaded or applied.
func NewPreferences(card Card, path string) (*Preferences, error) {
	p := &Preferences{
		card: card,
	}

	p.ColorMode.SetRange(0, int(state.NumColorModes)-1)
	p.Palette.SetRange(0, int(state.NumPalettes)-1)
	p.Machine.SetMaxLen(16)
	p.SetDefaults()

	var err error

	if path == "" {
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("video.colorMode", &p.ColorMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.palette", &p.Palette)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.scanlines", &p.Scanlines)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.video7", &p.Video7)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.forceMono", &p.ForceMono)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("video.videx", &p.Videx)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.selection", &p.Machine)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("charset.local", &p.LocalCharset)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("charset.alternate", &p.AlternateCharset)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values. The card is not
// changed.
func (p *Preferences) SetDefaults() {
	_ = p.ColorMode.Set(int(state.ColorModeColor))
	_ = p.Palette.Set(int(state.PaletteDefault))
	_ = p.Scanlines.Set(false)
	_ = p.Video7.Set(true)
	_ = p.ForceMono.Set(false)
	_ = p.Videx.Set(true)
	_ = p.Machine.Set("auto")
	_ = p.LocalCharset.Set(0)
	_ = p.AlternateCharset.Set(0)
}

// LoadDefaults reverts all settings to default values and applies them to the
// card.
func (p *Preferences) LoadDefaults() error {
	p.SetDefaults()
	return p.Apply()
}

// Load preferences from disk and apply them to the card.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(false); err != nil {
		return err
	}
	return p.Apply()
}

// LoadWithCommandLine is the same as Load() except that values on the top of
// the prefs command line stack take priority.
func (p *Preferences) LoadWithCommandLine() error {
	if err := p.dsk.Load(true); err != nil {
		return err
	}
	return p.Apply()
}

// Save the current state of the card to disk.
func (p *Preferences) Save() error {
	if err := p.Capture(); err != nil {
		return err
	}
	return p.dsk.Save()
}

// Sentinal error returned by Apply().
const (
	BadValue = "preferences: %v"
)

// Apply the preference values to the card.
func (p *Preferences) Apply() error {
	sel, err := machine.ParseSelection(p.Machine.String())
	if err != nil {
		return curated.Errorf(BadValue, err)
	}

	st := p.card.State()

	st.SetColorMode(state.ColorMode(p.ColorMode.Get().(int)))
	st.SetPalette(state.Palette(p.Palette.Get().(int)))

	c := st.Capabilities()
	c = c.Assign(softswitch.ScanlineEmu, p.Scanlines.Get().(bool))
	c = c.Assign(softswitch.Video7Enabled, p.Video7.Get().(bool))
	c = c.Assign(softswitch.ForceMono, p.ForceMono.Get().(bool))
	c = c.Assign(softswitch.VidexEnabled, p.Videx.Get().(bool))
	st.SetCapabilities(c)

	p.card.SetSelection(sel)

	fonts := p.card.Fonts()
	st.Charset.SelectLocal(fonts, p.LocalCharset.Get().(int))
	st.Charset.SelectAlternate(fonts, p.AlternateCharset.Get().(int))

	return nil
}

// Capture the current state of the card in the preference values.
func (p *Preferences) Capture() error {
	st := p.card.State()
	c := st.Capabilities()

	for _, err := range []error{
		p.ColorMode.Set(int(st.ColorMode())),
		p.Palette.Set(int(st.Palette())),
		p.Scanlines.Set(c.Has(softswitch.ScanlineEmu)),
		p.Video7.Set(c.Has(softswitch.Video7Enabled)),
		p.ForceMono.Set(c.Has(softswitch.ForceMono)),
		p.Videx.Set(c.Has(softswitch.VidexEnabled)),
		p.Machine.Set(p.card.Selection().String()),
		p.LocalCharset.Set(st.Charset.LocalIndex()),
		p.AlternateCharset.Set(st.Charset.AlternateIndex()),
	} {
		if err != nil {
			return curated.Errorf(BadValue, err)
		}
	}

	return nil
}
