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

// Package prefs facilitates the storage of preferential values in the a2dvi
// system. It is the "persisted configuration" collaborator of the card: the
// device register interface asks for defaults to be restored, for values to
// be loaded and for values to be saved, and those requests end up here.
//
// Values are represented by the Bool, Int, String and Generic types. Each is
// added to a Disk instance under a key. The file format is one key/value pair
// per line, after a line of boilerplate:
//
//	*** do not edit this file while a2dvi is running ***
//	video.colorMode :: 2
//	video.scanlines :: true
//
// More than one Disk instance can share a file.
package prefs
