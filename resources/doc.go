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

// Package resources locates the files that a2dvi reads and writes: the
// preferences file, captured bus traces and snapshots.
//
// Resources are stored in the "a2dvi" directory of the user's configuration
// directory, or in the ".a2dvi" directory of the current working directory
// if it exists. The second form is useful for portable installations.
package resources
