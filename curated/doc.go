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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface but the pattern used to create
// the error is retained, so that it can be identified later with the Is() and
// Has() functions.
//
// Patterns are best defined as package level constants:
//
//	const UnknownLayout = "layout: %v"
//
//	err := curated.Errorf(UnknownLayout, "device-select bit overlaps address")
//	if curated.Is(err, UnknownLayout) {
//		...
//	}
//
// Has() searches the chain of curated errors. Adjacent duplicate parts of the
// error message are removed when Error() is called, so wrapping an error with
// the same prefix does not produce stuttering messages.
package curated
