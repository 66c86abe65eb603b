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

// Package assert contains checks that are only performed when the program is
// built with the "assertions" build tag:
//
//	go test -tags=assertions ./...
//
// The most important check is that the shared state of the card is only
// written by one goroutine.
package assert
