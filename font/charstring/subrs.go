// seehuhn.de/go/pdfsvg - convert PDF files to SVG
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package charstring

// Subrs is a pool of subroutines.  The entries are views into the font
// data and must not be modified.
type Subrs [][]byte

// Bias returns the number which is added to a subroutine number
// found in a charstring, to get the index into the pool.
func (s Subrs) Bias() int {
	nSubrs := len(s)
	switch {
	case nSubrs < 1240:
		return 107
	case nSubrs < 33900:
		return 1131
	default:
		return 32768
	}
}

// Get returns the subroutine for the given (biased) subroutine number.
func (s Subrs) Get(biased int) ([]byte, error) {
	idx := biased + s.Bias()
	if idx < 0 || idx >= len(s) {
		return nil, ErrInvalidSubroutine
	}
	return s[idx], nil
}
