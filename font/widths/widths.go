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

// Package widths implements advance width lookup for character codes.
//
// Simple fonts take the widths from the glyphs of the embedded font
// program.  CID-keyed fonts use the W array of the CIDFont dictionary.
// All widths returned by a Map are in text space units.
package widths

// Map gives the advance width for a character code.  Codes without a
// width map to 0.
type Map interface {
	GetWidth(code uint32) float64
}

var (
	_ Map = (*Simple)(nil)
	_ Map = (*Composite)(nil)
)
