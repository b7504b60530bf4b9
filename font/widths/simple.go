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

package widths

import (
	"seehuhn.de/go/pdfsvg/font/cff"
)

// Simple is the width map of a simple font.
type Simple struct {
	widths   []float64 // indexed by glyph ID
	encoding []uint16  // nil if codes are glyph IDs
}

// NewSimple returns the width map for a simple font.  Character codes are
// mapped to glyphs using the built-in encoding of the font, or taken to be
// glyph indices if the font has no built-in encoding.
func NewSimple(f *cff.Font) *Simple {
	scale := f.TopDict.FontMatrix[0]
	widths := make([]float64, len(f.Glyphs))
	for gid, g := range f.Glyphs {
		widths[gid] = g.Width * scale
	}

	res := &Simple{widths: widths}
	if f.Encoding != nil {
		res.encoding = make([]uint16, len(f.Encoding))
		for code, gid := range f.Encoding {
			res.encoding[code] = uint16(gid)
		}
	}
	return res
}

// GetWidth implements the Map interface.
func (s *Simple) GetWidth(code uint32) float64 {
	gid := code
	if s.encoding != nil {
		if code >= uint32(len(s.encoding)) {
			return 0
		}
		gid = uint32(s.encoding[code])
		if gid == 0 {
			return 0
		}
	}
	if gid >= uint32(len(s.widths)) {
		return 0
	}
	return s.widths[gid]
}
