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

package cff

import (
	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsvg/font/charstring"
)

// FontSet is the content of a CFF file.
type FontSet struct {
	Strings     *Strings
	GlobalSubrs charstring.Subrs
	Fonts       []*Font

	// Diagnostics lists the glyphs which could not be decoded.
	Diagnostics []*GlyphError
}

// Font is one font of a FontSet.
//
// For CID-keyed fonts, Charset holds CIDs and FDSelect and FDArray are
// set.  Otherwise Charset holds SIDs and Encoding gives the built-in
// encoding of the font.
type Font struct {
	Name    string
	TopDict *TopDict
	Private *PrivateDict
	Subrs   charstring.Subrs

	Charset  []int32
	Encoding []glyph.ID
	Glyphs   []*Glyph

	FDSelect FDSelect
	FDArray  []*SubFont

	set *FontSet
}

// SubFont is an entry in the FDArray of a CID-keyed font.
//
// If the Font DICT has no Private DICT, Private is nil.  If the sub-font
// has no local subroutines, Subrs is shared with the parent font.
type SubFont struct {
	FontDict *FontDict
	Private  *PrivateDict
	Subrs    charstring.Subrs
}

// Glyph is a decoded glyph.  Glyphs are not modified after Parse
// returns.
type Glyph struct {
	CharString *charstring.CharString

	// Text is the text represented by the glyph, if known.
	Text string

	Index glyph.ID

	// ID is the SID of the glyph name for simple fonts, and the CID for
	// CID-keyed fonts.
	ID int32

	// Width is the advance width in glyph space units.
	Width float64
}

// IsCIDKeyed reports whether f is a CID-keyed font.
func (f *Font) IsCIDKeyed() bool {
	return f.TopDict.FDArray != nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.Glyphs)
}

// GlyphName returns the name of the glyph gid in a simple font.  The
// empty string is returned for CID-keyed fonts and for glyphs without a
// name.
func (f *Font) GlyphName(gid glyph.ID) string {
	id, ok := f.glyphID(gid)
	if f.IsCIDKeyed() || !ok {
		return ""
	}
	name, _ := f.set.Strings.Lookup(id)
	return name
}

// CID returns the CID of the glyph gid in a CID-keyed font.
func (f *Font) CID(gid glyph.ID) cid.CID {
	id, ok := f.glyphID(gid)
	if !f.IsCIDKeyed() || !ok {
		return 0
	}
	return cid.CID(id)
}

// glyphID returns the SID or CID of glyph gid.  Decoded glyphs take
// precedence over the charset, which is only consulted while a font is
// being read.
func (f *Font) glyphID(gid glyph.ID) (int32, bool) {
	if int(gid) < len(f.Glyphs) && f.Glyphs[gid] != nil {
		return f.Glyphs[gid].ID, true
	}
	if int(gid) < len(f.Charset) {
		return f.Charset[gid], true
	}
	return 0, false
}

// glyphNames returns the names of all glyphs in a simple font.
func (f *Font) glyphNames() []string {
	res := make([]string, max(len(f.Glyphs), len(f.Charset)))
	for gid := range res {
		res[gid] = f.GlyphName(glyph.ID(gid))
	}
	return res
}

// selectFD returns the Private DICT and the local subroutines used for
// glyph gid.  Glyphs without a usable FDSelect entry use the values of
// the top-level font.
func (f *Font) selectFD(gid glyph.ID) (*PrivateDict, charstring.Subrs) {
	private, subrs := f.Private, f.Subrs
	if fd, ok := f.FDSelect.Lookup(gid); ok && fd < len(f.FDArray) {
		sub := f.FDArray[fd]
		subrs = sub.Subrs
		if sub.Private != nil {
			private = sub.Private
		}
	}
	return private, subrs
}
