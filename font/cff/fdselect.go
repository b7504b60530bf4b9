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
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsvg/font/charstring"
	"seehuhn.de/go/pdfsvg/font/parser"
)

// FDSelect maps glyph indices to indices in the FDArray.
type FDSelect []uint8

// Lookup returns the FDArray index for gid.  The second return value is
// false if the table has no entry for gid.
func (s FDSelect) Lookup(gid glyph.ID) (int, bool) {
	if int(gid) >= len(s) {
		return 0, false
	}
	return int(s[gid]), true
}

// readFDSelect reads an FDSelect table at the current position.
//
// Format 0 tables contribute nGlyphs-1 selectors.  The last glyph then
// has no entry and uses the top-level subroutines.
func readFDSelect(p *parser.Parser, nGlyphs int) (FDSelect, error) {
	format, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}

	switch format {
	case 0:
		if nGlyphs < 1 {
			return nil, nil
		}
		buf, err := p.ReadBytes(nGlyphs - 1)
		if err != nil {
			return nil, err
		}
		return FDSelect(append([]uint8(nil), buf...)), nil

	case 3:
		nRanges, err := p.ReadUInt16()
		if err != nil {
			return nil, err
		}

		res := make(FDSelect, 0, nGlyphs)
		var first int
		var fd uint8
		for i := 0; i <= int(nRanges); i++ {
			next, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			if i > 0 {
				if int(next) < first || int(next) > nGlyphs {
					return nil, invalidSince("FDSelect ranges out of order")
				}
				for j := first; j < int(next); j++ {
					res = append(res, fd)
				}
			}
			if i < int(nRanges) {
				fd, err = p.ReadUInt8()
				if err != nil {
					return nil, err
				}
				first = int(next)
			}
		}
		return res, nil

	default:
		return nil, invalidSince(fmt.Sprintf("FDSelect format %d", format))
	}
}

// encode returns the format 3 encoding of the table.  Format 0 is never
// written, since readFDSelect only recovers nGlyphs-1 selectors from it.
// Glyphs beyond the end of the table use the last selector, callers
// which need exact values use fdTable first.
func (s FDSelect) encode(nGlyphs int) []byte {
	w := parser.NewWriter(5 + 3*len(s))
	w.WriteUInt8(3)
	w.WriteUInt16(0) // nRanges, patched below

	nRanges := 0
	var current uint8
	for i := 0; i < nGlyphs; i++ {
		fd := current
		if i < len(s) {
			fd = s[i]
		}
		if i > 0 && fd == current {
			continue
		}
		w.WriteUInt16(uint16(i))
		w.WriteUInt8(fd)
		nRanges++
		current = fd
	}
	w.WriteUInt16(uint16(nGlyphs))

	w.SetPos(1)
	w.WriteUInt16(uint16(nRanges))
	return w.Bytes()
}

// fdTable returns an FDSelect with an entry for every glyph of f, together
// with the FDArray it refers to.
//
// Glyphs without a usable entry use the top-level Private DICT and
// subroutines.  They are mapped to a sub-font with the same values.  If
// no such sub-font exists, one is appended to a copy of the FDArray.
func (f *Font) fdTable() (FDSelect, []*SubFont) {
	fdArray := f.FDArray
	res := make(FDSelect, len(f.Glyphs))
	fallback := -1
	for gid := range res {
		fd, ok := f.FDSelect.Lookup(glyph.ID(gid))
		if ok && fd < len(f.FDArray) {
			res[gid] = uint8(fd)
			continue
		}
		if fallback < 0 {
			fallback = f.topLevelFD()
		}
		if fallback < 0 {
			if len(fdArray) > 255 {
				fallback = 0
			} else {
				fd := NewFontDict()
				fd.FontName = f.Name
				fallback = len(fdArray)
				fdArray = append(slices.Clip(fdArray), &SubFont{
					FontDict: fd,
					Private:  f.Private,
					Subrs:    f.Subrs,
				})
			}
		}
		res[gid] = uint8(fallback)
	}
	return res, fdArray
}

// topLevelFD returns the index of a sub-font which uses the same Private
// DICT and subroutines as the top-level font, or -1 if there is none.
func (f *Font) topLevelFD() int {
	for k, sub := range f.FDArray {
		if !sameSubrs(sub.Subrs, f.Subrs) {
			continue
		}
		if sub.Private == nil || samePrivate(sub.Private, f.Private) {
			return k
		}
	}
	return -1
}

// samePrivate reports whether a and b describe the same Private DICT.
// The offset of the subroutines is ignored.
func samePrivate(a, b *PrivateDict) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	x, y := *a, *b
	x.Subrs, y.Subrs = nil, nil
	return reflect.DeepEqual(x, y)
}

// sameSubrs reports whether a and b are the same subroutine pool.
func sameSubrs(a, b charstring.Subrs) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
