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
	"errors"
	"fmt"

	"seehuhn.de/go/pdfsvg/font/parser"
)

// readCharset returns the SIDs (or CIDs) of the nGlyphs glyphs.  Offsets
// 0, 1 and 2 select the predefined charsets, negative offsets are treated
// as 0.  Glyph 0 always maps to identifier 0.
func readCharset(p *parser.Parser, offset int32, nGlyphs int) ([]int32, error) {
	if offset < 0 {
		offset = 0
	}
	if int(offset) < len(predefinedCharsets) {
		return padCharset(predefinedCharsets[offset], nGlyphs), nil
	}

	err := p.SeekPos(int(offset))
	if err != nil {
		return nil, err
	}
	format, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}

	charset := make([]int32, 1, max(nGlyphs, 1))
	switch format {
	case 0:
		for i := 1; i < nGlyphs; i++ {
			sid, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			charset = append(charset, int32(sid))
		}
	case 1, 2:
		for len(charset) < nGlyphs {
			first, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			var nLeft int
			if format == 1 {
				n, err := p.ReadUInt8()
				if err != nil {
					return nil, err
				}
				nLeft = int(n)
			} else {
				n, err := p.ReadUInt16()
				if err != nil {
					return nil, err
				}
				nLeft = int(n)
			}
			for i := 0; i <= nLeft; i++ {
				charset = append(charset, int32(first)+int32(i))
			}
		}
	default:
		return nil, invalidSince(fmt.Sprintf("charset format %d", format))
	}

	return padCharset(charset, nGlyphs), nil
}

// padCharset returns a charset of length exactly nGlyphs, truncating
// or padding with 0 as needed.  The argument is never modified.
func padCharset(charset []int32, nGlyphs int) []int32 {
	res := make([]int32, nGlyphs)
	copy(res, charset)
	return res
}

var errInvalidCharset = errors.New("cff: invalid charset")

// encodeCharset returns the shortest binary encoding of the charset.
// The first entry must be 0 and is not included in the output.
func encodeCharset(names []int32) ([]byte, error) {
	if len(names) == 0 || names[0] != 0 {
		return nil, errInvalidCharset
	}
	names = names[1:]

	// find runs of consecutive identifiers
	var runs []int
	for i := 0; i < len(names); i++ {
		if names[i] < 0 || names[i] > 0xFFFF {
			return nil, errInvalidCharset
		}
		if i == 0 || names[i] != names[i-1]+1 {
			runs = append(runs, i)
		}
	}
	runs = append(runs, len(names))

	length0 := 1 + 2*len(names)

	nRanges1 := 0
	for i := 0; i < len(runs)-1; i++ {
		d := runs[i+1] - runs[i]
		nRanges1 += (d + 255) / 256
	}
	length1 := 1 + 3*nRanges1

	length2 := 1 + 4*(len(runs)-1)

	w := parser.NewWriter(min(length0, length1, length2))
	switch {
	case length0 <= length1 && length0 <= length2:
		w.WriteUInt8(0)
		for _, name := range names {
			w.WriteUInt16(uint16(name))
		}
	case length1 < length2:
		w.WriteUInt8(1)
		for i := 0; i < len(runs)-1; i++ {
			name := names[runs[i]]
			left := runs[i+1] - runs[i]
			for left > 0 {
				d := min(left-1, 255)
				w.WriteUInt16(uint16(name))
				w.WriteUInt8(uint8(d))
				name += int32(d + 1)
				left -= d + 1
			}
		}
	default:
		w.WriteUInt8(2)
		for i := 0; i < len(runs)-1; i++ {
			w.WriteUInt16(uint16(names[runs[i]]))
			w.WriteUInt16(uint16(runs[i+1] - runs[i] - 1))
		}
	}
	return w.Bytes(), nil
}
