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

	"golang.org/x/exp/slices"

	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsvg/font/parser"
)

// readEncoding reads a custom built-in encoding.  The result maps
// character codes to glyph indices, with 0 for unused codes.
func readEncoding(p *parser.Parser, charset []int32) ([]glyph.ID, error) {
	format, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}

	res := make([]glyph.ID, 256)
	current := glyph.ID(1)
	switch format & 127 {
	case 0:
		nCodes, err := p.ReadUInt8()
		if err != nil {
			return nil, err
		}
		if int(nCodes) >= len(charset) {
			return nil, invalidSince("encoding too long")
		}
		codes, err := p.ReadBytes(int(nCodes))
		if err != nil {
			return nil, err
		}
		for _, c := range codes {
			if res[c] != 0 {
				return nil, invalidSince("invalid format 0 encoding")
			}
			res[c] = current
			current++
		}
	case 1:
		nRanges, err := p.ReadUInt8()
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(nRanges); i++ {
			first, err := p.ReadUInt8()
			if err != nil {
				return nil, err
			}
			nLeft, err := p.ReadUInt8()
			if err != nil {
				return nil, err
			}
			if int(first)+int(nLeft) > 255 {
				return nil, invalidSince("invalid format 1 encoding")
			}
			for j := int(first); j <= int(first)+int(nLeft); j++ {
				if int(current) >= len(charset) {
					return nil, invalidSince("encoding too long")
				} else if res[j] != 0 {
					return nil, invalidSince("invalid format 1 encoding")
				}
				res[j] = current
				current++
			}
		}
	default:
		return nil, invalidSince(fmt.Sprintf("encoding format %d", format&127))
	}

	if format&128 != 0 {
		lookup := make(map[int32]glyph.ID, len(charset))
		for gid, sid := range charset {
			if _, seen := lookup[sid]; !seen {
				lookup[sid] = glyph.ID(gid)
			}
		}
		nSups, err := p.ReadUInt8()
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(nSups); i++ {
			code, err := p.ReadUInt8()
			if err != nil {
				return nil, err
			} else if res[code] != 0 {
				return nil, invalidSince("invalid encoding supplement")
			}
			sid, err := p.ReadUInt16()
			if err != nil {
				return nil, err
			}
			res[code] = lookup[int32(sid)]
		}
	}

	return res, nil
}

// encodeEncoding returns the binary form of a custom encoding.  The
// glyphs 1, ..., n are listed in the main table, where n is as large as
// possible.  All other codes go into the supplement.
func encodeEncoding(encoding []glyph.ID, charset []int32) ([]byte, error) {
	type suppl struct {
		code uint8
		gid  glyph.ID
	}
	var extra []suppl
	codes := map[glyph.ID]uint8{}
	for code, gid := range encoding {
		if gid == 0 {
			continue
		}
		if int(gid) >= len(charset) {
			return nil, invalidSince("encoding refers to missing glyph")
		}
		c8 := uint8(code)
		if _, ok := codes[gid]; ok {
			extra = append(extra, suppl{c8, gid})
			continue
		}
		codes[gid] = c8
	}

	var n glyph.ID
	for n < 255 {
		if _, ok := codes[n+1]; !ok {
			break
		}
		n++
	}
	for gid, code := range codes {
		if gid > n {
			extra = append(extra, suppl{code, gid})
		}
	}
	slices.SortFunc(extra, func(a, b suppl) int {
		return int(a.code) - int(b.code)
	})

	type seg struct {
		firstCode uint8
		nLeft     uint8
	}
	var ss []seg
	if n > 0 {
		startGid := glyph.ID(1)
		startCode := codes[startGid]
		for gid := glyph.ID(2); gid <= n; gid++ {
			code := codes[gid]
			if int(gid-startGid) != int(code)-int(startCode) {
				ss = append(ss, seg{startCode, uint8(gid - startGid - 1)})
				startGid = gid
				startCode = code
			}
		}
		ss = append(ss, seg{startCode, uint8(n - startGid)})
	}
	if len(ss) > 255 || len(extra) > 255 {
		return nil, invalidSince("too many encoding entries")
	}

	format0Len := 2 + int(n)
	format1Len := 2 + len(ss)*2

	w := parser.NewWriter(min(format0Len, format1Len) + 1 + 3*len(extra))
	var format uint8
	if len(extra) > 0 {
		format = 128
	}
	if format0Len <= format1Len {
		w.WriteUInt8(format)
		w.WriteUInt8(uint8(n))
		for gid := glyph.ID(1); gid <= n; gid++ {
			w.WriteUInt8(codes[gid])
		}
	} else {
		w.WriteUInt8(format | 1)
		w.WriteUInt8(uint8(len(ss)))
		for _, s := range ss {
			w.WriteUInt8(s.firstCode)
			w.WriteUInt8(s.nLeft)
		}
	}

	if len(extra) > 0 {
		w.WriteUInt8(uint8(len(extra)))
		for _, s := range extra {
			w.WriteUInt8(s.code)
			w.WriteUInt16(uint16(charset[s.gid]))
		}
	}

	return w.Bytes(), nil
}

// standardEncoding returns the glyph indices for the codes of the
// Adobe Standard Encoding.  If several glyphs carry the same name, the
// first one is used.
func standardEncoding(glyphNames []string) []glyph.ID {
	lookup := make(map[string]glyph.ID, len(glyphNames))
	for gid, name := range glyphNames {
		if _, seen := lookup[name]; !seen {
			lookup[name] = glyph.ID(gid)
		}
	}

	res := make([]glyph.ID, 256)
	for code, name := range psenc.StandardEncoding {
		if name == ".notdef" {
			continue
		}
		res[code] = lookup[name]
	}
	return res
}

func isStandardEncoding(encoding []glyph.ID, glyphNames []string) bool {
	std := standardEncoding(glyphNames)
	if len(encoding) != len(std) {
		return false
	}
	for code, gid := range encoding {
		if std[code] != gid {
			return false
		}
	}
	return true
}
