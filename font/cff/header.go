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

	"seehuhn.de/go/pdfsvg/font/parser"
)

// Header is the fixed header at the start of a CFF font set.
type Header struct {
	Major   uint8
	Minor   uint8
	HdrSize uint8
	OffSize uint8
}

func readHeader(p *parser.Parser) (*Header, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	h := &Header{
		Major:   buf[0],
		Minor:   buf[1],
		HdrSize: buf[2],
		OffSize: buf[3],
	}
	if h.Major != 1 {
		return nil, notSupported(fmt.Sprintf("CFF version %d.%d", h.Major, h.Minor))
	}
	if h.HdrSize < 4 {
		return nil, invalidSince("header too short")
	}
	return h, nil
}

// encodeHeader returns a version 1.0 header.  The offset size should be
// large enough for all offsets in the file.
func encodeHeader(offSize int) []byte {
	return []byte{1, 0, 4, byte(offSize)}
}
