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

	"seehuhn.de/go/pdfsvg/font/parser"
)

// readIndex reads an INDEX at the current position.  The returned
// slices are views into the parser's buffer.
func readIndex(p *parser.Parser) ([][]byte, error) {
	count, err := p.ReadUInt16()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	offSize, err := p.ReadUInt8()
	if err != nil {
		return nil, err
	}
	if offSize < 1 || offSize > 4 {
		return nil, p.Error("invalid INDEX offset size %d", offSize)
	}

	offsets := make([]int, int(count)+1)
	for i := range offsets {
		offs, err := p.ReadOffset(int(offSize))
		if err != nil {
			return nil, err
		}
		if i == 0 && offs != 1 || i > 0 && int(offs) < offsets[i-1]+1 {
			return nil, p.Error("invalid CFF INDEX")
		}
		offsets[i] = int(offs) - 1
	}

	body, err := p.ReadBytes(offsets[len(offsets)-1])
	if err != nil {
		return nil, err
	}

	res := make([][]byte, count)
	for i := range res {
		res[i] = body[offsets[i]:offsets[i+1]:offsets[i+1]]
	}
	return res, nil
}

var errIndexTooLarge = errors.New("cff: too many items for INDEX")

// writeIndex writes data as an INDEX, using the smallest possible offset
// size.
func writeIndex(w *parser.Writer, data [][]byte) error {
	count := len(data)
	if count >= 1<<16 {
		return errIndexTooLarge
	}
	w.WriteUInt16(uint16(count))
	if count == 0 {
		return nil
	}

	offs := uint32(1)
	for _, blob := range data {
		offs += uint32(len(blob))
	}
	offSize := parser.OffSize(offs)
	w.WriteUInt8(uint8(offSize))

	offs = 1
	w.WriteOffset(offSize, offs)
	for _, blob := range data {
		offs += uint32(len(blob))
		w.WriteOffset(offSize, offs)
	}
	for _, blob := range data {
		w.WriteBytes(blob)
	}
	return nil
}

// indexLength returns the number of bytes written by writeIndex.
func indexLength(data [][]byte) int {
	if len(data) == 0 {
		return 2
	}
	offs := uint32(1)
	for _, blob := range data {
		offs += uint32(len(blob))
	}
	offSize := parser.OffSize(offs)
	return 3 + (len(data)+1)*offSize + int(offs) - 1
}
