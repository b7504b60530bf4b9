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

// Package parser implements positionable readers and writers for the
// binary data structures found in font files.
package parser

import (
	"fmt"
	"io"
)

// Parser allows to read data from an in-memory font file.
//
// All slices returned by the parser point into the underlying buffer.
// The buffer must not be modified while the parser, or any data obtained
// from it, is in use.
type Parser struct {
	buf        []byte
	regionName string

	pos      int
	lastRead int
}

// New allocates a new Parser which reads from buf.
// The region name is used in error messages.
func New(regionName string, buf []byte) *Parser {
	return &Parser{
		buf:        buf,
		regionName: regionName,
	}
}

// SetRegion changes the region name used in error messages.
func (p *Parser) SetRegion(name string) {
	p.regionName = name
}

// Size returns the total size of the underlying buffer.
func (p *Parser) Size() int {
	return len(p.buf)
}

// Pos returns the current reading position.
func (p *Parser) Pos() int {
	return p.pos
}

// SeekPos changes the reading position.
// Seeking to the end of the buffer is allowed.
func (p *Parser) SeekPos(pos int) error {
	if pos < 0 || pos > len(p.buf) {
		p.lastRead = pos
		return p.Error("seek to invalid position %d", pos)
	}
	p.pos = pos
	return nil
}

// ReadBytes reads n bytes, starting at the current position.  The returned
// slice is a view into the underlying buffer.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	p.lastRead = p.pos
	if n < 0 {
		n = 0
	}
	if n > len(p.buf)-p.pos {
		return nil, p.Error("read of %d bytes failed: %w", n, io.ErrUnexpectedEOF)
	}
	res := p.buf[p.pos : p.pos+n : p.pos+n]
	p.pos += n
	return res, nil
}

// ReadUInt8 reads a single uint8 value from the current position.
func (p *Parser) ReadUInt8() (uint8, error) {
	buf, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// PeekUInt8 returns the byte at the current position without consuming it.
func (p *Parser) PeekUInt8() (uint8, error) {
	if p.pos >= len(p.buf) {
		p.lastRead = p.pos
		return 0, p.Error("peek failed: %w", io.ErrUnexpectedEOF)
	}
	return p.buf[p.pos], nil
}

// ReadUInt16 reads a single big-endian uint16 value from the current position.
func (p *Parser) ReadUInt16() (uint16, error) {
	buf, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// ReadInt16 reads a single big-endian int16 value from the current position.
func (p *Parser) ReadInt16() (int16, error) {
	val, err := p.ReadUInt16()
	return int16(val), err
}

// ReadUInt32 reads a single big-endian uint32 value from the current position.
func (p *Parser) ReadUInt32() (uint32, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// ReadOffset reads a big-endian offset of offSize bytes, where offSize
// must be between 1 and 4.
func (p *Parser) ReadOffset(offSize int) (uint32, error) {
	if offSize < 1 || offSize > 4 {
		p.lastRead = p.pos
		return 0, p.Error("invalid offset size %d", offSize)
	}
	buf, err := p.ReadBytes(offSize)
	if err != nil {
		return 0, err
	}
	var x uint32
	for _, b := range buf {
		x = x<<8 | uint32(b)
	}
	return x, nil
}

// Error returns an error which is annotated with the region name and
// the position of the last read.
func (p *Parser) Error(format string, a ...interface{}) error {
	regionName := p.regionName
	if regionName == "" {
		regionName = "header"
	}
	a = append([]interface{}{regionName, p.lastRead}, a...)
	return fmt.Errorf("%s%+d: "+format, a...)
}
