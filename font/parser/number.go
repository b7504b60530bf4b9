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

package parser

import (
	"errors"
	"strconv"
)

// ErrReservedNumber is returned by ReadNumber when the leading byte is not
// the start of a number.
var ErrReservedNumber = errors.New("reserved operand encoding")

// IsNumberStart reports whether b is the first byte of an encoded number.
func IsNumberStart(b byte) bool {
	return b >= 28 && b != 31
}

// ReadNumber reads one variable-length encoded number, using the
// encoding of operands in CFF DICT data.  The leading byte 255 denotes
// a 16.16 fixed point value, as used in Type 2 charstrings.
func (p *Parser) ReadNumber() (float64, error) {
	b0, err := p.ReadUInt8()
	if err != nil {
		return 0, err
	}
	start := p.pos - 1

	var x float64
	switch {
	case b0 == 28:
		var v int16
		v, err = p.ReadInt16()
		x = float64(v)
	case b0 == 29:
		var v uint32
		v, err = p.ReadUInt32()
		x = float64(int32(v))
	case b0 == 30:
		x, err = p.readReal()
	case b0 >= 32 && b0 <= 246:
		x = float64(int32(b0) - 139)
	case b0 >= 247 && b0 <= 250:
		var b1 uint8
		b1, err = p.ReadUInt8()
		x = float64((int32(b0)-247)*256 + int32(b1) + 108)
	case b0 >= 251 && b0 <= 254:
		var b1 uint8
		b1, err = p.ReadUInt8()
		x = float64(-(int32(b0)-251)*256 - int32(b1) - 108)
	case b0 == 255:
		var v uint32
		v, err = p.ReadUInt32()
		x = float64(int32(v)) / 65536
	default:
		err = ErrReservedNumber
	}
	p.lastRead = start
	if err != nil {
		if err == ErrReservedNumber {
			return 0, p.Error("byte %d: %w", b0, err)
		}
		return 0, err
	}
	return x, nil
}

// readReal decodes a nibble-packed real number, without the leading 30.
func (p *Parser) readReal() (float64, error) {
	var s []byte
	for {
		b, err := p.ReadUInt8()
		if err != nil {
			return 0, err
		}
		for _, nibble := range [2]byte{b >> 4, b & 15} {
			switch nibble {
			case 0x0a:
				s = append(s, '.')
			case 0x0b:
				s = append(s, 'e')
			case 0x0c:
				s = append(s, 'e', '-')
			case 0x0d:
				return 0, p.Error("reserved nibble in real number")
			case 0x0e:
				s = append(s, '-')
			case 0x0f:
				if len(s) == 0 {
					return 0, nil
				}
				x, err := strconv.ParseFloat(string(s), 64)
				if err != nil {
					return 0, p.Error("malformed real number %q", s)
				}
				return x, nil
			default:
				s = append(s, '0'+nibble)
			}
		}
	}
}
