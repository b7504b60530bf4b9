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
	"math"
	"strconv"
)

// Writer is a positionable output buffer.
//
// The length of the output is the largest position written to so far.
// Setting the position backwards allows to patch data which was written
// earlier.
type Writer struct {
	buf    []byte
	pos    int
	length int
}

// NewWriter allocates a new Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, capacity)}
}

// Pos returns the current writing position.
func (w *Writer) Pos() int {
	return w.pos
}

// SetPos changes the writing position.  Moving beyond the current end of
// the data extends the output with zero bytes.
func (w *Writer) SetPos(pos int) {
	if pos < 0 {
		pos = 0
	}
	w.ensure(pos)
	w.pos = pos
	if pos > w.length {
		w.length = pos
	}
}

// Len returns the length of the output written so far.
func (w *Writer) Len() int {
	return w.length
}

// Bytes returns the data written so far.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.length]
}

// ensure makes sure the buffer can hold n bytes.
func (w *Writer) ensure(n int) {
	if n <= len(w.buf) {
		return
	}
	newSize := max(2*len(w.buf), n+1024)
	buf := make([]byte, newSize)
	copy(buf, w.buf[:w.length])
	w.buf = buf
}

// Write appends p at the current position.  It implements io.Writer and
// never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.WriteBytes(p)
	return len(p), nil
}

// WriteBytes writes p at the current position.
func (w *Writer) WriteBytes(p []byte) {
	end := w.pos + len(p)
	w.ensure(end)
	copy(w.buf[w.pos:], p)
	w.pos = end
	if end > w.length {
		w.length = end
	}
}

// WriteUInt8 writes a single byte.
func (w *Writer) WriteUInt8(x uint8) {
	w.WriteBytes([]byte{x})
}

// WriteUInt16 writes a big-endian uint16 value.
func (w *Writer) WriteUInt16(x uint16) {
	w.WriteBytes([]byte{byte(x >> 8), byte(x)})
}

// WriteInt16 writes a big-endian int16 value.
func (w *Writer) WriteInt16(x int16) {
	w.WriteUInt16(uint16(x))
}

// WriteUInt32 writes a big-endian uint32 value.
func (w *Writer) WriteUInt32(x uint32) {
	w.WriteBytes([]byte{byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)})
}

// WriteOffset writes x as a big-endian offset of offSize bytes.
func (w *Writer) WriteOffset(offSize int, x uint32) {
	var buf [4]byte
	for i := offSize - 1; i >= 0; i-- {
		buf[i] = byte(x)
		x >>= 8
	}
	w.WriteBytes(buf[:offSize])
}

// OffSize returns the smallest offset size (in bytes) which can represent
// the value maxOffset.
func OffSize(maxOffset uint32) int {
	switch {
	case maxOffset < 1<<8:
		return 1
	case maxOffset < 1<<16:
		return 2
	case maxOffset < 1<<24:
		return 3
	default:
		return 4
	}
}

// WriteNumber writes x using the operand encoding of CFF DICT data.
// Integral values which fit into 32 bits use the integer encodings,
// all other values are written as real numbers.
func (w *Writer) WriteNumber(x float64) {
	if x == math.Trunc(x) && x >= math.MinInt32 && x <= math.MaxInt32 {
		w.WriteInteger(int32(x))
		return
	}
	w.WriteReal(x)
}

// WriteInteger writes x using the shortest integer encoding.
func (w *Writer) WriteInteger(x int32) {
	switch {
	case x >= -107 && x <= 107:
		w.WriteUInt8(byte(x + 139))
	case x >= 108 && x <= 1131:
		x -= 108
		w.WriteBytes([]byte{byte(x>>8 + 247), byte(x)})
	case x >= -1131 && x <= -108:
		x = -x - 108
		w.WriteBytes([]byte{byte(x>>8 + 251), byte(x)})
	case x >= -32768 && x <= 32767:
		w.WriteBytes([]byte{28, byte(x >> 8), byte(x)})
	default:
		w.WriteBytes([]byte{29, byte(x >> 24), byte(x >> 16), byte(x >> 8), byte(x)})
	}
}

// WriteReal writes x as a nibble-packed real number, starting with the
// marker byte 30.
func (w *Writer) WriteReal(x float64) {
	s := strconv.FormatFloat(x, 'g', -1, 64)

	nibbles := make([]byte, 0, len(s)+2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			nibbles = append(nibbles, c-'0')
		case c == '.':
			nibbles = append(nibbles, 0x0a)
		case c == 'e' || c == 'E':
			if i+1 < len(s) && s[i+1] == '-' {
				nibbles = append(nibbles, 0x0c)
				i++
			} else {
				nibbles = append(nibbles, 0x0b)
				if i+1 < len(s) && s[i+1] == '+' {
					i++
				}
			}
		case c == '-':
			nibbles = append(nibbles, 0x0e)
		}
	}
	nibbles = append(nibbles, 0x0f)
	if len(nibbles)%2 != 0 {
		nibbles = append(nibbles, 0x0f)
	}

	out := make([]byte, 1, 1+len(nibbles)/2)
	out[0] = 30
	for i := 0; i < len(nibbles); i += 2 {
		out = append(out, nibbles[i]<<4|nibbles[i+1])
	}
	w.WriteBytes(out)
}
