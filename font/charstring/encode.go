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

package charstring

import (
	"math"

	"seehuhn.de/go/pdfsvg/font/parser"
)

// Encode converts a sequence of lexemes back into the binary charstring
// format.  EndOfInput lexemes are skipped.
func Encode(code []Lexeme) []byte {
	w := parser.NewWriter(4 * len(code))
	for _, l := range code {
		switch l.Kind {
		case KindOperand:
			encodeOperand(w, l.Value)
		case KindOperator:
			w.WriteBytes(l.Op.Bytes())
			w.WriteBytes(l.Mask)
		}
	}
	return w.Bytes()
}

// Largest value representable in 16.16 fixed point.
const maxFixed = 32767 + 65535.0/65536

// encodeOperand writes x in the shortest form.  Values outside the range
// of the 16.16 fixed point format are clamped.
func encodeOperand(w *parser.Writer, x float64) {
	x = min(max(x, -32768), maxFixed)
	if x == math.Trunc(x) && x >= -32768 && x <= 32767 {
		w.WriteInteger(int32(x))
		return
	}

	// 16.16 fixed point
	w.WriteUInt8(255)
	w.WriteUInt32(uint32(int32(math.Round(x * 65536))))
}
