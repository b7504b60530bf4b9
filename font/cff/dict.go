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

// dictEntry is one operator of a DICT, together with its operands.
type dictEntry struct {
	op   dictOp
	args []float64
}

var errCorruptDict = invalidSince("corrupt DICT")

// decodeDict splits DICT data into operators and operands.
func decodeDict(buf []byte) ([]dictEntry, error) {
	p := parser.New("DICT", buf)

	var res []dictEntry
	var stack []float64
	for p.Pos() < p.Size() {
		b0, _ := p.PeekUInt8()
		switch {
		case b0 <= 21:
			p.ReadUInt8()
			op := dictOp(b0)
			if b0 == 12 {
				b1, err := p.ReadUInt8()
				if err != nil {
					return nil, errCorruptDict
				}
				op = op<<8 | dictOp(b1)
			}
			res = append(res, dictEntry{op: op, args: stack})
			stack = nil
		case b0 <= 27, b0 == 31, b0 == 255: // reserved
			return nil, errCorruptDict
		default:
			x, err := p.ReadNumber()
			if err != nil {
				return nil, errCorruptDict
			}
			stack = append(stack, x)
		}
	}
	if len(stack) > 0 {
		return nil, errCorruptDict
	}
	return res, nil
}

// encodeDict writes the DICT entries, operands before operators.
func encodeDict(w *parser.Writer, entries []dictEntry) {
	for _, e := range entries {
		for _, x := range e.args {
			w.WriteNumber(x)
		}
		if e.op > 255 {
			w.WriteUInt8(12)
		}
		w.WriteUInt8(byte(e.op))
	}
}

type dictOp uint16

func (d dictOp) String() string {
	if d < 256 {
		return fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("12 %d", d&0xff)
}

const (
	// top DICT operators
	opVersion            dictOp = 0x0000
	opNotice             dictOp = 0x0001
	opFullName           dictOp = 0x0002
	opFamilyName         dictOp = 0x0003
	opWeight             dictOp = 0x0004
	opFontBBox           dictOp = 0x0005
	opUniqueID           dictOp = 0x000D
	opXUID               dictOp = 0x000E
	opCharset            dictOp = 0x000F
	opEncoding           dictOp = 0x0010
	opCharStrings        dictOp = 0x0011
	opPrivate            dictOp = 0x0012
	opCopyright          dictOp = 0x0C00
	opIsFixedPitch       dictOp = 0x0C01
	opItalicAngle        dictOp = 0x0C02
	opUnderlinePosition  dictOp = 0x0C03
	opUnderlineThickness dictOp = 0x0C04
	opPaintType          dictOp = 0x0C05
	opCharstringType     dictOp = 0x0C06
	opFontMatrix         dictOp = 0x0C07
	opStrokeWidth        dictOp = 0x0C08
	opSyntheticBase      dictOp = 0x0C14
	opPostScript         dictOp = 0x0C15
	opBaseFontName       dictOp = 0x0C16
	opBaseFontBlend      dictOp = 0x0C17
	opROS                dictOp = 0x0C1E
	opCIDFontVersion     dictOp = 0x0C1F
	opCIDFontRevision    dictOp = 0x0C20
	opCIDFontType        dictOp = 0x0C21
	opCIDCount           dictOp = 0x0C22
	opUIDBase            dictOp = 0x0C23
	opFDArray            dictOp = 0x0C24
	opFDSelect           dictOp = 0x0C25
	opFontName           dictOp = 0x0C26

	// private DICT operators
	opBlueValues        dictOp = 0x0006
	opOtherBlues        dictOp = 0x0007
	opFamilyBlues       dictOp = 0x0008
	opFamilyOtherBlues  dictOp = 0x0009
	opStdHW             dictOp = 0x000A
	opStdVW             dictOp = 0x000B
	opSubrs             dictOp = 0x0013
	opDefaultWidthX     dictOp = 0x0014
	opNominalWidthX     dictOp = 0x0015
	opBlueScale         dictOp = 0x0C09
	opBlueShift         dictOp = 0x0C0A
	opBlueFuzz          dictOp = 0x0C0B
	opStemSnapH         dictOp = 0x0C0C
	opStemSnapV         dictOp = 0x0C0D
	opForceBold         dictOp = 0x0C0E
	opLanguageGroup     dictOp = 0x0C11
	opExpansionFactor   dictOp = 0x0C12
	opInitialRandomSeed dictOp = 0x0C13
)
