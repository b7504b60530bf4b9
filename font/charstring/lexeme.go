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
	"fmt"
	"strconv"
)

// Kind distinguishes the different types of lexemes.
type Kind uint8

// These are the possible values of Lexeme.Kind.
const (
	KindEndOfInput Kind = iota
	KindOperand
	KindOperator
)

// Lexeme is a single token of a Type 2 charstring.
type Lexeme struct {
	Kind  Kind
	Value float64 // for KindOperand
	Op    OpCode  // for KindOperator

	// Mask holds the mask bytes following a hintmask or cntrmask operator.
	Mask []byte
}

// EndOfInput is returned by the lexer once the input is exhausted.
var EndOfInput = Lexeme{Kind: KindEndOfInput}

// Operand returns a lexeme representing the number x.
func Operand(x float64) Lexeme {
	return Lexeme{Kind: KindOperand, Value: x}
}

// Operator returns a lexeme representing the operator op.
func Operator(op OpCode) Lexeme {
	return Lexeme{Kind: KindOperator, Op: op}
}

// IsOperator reports whether l is the given operator.
func (l Lexeme) IsOperator(op OpCode) bool {
	return l.Kind == KindOperator && l.Op == op
}

func (l Lexeme) String() string {
	switch l.Kind {
	case KindOperand:
		return strconv.FormatFloat(l.Value, 'g', -1, 64)
	case KindOperator:
		if l.Mask != nil {
			return fmt.Sprintf("%s %08b", l.Op, l.Mask)
		}
		return l.Op.String()
	default:
		return "EOI"
	}
}
