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
	"iter"

	"seehuhn.de/go/pdfsvg/font/parser"
)

// Lexer splits a Type 2 charstring into lexemes.
//
// The lexer never fails.  If a token is cut off by the end of the input,
// EndOfInput is returned and Err reports the truncation.
type Lexer struct {
	p   *parser.Parser
	err error
}

// NewLexer returns a new lexer which reads from code.
func NewLexer(code []byte) *Lexer {
	return &Lexer{p: parser.New("charstring", code)}
}

// Read returns the next lexeme.
func (lx *Lexer) Read() Lexeme {
	if lx.err != nil {
		return EndOfInput
	}
	b0, err := lx.p.PeekUInt8()
	if err != nil {
		return EndOfInput
	}

	if b0 == 28 || b0 >= 32 {
		x, err := lx.p.ReadNumber()
		if err != nil {
			lx.err = ErrTruncated
			return EndOfInput
		}
		return Operand(x)
	}

	lx.p.ReadUInt8()
	op := OpCode(b0)
	if b0 == 12 {
		b1, err := lx.p.ReadUInt8()
		if err != nil {
			lx.err = ErrTruncated
			return EndOfInput
		}
		op = op<<8 | OpCode(b1)
	}
	return Operator(op)
}

// ReadRaw returns the next n bytes of input without interpreting them.
// This is used for the mask bytes of hintmask and cntrmask operators.
func (lx *Lexer) ReadRaw(n int) ([]byte, bool) {
	if lx.err != nil {
		return nil, false
	}
	buf, err := lx.p.ReadBytes(n)
	if err != nil {
		lx.err = ErrTruncated
		return nil, false
	}
	return buf, true
}

// Err returns ErrTruncated if the input ended in the middle of a token,
// and nil otherwise.
func (lx *Lexer) Err() error {
	return lx.err
}

// All returns the remaining lexemes as a sequence.  The sequence ends
// before EndOfInput.
func (lx *Lexer) All() iter.Seq[Lexeme] {
	return func(yield func(Lexeme) bool) {
		for {
			l := lx.Read()
			if l.Kind == KindEndOfInput || !yield(l) {
				return
			}
		}
	}
}
