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

// Package charstring decodes Type 2 charstrings.
//
// A charstring is split into lexemes and subroutine calls are expanded.
// The operand stack is only tracked far enough to find the advance width
// and the accented character operands of a seac-style endchar; no
// outlines are computed.
package charstring

import (
	"errors"
	"fmt"
	"math"
)

// CharString is a decoded Type 2 charstring.
type CharString struct {
	// Content holds the lexemes of the charstring, without expanding
	// subroutine calls.
	Content []Lexeme

	// ContentInlinedSubrs holds the lexemes with all subroutine calls
	// replaced by the subroutine bodies.  The width operand and the
	// operands of an accented character endchar are removed.
	ContentInlinedSubrs []Lexeme

	// Width is the width operand, if one was present.  This value is
	// relative to NominalWidthX.
	Width *float64

	// Seac is set if the charstring describes an accented character.
	Seac *Seac
}

// Seac describes an accented character, composed of a base glyph and an
// accent glyph.  The character codes refer to the standard encoding.
type Seac struct {
	Adx, Ady float64
	Bchar    int
	Achar    int
}

// Empty returns a charstring with no content.
func Empty() *CharString {
	return &CharString{}
}

// Errors returned by Parse.
var (
	ErrTruncated         = errors.New("charstring: truncated input")
	ErrIncomplete        = errors.New("charstring: missing endchar")
	ErrInvalidSubroutine = errors.New("charstring: invalid subroutine index")
	ErrComputedIndex     = errors.New("charstring: computed subroutine index")
	ErrCallDepth         = errors.New("charstring: maximum call depth exceeded")
	ErrTooLong           = errors.New("charstring: too many lexemes after expanding subroutines")
	ErrStackOverflow     = errors.New("charstring: operand stack overflow")
	ErrStackUnderflow    = errors.New("charstring: operand stack underflow")
	ErrUnknownOperator   = errors.New("charstring: unknown operator")
)

const (
	maxCallDepth = 10
	maxStack     = 96 // the Type 2 limit is 48, but some fonts use more
	maxLexemes   = 1 << 16
)

type slot struct {
	value float64
	pos   int // index in ContentInlinedSubrs, -1 for computed values
}

type decoder struct {
	gsubrs Subrs
	subrs  Subrs

	res       *CharString
	stack     []slot
	nStems    int
	nLexemes  int
	widthDone bool
	finished  bool
}

// Parse decodes the charstring code.  The global and local subroutines
// are used to resolve callgsubr and callsubr operators.
func Parse(code []byte, gsubrs, subrs Subrs) (*CharString, error) {
	d := &decoder{
		gsubrs: gsubrs,
		subrs:  subrs,
		res:    &CharString{},
	}
	err := d.run(code, 0)
	if err != nil {
		return nil, err
	}
	if !d.finished {
		return nil, ErrIncomplete
	}

	inlined := d.res.ContentInlinedSubrs[:0]
	for _, l := range d.res.ContentInlinedSubrs {
		if l.Kind != KindEndOfInput {
			inlined = append(inlined, l)
		}
	}
	d.res.ContentInlinedSubrs = inlined

	return d.res, nil
}

func (d *decoder) run(code []byte, depth int) error {
	if depth > maxCallDepth {
		return ErrCallDepth
	}
	top := depth == 0

	lx := NewLexer(code)
	for !d.finished {
		l := lx.Read()
		if l.Kind == KindEndOfInput {
			return lx.Err()
		}
		d.nLexemes++
		if d.nLexemes > maxLexemes {
			return ErrTooLong
		}

		if l.Kind == KindOperand {
			if len(d.stack) >= maxStack {
				return ErrStackOverflow
			}
			d.stack = append(d.stack, slot{value: l.Value, pos: len(d.res.ContentInlinedSubrs)})
			d.record(l, top)
			d.inline(l)
			continue
		}

		switch op := l.Op; op {
		case OpCallsubr, OpCallgsubr:
			d.record(l, top)
			k := len(d.stack) - 1
			if k < 0 {
				return ErrStackUnderflow
			}
			idx := d.stack[k]
			d.stack = d.stack[:k]
			if idx.pos < 0 {
				return ErrComputedIndex
			}
			d.drop(idx.pos)

			pool := d.subrs
			if op == OpCallgsubr {
				pool = d.gsubrs
			}
			body, err := pool.Get(int(idx.value))
			if err != nil {
				return err
			}
			err = d.run(body, depth+1)
			if err != nil {
				return err
			}

		case OpReturn:
			d.record(l, top)
			return nil

		case OpEndchar:
			d.record(l, top)
			n := len(d.stack)
			d.setWidth(n == 1 || n > 4)
			if len(d.stack) == 4 {
				s := d.stack
				d.res.Seac = &Seac{
					Adx:   s[0].value,
					Ady:   s[1].value,
					Bchar: int(s[2].value),
					Achar: int(s[3].value),
				}
				for _, e := range s {
					d.drop(e.pos)
				}
			} else {
				d.inline(l)
			}
			d.stack = d.stack[:0]
			d.finished = true

		case OpHstem, OpVstem, OpHstemhm, OpVstemhm:
			d.setWidth(len(d.stack)%2 == 1)
			d.nStems += len(d.stack) / 2
			d.clear(l, top)

		case OpHintmask, OpCntrmask:
			// hstem and vstem hints directly before a hintmask may omit the
			// vstem operator
			d.setWidth(len(d.stack)%2 == 1)
			d.nStems += len(d.stack) / 2
			mask, ok := lx.ReadRaw((d.nStems + 7) / 8)
			if !ok {
				return ErrTruncated
			}
			l.Mask = mask
			d.clear(l, top)

		case OpRmoveto:
			d.setWidth(len(d.stack) > 2)
			d.clear(l, top)

		case OpHmoveto, OpVmoveto:
			d.setWidth(len(d.stack) > 1)
			d.clear(l, top)

		case OpRlineto, OpHlineto, OpVlineto, OpRrcurveto, OpRcurveline,
			OpRlinecurve, OpVvcurveto, OpHhcurveto, OpVhcurveto, OpHvcurveto,
			OpFlex, OpHflex, OpHflex1, OpFlex1, OpDotsection:
			d.clear(l, top)

		default:
			eff, ok := stackEffect[op]
			if !ok {
				return fmt.Errorf("%w %s", ErrUnknownOperator, op)
			}
			k := len(d.stack) - eff[0]
			if k < 0 {
				return ErrStackUnderflow
			}
			d.stack = d.stack[:k]
			for range eff[1] {
				d.stack = append(d.stack, slot{value: math.NaN(), pos: -1})
			}
			d.record(l, top)
			d.inline(l)
		}
	}
	return nil
}

// record appends l to the top-level content.
func (d *decoder) record(l Lexeme, top bool) {
	if top {
		d.res.Content = append(d.res.Content, l)
	}
}

// inline appends l to the content with expanded subroutines.
func (d *decoder) inline(l Lexeme) {
	d.res.ContentInlinedSubrs = append(d.res.ContentInlinedSubrs, l)
}

// drop marks an operand for removal from the inlined content.
func (d *decoder) drop(pos int) {
	if pos >= 0 {
		d.res.ContentInlinedSubrs[pos] = EndOfInput
	}
}

func (d *decoder) clear(l Lexeme, top bool) {
	d.record(l, top)
	d.inline(l)
	d.stack = d.stack[:0]
	d.widthDone = true
}

// setWidth is called for the first stack-clearing operator.
func (d *decoder) setWidth(isPresent bool) {
	if d.widthDone {
		return
	}
	d.widthDone = true
	if !isPresent {
		return
	}
	w := d.stack[0]
	x := w.value
	d.res.Width = &x
	d.drop(w.pos)
	d.stack = d.stack[1:]
}
