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

	"seehuhn.de/go/geom/vec"
)

// Merge combines the glyphs of an accented character into a single
// sequence of lexemes.  The accent is shifted so that its origin lands on
// (dx, dy), relative to the origin of the base glyph.  Hints of the accent
// are dropped.
//
// The inputs are the subroutine-free forms of the two charstrings.
// A nil charstring is treated as empty.  The result always ends in
// exactly one endchar operator.
func Merge(base, accent *CharString, dx, dy float64) []Lexeme {
	var res []Lexeme
	if base != nil {
		for _, l := range base.ContentInlinedSubrs {
			if l.IsOperator(OpEndchar) {
				continue
			}
			res = append(res, l)
		}
	}
	pen := endPoint(res)

	if accent != nil {
		var args []Lexeme
		moved := false
		for _, l := range accent.ContentInlinedSubrs {
			if l.Kind == KindOperand {
				args = append(args, l)
				continue
			}
			switch {
			case isHintOp(l.Op), l.Op == OpEndchar:
				// dropped
			case !moved && (l.Op == OpRmoveto || l.Op == OpHmoveto || l.Op == OpVmoveto):
				start := vec.Vec2{X: dx, Y: dy}
				if m, ok := moveDelta(l.Op, args); ok {
					start.X += m.X
					start.Y += m.Y
				}
				res = append(res,
					Operand(start.X-pen.X), Operand(start.Y-pen.Y),
					Operator(OpRmoveto))
				moved = true
			default:
				res = append(res, args...)
				res = append(res, l)
			}
			args = args[:0]
		}
	}

	return append(res, Operator(OpEndchar))
}

func moveDelta(op OpCode, args []Lexeme) (vec.Vec2, bool) {
	switch {
	case op == OpRmoveto && len(args) >= 2:
		return vec.Vec2{X: args[len(args)-2].Value, Y: args[len(args)-1].Value}, true
	case op == OpHmoveto && len(args) >= 1:
		return vec.Vec2{X: args[len(args)-1].Value}, true
	case op == OpVmoveto && len(args) >= 1:
		return vec.Vec2{Y: args[len(args)-1].Value}, true
	}
	return vec.Vec2{}, false
}

// endPoint returns the current point after executing the path
// construction operators in code.
func endPoint(code []Lexeme) vec.Vec2 {
	var pen vec.Vec2
	var s []float64
	for _, l := range code {
		if l.Kind == KindOperand {
			s = append(s, l.Value)
			continue
		}

		switch l.Op {
		case OpRmoveto, OpRlineto, OpRrcurveto, OpRcurveline, OpRlinecurve:
			for i := 0; i+1 < len(s); i += 2 {
				pen.X += s[i]
				pen.Y += s[i+1]
			}
		case OpHmoveto:
			if len(s) > 0 {
				pen.X += s[len(s)-1]
			}
		case OpVmoveto:
			if len(s) > 0 {
				pen.Y += s[len(s)-1]
			}
		case OpHlineto, OpVlineto:
			horizontal := l.Op == OpHlineto
			for _, z := range s {
				if horizontal {
					pen.X += z
				} else {
					pen.Y += z
				}
				horizontal = !horizontal
			}
		case OpHhcurveto:
			if len(s)%4 != 0 {
				pen.Y += s[0]
				s = s[1:]
			}
			for ; len(s) >= 4; s = s[4:] {
				pen.X += s[0] + s[1] + s[3]
				pen.Y += s[2]
			}
		case OpVvcurveto:
			if len(s)%4 != 0 {
				pen.X += s[0]
				s = s[1:]
			}
			for ; len(s) >= 4; s = s[4:] {
				pen.X += s[1]
				pen.Y += s[0] + s[2] + s[3]
			}
		case OpHvcurveto, OpVhcurveto:
			horizontal := l.Op == OpHvcurveto
			for ; len(s) >= 4; s = s[4:] {
				var extra float64
				if len(s) == 5 {
					extra = s[4]
				}
				if horizontal {
					pen.X += s[0] + s[1] + extra
					pen.Y += s[2] + s[3]
				} else {
					pen.X += s[1] + s[3]
					pen.Y += s[0] + s[2] + extra
				}
				horizontal = !horizontal
			}
		case OpFlex:
			for i := 0; i+1 < len(s) && i < 12; i += 2 {
				pen.X += s[i]
				pen.Y += s[i+1]
			}
		case OpHflex:
			if len(s) >= 7 {
				pen.X += s[0] + s[1] + s[3] + s[4] + s[5] + s[6]
			}
		case OpHflex1:
			if len(s) >= 9 {
				pen.X += s[0] + s[2] + s[4] + s[5] + s[6] + s[8]
			}
		case OpFlex1:
			if len(s) >= 11 {
				var dx, dy float64
				for i := 0; i < 10; i += 2 {
					dx += s[i]
					dy += s[i+1]
				}
				if math.Abs(dx) > math.Abs(dy) {
					pen.X += dx + s[10]
				} else {
					pen.Y += dy + s[10]
				}
			}
		}
		s = s[:0]
	}
	return pen
}
