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

import "fmt"

// OpCode is a Type 2 charstring operator.  Escaped operators are
// represented as 0x0c00 plus the escape selector.
type OpCode uint16

// IsEscaped reports whether op is a two-byte operator.
func (op OpCode) IsEscaped() bool {
	return op>>8 == 12
}

// Bytes returns the binary encoding of the operator.
func (op OpCode) Bytes() []byte {
	if op.IsEscaped() {
		return []byte{12, byte(op)}
	}
	return []byte{byte(op)}
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	if op.IsEscaped() {
		return fmt.Sprintf("op(12 %d)", op&0xff)
	}
	return fmt.Sprintf("op(%d)", op)
}

// Type 2 charstring operators
const (
	OpHstem      OpCode = 0x0001
	OpVstem      OpCode = 0x0003
	OpVmoveto    OpCode = 0x0004
	OpRlineto    OpCode = 0x0005
	OpHlineto    OpCode = 0x0006
	OpVlineto    OpCode = 0x0007
	OpRrcurveto  OpCode = 0x0008
	OpCallsubr   OpCode = 0x000a
	OpReturn     OpCode = 0x000b
	OpEndchar    OpCode = 0x000e
	OpHstemhm    OpCode = 0x0012
	OpHintmask   OpCode = 0x0013
	OpCntrmask   OpCode = 0x0014
	OpRmoveto    OpCode = 0x0015
	OpHmoveto    OpCode = 0x0016
	OpVstemhm    OpCode = 0x0017
	OpRcurveline OpCode = 0x0018
	OpRlinecurve OpCode = 0x0019
	OpVvcurveto  OpCode = 0x001a
	OpHhcurveto  OpCode = 0x001b
	OpCallgsubr  OpCode = 0x001d
	OpVhcurveto  OpCode = 0x001e
	OpHvcurveto  OpCode = 0x001f

	OpDotsection OpCode = 0x0c00
	OpAnd        OpCode = 0x0c03
	OpOr         OpCode = 0x0c04
	OpNot        OpCode = 0x0c05
	OpAbs        OpCode = 0x0c09
	OpAdd        OpCode = 0x0c0a
	OpSub        OpCode = 0x0c0b
	OpDiv        OpCode = 0x0c0c
	OpNeg        OpCode = 0x0c0e
	OpEq         OpCode = 0x0c0f
	OpDrop       OpCode = 0x0c12
	OpPut        OpCode = 0x0c14
	OpGet        OpCode = 0x0c15
	OpIfelse     OpCode = 0x0c16
	OpRandom     OpCode = 0x0c17
	OpMul        OpCode = 0x0c18
	OpSqrt       OpCode = 0x0c1a
	OpDup        OpCode = 0x0c1b
	OpExch       OpCode = 0x0c1c
	OpIndex      OpCode = 0x0c1d
	OpRoll       OpCode = 0x0c1e
	OpHflex      OpCode = 0x0c22
	OpFlex       OpCode = 0x0c23
	OpHflex1     OpCode = 0x0c24
	OpFlex1      OpCode = 0x0c25
)

var opNames = map[OpCode]string{
	OpHstem:      "hstem",
	OpVstem:      "vstem",
	OpVmoveto:    "vmoveto",
	OpRlineto:    "rlineto",
	OpHlineto:    "hlineto",
	OpVlineto:    "vlineto",
	OpRrcurveto:  "rrcurveto",
	OpCallsubr:   "callsubr",
	OpReturn:     "return",
	OpEndchar:    "endchar",
	OpHstemhm:    "hstemhm",
	OpHintmask:   "hintmask",
	OpCntrmask:   "cntrmask",
	OpRmoveto:    "rmoveto",
	OpHmoveto:    "hmoveto",
	OpVstemhm:    "vstemhm",
	OpRcurveline: "rcurveline",
	OpRlinecurve: "rlinecurve",
	OpVvcurveto:  "vvcurveto",
	OpHhcurveto:  "hhcurveto",
	OpCallgsubr:  "callgsubr",
	OpVhcurveto:  "vhcurveto",
	OpHvcurveto:  "hvcurveto",
	OpDotsection: "dotsection",
	OpAnd:        "and",
	OpOr:         "or",
	OpNot:        "not",
	OpAbs:        "abs",
	OpAdd:        "add",
	OpSub:        "sub",
	OpDiv:        "div",
	OpNeg:        "neg",
	OpEq:         "eq",
	OpDrop:       "drop",
	OpPut:        "put",
	OpGet:        "get",
	OpIfelse:     "ifelse",
	OpRandom:     "random",
	OpMul:        "mul",
	OpSqrt:       "sqrt",
	OpDup:        "dup",
	OpExch:       "exch",
	OpIndex:      "index",
	OpRoll:       "roll",
	OpHflex:      "hflex",
	OpFlex:       "flex",
	OpHflex1:     "hflex1",
	OpFlex1:      "flex1",
}

// stackEffect gives the number of operands consumed and produced by the
// arithmetic and storage operators.
var stackEffect = map[OpCode][2]int{
	OpAnd:    {2, 1},
	OpOr:     {2, 1},
	OpNot:    {1, 1},
	OpAbs:    {1, 1},
	OpAdd:    {2, 1},
	OpSub:    {2, 1},
	OpDiv:    {2, 1},
	OpNeg:    {1, 1},
	OpEq:     {2, 1},
	OpDrop:   {1, 0},
	OpPut:    {2, 0},
	OpGet:    {1, 1},
	OpIfelse: {4, 1},
	OpRandom: {0, 1},
	OpMul:    {2, 1},
	OpSqrt:   {1, 1},
	OpDup:    {1, 2},
	OpExch:   {2, 2},
	OpIndex:  {1, 1},
	OpRoll:   {2, 0},
}

func isHintOp(op OpCode) bool {
	switch op {
	case OpHstem, OpVstem, OpHstemhm, OpVstemhm, OpHintmask, OpCntrmask:
		return true
	}
	return false
}
