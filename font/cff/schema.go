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
	"golang.org/x/exp/slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/cid"
)

// TopDict holds the values from a Top DICT.
type TopDict struct {
	Version            string
	Notice             string
	Copyright          string
	FullName           string
	FamilyName         string
	Weight             string
	IsFixedPitch       bool
	ItalicAngle        float64
	UnderlinePosition  float64
	UnderlineThickness float64
	PaintType          int32
	CharstringType     int32
	FontMatrix         matrix.Matrix
	UniqueID           int32
	FontBBox           rect.Rect
	StrokeWidth        float64
	XUID               []float64

	Charset     int32
	Encoding    int32
	CharStrings int32
	Private     []int32 // size and offset of the Private DICT

	SyntheticBase *int32
	PostScript    string
	BaseFontName  string
	BaseFontBlend []float64

	// CIDFont operators
	ROS             *cid.SystemInfo
	CIDFontVersion  float64
	CIDFontRevision float64
	CIDFontType     int32
	CIDCount        int32
	UIDBase         *int32
	FDArray         *int32
	FDSelect        *int32
	FontName        string
}

// PrivateDict holds the values from a Private DICT.
type PrivateDict struct {
	BlueValues        []float64
	OtherBlues        []float64
	FamilyBlues       []float64
	FamilyOtherBlues  []float64
	BlueScale         float64
	BlueShift         float64
	BlueFuzz          float64
	StdHW             float64
	StdVW             float64
	StemSnapH         []float64
	StemSnapV         []float64
	ForceBold         bool
	LanguageGroup     int32
	ExpansionFactor   float64
	InitialRandomSeed int32

	// Subrs is the offset of the local subroutines, relative to the start
	// of the Private DICT.
	Subrs *int32

	DefaultWidthX float64
	NominalWidthX float64
}

// FontDict holds the values from a Font DICT in the FDArray of a
// CID-keyed font.
type FontDict struct {
	FontName   string
	FontMatrix matrix.Matrix
	Private    []int32
}

var defaultFontMatrix = matrix.Matrix{0.001, 0, 0, 0.001, 0, 0}

// NewTopDict returns a Top DICT with all values set to their defaults.
func NewTopDict() *TopDict {
	return &TopDict{
		UnderlinePosition:  -100,
		UnderlineThickness: 50,
		CharstringType:     2,
		FontMatrix:         defaultFontMatrix,
		CIDCount:           8720,
	}
}

// NewPrivateDict returns a Private DICT with all values set to their
// defaults.
func NewPrivateDict() *PrivateDict {
	return &PrivateDict{
		BlueScale:       0.039625,
		BlueShift:       7,
		BlueFuzz:        1,
		ExpansionFactor: 0.06,
	}
}

// NewFontDict returns a Font DICT with all values set to their defaults.
func NewFontDict() *FontDict {
	return &FontDict{
		FontMatrix: defaultFontMatrix,
	}
}

// dictField maps one DICT operator to a field of T.  The get function
// returns nil if the field has its default value.
type dictField[T any] struct {
	op   dictOp
	name string
	get  func(d *T, ss *Strings) []float64
	set  func(d *T, args []float64, ss *Strings)
}

type dictSchema[T any] struct {
	fields []dictField[T]
	byOp   map[dictOp]int
}

func newSchema[T any](fields ...dictField[T]) *dictSchema[T] {
	byOp := make(map[dictOp]int, len(fields))
	for i, f := range fields {
		byOp[f.op] = i
	}
	return &dictSchema[T]{fields: fields, byOp: byOp}
}

// decode sets the fields of d from the DICT entries.
// Unknown operators are ignored.
func (s *dictSchema[T]) decode(d *T, entries []dictEntry, ss *Strings) {
	for _, e := range entries {
		i, ok := s.byOp[e.op]
		if !ok || len(e.args) == 0 {
			continue
		}
		s.fields[i].set(d, e.args, ss)
	}
}

// encode returns the DICT entries for all fields which differ from their
// defaults, in schema order.  Strings are added to ss as needed.
func (s *dictSchema[T]) encode(d *T, ss *Strings) []dictEntry {
	var res []dictEntry
	for _, f := range s.fields {
		args := f.get(d, ss)
		if args == nil {
			continue
		}
		res = append(res, dictEntry{op: f.op, args: args})
	}
	return res
}

func last(args []float64) float64 {
	return args[len(args)-1]
}

func sidField[T any](op dictOp, name string, field func(*T) *string) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, ss *Strings) []float64 {
			s := *field(d)
			if s == "" {
				return nil
			}
			return []float64{float64(ss.ID(s))}
		},
		set: func(d *T, args []float64, ss *Strings) {
			s, _ := ss.Lookup(int32(last(args)))
			*field(d) = s
		},
	}
}

func numField[T any](op dictOp, name string, def float64, field func(*T) *float64) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, _ *Strings) []float64 {
			x := *field(d)
			if x == def {
				return nil
			}
			return []float64{x}
		},
		set: func(d *T, args []float64, _ *Strings) {
			*field(d) = last(args)
		},
	}
}

func intField[T any](op dictOp, name string, def int32, field func(*T) *int32) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, _ *Strings) []float64 {
			x := *field(d)
			if x == def {
				return nil
			}
			return []float64{float64(x)}
		},
		set: func(d *T, args []float64, _ *Strings) {
			*field(d) = int32(last(args))
		},
	}
}

func optIntField[T any](op dictOp, name string, field func(*T) **int32) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, _ *Strings) []float64 {
			x := *field(d)
			if x == nil {
				return nil
			}
			return []float64{float64(*x)}
		},
		set: func(d *T, args []float64, _ *Strings) {
			x := int32(last(args))
			*field(d) = &x
		},
	}
}

func boolField[T any](op dictOp, name string, field func(*T) *bool) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, _ *Strings) []float64 {
			if !*field(d) {
				return nil
			}
			return []float64{1}
		},
		set: func(d *T, args []float64, _ *Strings) {
			*field(d) = last(args) != 0
		},
	}
}

func arrayField[T any](op dictOp, name string, field func(*T) *[]float64) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, _ *Strings) []float64 {
			x := *field(d)
			if len(x) == 0 {
				return nil
			}
			return x
		},
		set: func(d *T, args []float64, _ *Strings) {
			*field(d) = slices.Clone(args)
		},
	}
}

func pairField[T any](op dictOp, name string, field func(*T) *[]int32) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, _ *Strings) []float64 {
			x := *field(d)
			if len(x) != 2 {
				return nil
			}
			return []float64{float64(x[0]), float64(x[1])}
		},
		set: func(d *T, args []float64, _ *Strings) {
			if len(args) != 2 {
				return
			}
			*field(d) = []int32{int32(args[0]), int32(args[1])}
		},
	}
}

func matrixField[T any](op dictOp, name string, field func(*T) *matrix.Matrix) dictField[T] {
	return dictField[T]{
		op:   op,
		name: name,
		get: func(d *T, _ *Strings) []float64 {
			m := *field(d)
			if m == defaultFontMatrix {
				return nil
			}
			return m[:]
		},
		set: func(d *T, args []float64, _ *Strings) {
			if len(args) != 6 {
				return
			}
			var m matrix.Matrix
			copy(m[:], args)
			*field(d) = m
		},
	}
}

var topDictSchema = newSchema(
	dictField[TopDict]{
		op:   opROS,
		name: "ROS",
		get: func(d *TopDict, ss *Strings) []float64 {
			if d.ROS == nil {
				return nil
			}
			return []float64{
				float64(ss.ID(d.ROS.Registry)),
				float64(ss.ID(d.ROS.Ordering)),
				float64(d.ROS.Supplement),
			}
		},
		set: func(d *TopDict, args []float64, ss *Strings) {
			if len(args) != 3 {
				return
			}
			registry, _ := ss.Lookup(int32(args[0]))
			ordering, _ := ss.Lookup(int32(args[1]))
			d.ROS = &cid.SystemInfo{
				Registry:   registry,
				Ordering:   ordering,
				Supplement: int32(args[2]),
			}
		},
	},
	optIntField(opSyntheticBase, "SyntheticBase", func(d *TopDict) **int32 { return &d.SyntheticBase }),
	sidField(opVersion, "Version", func(d *TopDict) *string { return &d.Version }),
	sidField(opNotice, "Notice", func(d *TopDict) *string { return &d.Notice }),
	sidField(opCopyright, "Copyright", func(d *TopDict) *string { return &d.Copyright }),
	sidField(opFullName, "FullName", func(d *TopDict) *string { return &d.FullName }),
	sidField(opFamilyName, "FamilyName", func(d *TopDict) *string { return &d.FamilyName }),
	sidField(opWeight, "Weight", func(d *TopDict) *string { return &d.Weight }),
	boolField(opIsFixedPitch, "IsFixedPitch", func(d *TopDict) *bool { return &d.IsFixedPitch }),
	numField(opItalicAngle, "ItalicAngle", 0, func(d *TopDict) *float64 { return &d.ItalicAngle }),
	numField(opUnderlinePosition, "UnderlinePosition", -100, func(d *TopDict) *float64 { return &d.UnderlinePosition }),
	numField(opUnderlineThickness, "UnderlineThickness", 50, func(d *TopDict) *float64 { return &d.UnderlineThickness }),
	intField(opPaintType, "PaintType", 0, func(d *TopDict) *int32 { return &d.PaintType }),
	intField(opCharstringType, "CharstringType", 2, func(d *TopDict) *int32 { return &d.CharstringType }),
	matrixField(opFontMatrix, "FontMatrix", func(d *TopDict) *matrix.Matrix { return &d.FontMatrix }),
	intField(opUniqueID, "UniqueID", 0, func(d *TopDict) *int32 { return &d.UniqueID }),
	dictField[TopDict]{
		op:   opFontBBox,
		name: "FontBBox",
		get: func(d *TopDict, _ *Strings) []float64 {
			b := d.FontBBox
			if b == (rect.Rect{}) {
				return nil
			}
			return []float64{b.LLx, b.LLy, b.URx, b.URy}
		},
		set: func(d *TopDict, args []float64, _ *Strings) {
			if len(args) != 4 {
				return
			}
			d.FontBBox = rect.Rect{LLx: args[0], LLy: args[1], URx: args[2], URy: args[3]}
		},
	},
	numField(opStrokeWidth, "StrokeWidth", 0, func(d *TopDict) *float64 { return &d.StrokeWidth }),
	arrayField(opXUID, "XUID", func(d *TopDict) *[]float64 { return &d.XUID }),
	intField(opCharset, "Charset", 0, func(d *TopDict) *int32 { return &d.Charset }),
	intField(opEncoding, "Encoding", 0, func(d *TopDict) *int32 { return &d.Encoding }),
	intField(opCharStrings, "CharStrings", 0, func(d *TopDict) *int32 { return &d.CharStrings }),
	pairField(opPrivate, "Private", func(d *TopDict) *[]int32 { return &d.Private }),
	sidField(opPostScript, "PostScript", func(d *TopDict) *string { return &d.PostScript }),
	sidField(opBaseFontName, "BaseFontName", func(d *TopDict) *string { return &d.BaseFontName }),
	arrayField(opBaseFontBlend, "BaseFontBlend", func(d *TopDict) *[]float64 { return &d.BaseFontBlend }),
	numField(opCIDFontVersion, "CIDFontVersion", 0, func(d *TopDict) *float64 { return &d.CIDFontVersion }),
	numField(opCIDFontRevision, "CIDFontRevision", 0, func(d *TopDict) *float64 { return &d.CIDFontRevision }),
	intField(opCIDFontType, "CIDFontType", 0, func(d *TopDict) *int32 { return &d.CIDFontType }),
	intField(opCIDCount, "CIDCount", 8720, func(d *TopDict) *int32 { return &d.CIDCount }),
	optIntField(opUIDBase, "UIDBase", func(d *TopDict) **int32 { return &d.UIDBase }),
	optIntField(opFDArray, "FDArray", func(d *TopDict) **int32 { return &d.FDArray }),
	optIntField(opFDSelect, "FDSelect", func(d *TopDict) **int32 { return &d.FDSelect }),
	sidField(opFontName, "FontName", func(d *TopDict) *string { return &d.FontName }),
)

var privateDictSchema = newSchema(
	arrayField(opBlueValues, "BlueValues", func(d *PrivateDict) *[]float64 { return &d.BlueValues }),
	arrayField(opOtherBlues, "OtherBlues", func(d *PrivateDict) *[]float64 { return &d.OtherBlues }),
	arrayField(opFamilyBlues, "FamilyBlues", func(d *PrivateDict) *[]float64 { return &d.FamilyBlues }),
	arrayField(opFamilyOtherBlues, "FamilyOtherBlues", func(d *PrivateDict) *[]float64 { return &d.FamilyOtherBlues }),
	numField(opBlueScale, "BlueScale", 0.039625, func(d *PrivateDict) *float64 { return &d.BlueScale }),
	numField(opBlueShift, "BlueShift", 7, func(d *PrivateDict) *float64 { return &d.BlueShift }),
	numField(opBlueFuzz, "BlueFuzz", 1, func(d *PrivateDict) *float64 { return &d.BlueFuzz }),
	numField(opStdHW, "StdHW", 0, func(d *PrivateDict) *float64 { return &d.StdHW }),
	numField(opStdVW, "StdVW", 0, func(d *PrivateDict) *float64 { return &d.StdVW }),
	arrayField(opStemSnapH, "StemSnapH", func(d *PrivateDict) *[]float64 { return &d.StemSnapH }),
	arrayField(opStemSnapV, "StemSnapV", func(d *PrivateDict) *[]float64 { return &d.StemSnapV }),
	boolField(opForceBold, "ForceBold", func(d *PrivateDict) *bool { return &d.ForceBold }),
	intField(opLanguageGroup, "LanguageGroup", 0, func(d *PrivateDict) *int32 { return &d.LanguageGroup }),
	numField(opExpansionFactor, "ExpansionFactor", 0.06, func(d *PrivateDict) *float64 { return &d.ExpansionFactor }),
	intField(opInitialRandomSeed, "InitialRandomSeed", 0, func(d *PrivateDict) *int32 { return &d.InitialRandomSeed }),
	optIntField(opSubrs, "Subrs", func(d *PrivateDict) **int32 { return &d.Subrs }),
	numField(opDefaultWidthX, "DefaultWidthX", 0, func(d *PrivateDict) *float64 { return &d.DefaultWidthX }),
	numField(opNominalWidthX, "NominalWidthX", 0, func(d *PrivateDict) *float64 { return &d.NominalWidthX }),
)

var fontDictSchema = newSchema(
	sidField(opFontName, "FontName", func(d *FontDict) *string { return &d.FontName }),
	matrixField(opFontMatrix, "FontMatrix", func(d *FontDict) *matrix.Matrix { return &d.FontMatrix }),
	pairField(opPrivate, "Private", func(d *FontDict) *[]int32 { return &d.Private }),
)
