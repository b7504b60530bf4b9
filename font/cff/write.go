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
	"errors"
	"io"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/pdfsvg/font/charstring"
	"seehuhn.de/go/pdfsvg/font/parser"
)

var errNoGlyphs = errors.New("cff: font has no glyphs")

// Sections of the output which come before the per-font data.
const (
	secHeader = iota
	secNameIndex
	secTopDictIndex
	secStringIndex
	secGsubrsIndex
	numGlobalSections
)

// Per-font sections, followed by one (Private DICT, Subrs INDEX) pair for
// the top-level font and for every sub-font.
const (
	fontCharset = iota
	fontEncoding
	fontFDSelect
	fontCharStrings
	fontFDArray
	numFontSections
)

// fontLayout holds the encoded parts of one font.
type fontLayout struct {
	f     *Font
	first int // index of the first section of this font

	fdSelect FDSelect
	fdArray  []*SubFont
	privates []*PrivateDict
	subrs    []charstring.Subrs
}

func (l *fontLayout) sec(i int) int {
	return l.first + i
}

func (l *fontLayout) privateSec(j int) int {
	return l.first + numFontSections + 2*j
}

// Write writes the binary form of the font set to w.
func (set *FontSet) Write(w io.Writer) error {
	data, err := set.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Encode returns the binary form of the font set.
//
// The charstrings are encoded from the Content field of the glyphs,
// local and global subroutines are copied unchanged.
func (set *FontSet) Encode() ([]byte, error) {
	ss := NewStrings(slices.Clone(set.Strings.Custom()))

	blobs := make([][]byte, numGlobalSections)

	var err error
	fontNames := make([][]byte, len(set.Fonts))
	for i, f := range set.Fonts {
		fontNames[i] = []byte(f.Name)
	}
	blobs[secNameIndex], err = encodeIndex(fontNames)
	if err != nil {
		return nil, err
	}
	blobs[secGsubrsIndex], err = encodeIndex(set.GlobalSubrs)
	if err != nil {
		return nil, err
	}

	layouts := make([]*fontLayout, len(set.Fonts))
	for i, f := range set.Fonts {
		l := &fontLayout{f: f, first: len(blobs)}
		layouts[i] = l

		if len(f.Glyphs) == 0 {
			return nil, errNoGlyphs
		}
		charset := make([]int32, len(f.Glyphs))
		for gid, g := range f.Glyphs {
			charset[gid] = g.ID
		}
		charset[0] = 0

		sections := make([][]byte, numFontSections)
		sections[fontCharset], err = encodeCharset(charset)
		if err != nil {
			return nil, err
		}
		if !f.IsCIDKeyed() && f.Encoding != nil && !isStandardEncoding(f.Encoding, f.glyphNames()) {
			sections[fontEncoding], err = encodeEncoding(f.Encoding, charset)
			if err != nil {
				return nil, err
			}
		}
		if f.IsCIDKeyed() {
			l.fdSelect, l.fdArray = f.fdTable()
			sections[fontFDSelect] = l.fdSelect.encode(len(f.Glyphs))
		}

		charStrings := make([][]byte, len(f.Glyphs))
		for gid, g := range f.Glyphs {
			charStrings[gid] = encodeGlyph(g)
		}
		sections[fontCharStrings], err = encodeIndex(charStrings)
		if err != nil {
			return nil, err
		}

		l.privates = append(l.privates, f.Private)
		l.subrs = append(l.subrs, f.Subrs)
		if f.IsCIDKeyed() {
			for _, sub := range l.fdArray {
				private := sub.Private
				if private == nil {
					private = f.Private
				}
				l.privates = append(l.privates, private)
				l.subrs = append(l.subrs, sub.Subrs)
			}
		}

		blobs = append(blobs, sections...)
		for j := range l.privates {
			// The Private DICT is filled in below, once the offsets are known.
			subrsBlob, err := encodeIndex(l.subrs[j])
			if err != nil {
				return nil, err
			}
			if len(l.subrs[j]) == 0 {
				subrsBlob = nil
			}
			blobs = append(blobs, nil, subrsBlob)
		}
	}

	cumsum := func() []int {
		res := make([]int, len(blobs)+1)
		for i, blob := range blobs {
			res[i+1] = res[i] + len(blob)
		}
		return res
	}

	offs := cumsum()
	for {
		// This loop terminates because the offsets only ever increase,
		// and the encoded sizes do not decrease when offsets increase.

		topDicts := make([][]byte, len(layouts))
		for i, l := range layouts {
			f := l.f

			sizeOffs := make([][]int32, len(l.privates))
			for j, private := range l.privates {
				priv := *private
				priv.Subrs = nil
				if len(l.subrs[j]) > 0 {
					delta := int32(offs[l.privateSec(j)+1] - offs[l.privateSec(j)])
					priv.Subrs = &delta
				}
				blob := encodeDictBlob(privateDictSchema.encode(&priv, ss))
				blobs[l.privateSec(j)] = blob
				sizeOffs[j] = []int32{int32(len(blob)), int32(offs[l.privateSec(j)])}
			}

			top := *f.TopDict
			top.Charset = int32(offs[l.sec(fontCharset)])
			top.CharStrings = int32(offs[l.sec(fontCharStrings)])
			top.Private = sizeOffs[0]
			top.FDSelect = nil
			top.FDArray = nil
			switch {
			case f.IsCIDKeyed():
				top.Encoding = 0
				fdSelect := int32(offs[l.sec(fontFDSelect)])
				top.FDSelect = &fdSelect

				fontDicts := make([][]byte, len(l.fdArray))
				for k, sub := range l.fdArray {
					fd := *sub.FontDict
					fd.Private = sizeOffs[k+1]
					fontDicts[k] = encodeDictBlob(fontDictSchema.encode(&fd, ss))
				}
				fdArrayBlob, err := encodeIndex(fontDicts)
				if err != nil {
					return nil, err
				}
				blobs[l.sec(fontFDArray)] = fdArrayBlob
				fdArray := int32(offs[l.sec(fontFDArray)])
				top.FDArray = &fdArray
			case blobs[l.sec(fontEncoding)] != nil:
				top.Encoding = int32(offs[l.sec(fontEncoding)])
			case f.Encoding == nil && f.TopDict.Encoding == 1:
				top.Encoding = 1
			default:
				top.Encoding = 0
			}

			topDicts[i] = encodeDictBlob(topDictSchema.encode(&top, ss))
		}

		blobs[secTopDictIndex], err = encodeIndex(topDicts)
		if err != nil {
			return nil, err
		}

		custom := ss.Custom()
		stringData := make([][]byte, len(custom))
		for i, s := range custom {
			stringData[i] = []byte(s)
		}
		blobs[secStringIndex], err = encodeIndex(stringData)
		if err != nil {
			return nil, err
		}

		blobs[secHeader] = encodeHeader(parser.OffSize(uint32(offs[len(blobs)])))

		newOffs := cumsum()
		if slices.Equal(newOffs, offs) {
			break
		}
		offs = newOffs
	}

	w := parser.NewWriter(offs[len(blobs)])
	for _, blob := range blobs {
		w.WriteBytes(blob)
	}
	return w.Bytes(), nil
}

// encodeGlyph returns the Type 2 charstring for g.  Empty glyphs are
// encoded as a single endchar.
func encodeGlyph(g *Glyph) []byte {
	content := g.CharString.Content
	if len(content) == 0 {
		content = []charstring.Lexeme{charstring.Operator(charstring.OpEndchar)}
	}
	return charstring.Encode(content)
}

func encodeIndex(data [][]byte) ([]byte, error) {
	w := parser.NewWriter(indexLength(data))
	err := writeIndex(w, data)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeDictBlob(entries []dictEntry) []byte {
	w := parser.NewWriter(64)
	encodeDict(w, entries)
	return w.Bytes()
}
