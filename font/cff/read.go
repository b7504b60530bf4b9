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
	"context"
	"fmt"

	"cdr.dev/slog"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsvg/font/charstring"
	"seehuhn.de/go/pdfsvg/font/parser"
	"seehuhn.de/go/pdfsvg/internal/log"
)

// ParseOptions can be used to control the behaviour of Parse.
type ParseOptions struct {
	// ToUnicode gives the text for the glyphs of CID-keyed fonts.
	// CIDs which are not listed are mapped to private use code points.
	ToUnicode map[cid.CID]string
}

// Parse decodes a CFF font set.
//
// Problems with individual glyphs are logged through the logger in ctx
// and recorded in the Diagnostics field of the result.  All other
// problems cause an error to be returned.
func Parse(ctx context.Context, data []byte, opt *ParseOptions) (*FontSet, error) {
	if opt == nil {
		opt = &ParseOptions{}
	}

	p := parser.New("CFF", data)
	header, err := readHeader(p)
	if err != nil {
		return nil, err
	}
	err = p.SeekPos(int(header.HdrSize))
	if err != nil {
		return nil, err
	}

	p.SetRegion("Name INDEX")
	nameIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	p.SetRegion("Top DICT INDEX")
	topDictIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	p.SetRegion("String INDEX")
	stringIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	p.SetRegion("Global Subr INDEX")
	gsubrs, err := readIndex(p)
	if err != nil {
		return nil, err
	}

	custom := make([]string, len(stringIndex))
	for i, s := range stringIndex {
		custom[i] = string(s)
	}
	set := &FontSet{
		Strings:     NewStrings(custom),
		GlobalSubrs: charstring.Subrs(gsubrs),
	}

	for i, topDictData := range topDictIndex {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var name string
		if i < len(nameIndex) {
			name = string(nameIndex[i])
		} else if len(nameIndex) > 0 {
			name = string(nameIndex[0])
		}

		r := &fontReader{
			set:  set,
			p:    p,
			opt:  opt,
			name: name,
		}
		f, err := r.read(ctx, topDictData)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", name, err)
		}
		set.Fonts = append(set.Fonts, f)
	}

	return set, nil
}

type fontReader struct {
	set  *FontSet
	p    *parser.Parser
	opt  *ParseOptions
	name string
}

func (r *fontReader) read(ctx context.Context, topDictData []byte) (*Font, error) {
	ss := r.set.Strings
	p := r.p

	entries, err := decodeDict(topDictData)
	if err != nil {
		return nil, err
	}
	top := NewTopDict()
	topDictSchema.decode(top, entries, ss)
	if top.CharstringType != 2 {
		return nil, notSupported(fmt.Sprintf("charstring type %d", top.CharstringType))
	}

	f := &Font{
		Name:    r.name,
		TopDict: top,
		set:     r.set,
	}

	f.Private, f.Subrs, err = r.readPrivate(top.Private)
	if err != nil {
		return nil, err
	}
	if f.Private == nil {
		f.Private = NewPrivateDict()
	}

	p.SetRegion("CharStrings INDEX")
	err = p.SeekPos(int(top.CharStrings))
	if err != nil {
		return nil, err
	}
	charStrings, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	nGlyphs := len(charStrings)
	if nGlyphs == 0 {
		return nil, invalidSince("no glyphs")
	}

	p.SetRegion("charset")
	f.Charset, err = readCharset(p, top.Charset, nGlyphs)
	if err != nil {
		return nil, err
	}

	if top.FDSelect != nil {
		p.SetRegion("FDSelect")
		err = p.SeekPos(int(*top.FDSelect))
		if err != nil {
			return nil, err
		}
		f.FDSelect, err = readFDSelect(p, nGlyphs)
		if err != nil {
			return nil, err
		}
	}

	if top.FDArray != nil {
		f.FDArray, err = r.readFDArray(int(*top.FDArray), f.Subrs)
		if err != nil {
			return nil, err
		}
	} else {
		f.Encoding, err = r.readEncoding(top.Encoding, f)
		if err != nil {
			return nil, err
		}
	}

	f.Glyphs = make([]*Glyph, nGlyphs)
	for i, code := range charStrings {
		f.Glyphs[i] = r.decodeGlyph(ctx, f, glyph.ID(i), code)
	}

	resolveSeac(ctx, f)

	return f, nil
}

// readPrivate reads a Private DICT and its local subroutines.  If no
// Private DICT is present, nil is returned.
func (r *fontReader) readPrivate(sizeOffs []int32) (*PrivateDict, charstring.Subrs, error) {
	if len(sizeOffs) != 2 {
		return nil, nil, nil
	}
	size, start := int(sizeOffs[0]), int(sizeOffs[1])

	p := r.p
	p.SetRegion("Private DICT")
	err := p.SeekPos(start)
	if err != nil {
		return nil, nil, err
	}
	buf, err := p.ReadBytes(size)
	if err != nil {
		return nil, nil, err
	}
	entries, err := decodeDict(buf)
	if err != nil {
		return nil, nil, err
	}
	private := NewPrivateDict()
	privateDictSchema.decode(private, entries, r.set.Strings)

	if private.Subrs == nil {
		return private, nil, nil
	}

	p.SetRegion("Local Subr INDEX")
	err = p.SeekPos(start + int(*private.Subrs))
	if err != nil {
		return nil, nil, err
	}
	subrs, err := readIndex(p)
	if err != nil {
		return nil, nil, err
	}
	return private, charstring.Subrs(subrs), nil
}

// readFDArray reads the Font DICTs of a CID-keyed font.  Sub-fonts
// without local subroutines use topSubrs.
func (r *fontReader) readFDArray(offset int, topSubrs charstring.Subrs) ([]*SubFont, error) {
	p := r.p
	p.SetRegion("Font DICT INDEX")
	err := p.SeekPos(offset)
	if err != nil {
		return nil, err
	}
	fdIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}

	res := make([]*SubFont, len(fdIndex))
	for i, blob := range fdIndex {
		entries, err := decodeDict(blob)
		if err != nil {
			return nil, err
		}
		fontDict := NewFontDict()
		fontDictSchema.decode(fontDict, entries, r.set.Strings)

		private, subrs, err := r.readPrivate(fontDict.Private)
		if err != nil {
			return nil, err
		}
		if subrs == nil {
			subrs = topSubrs
		}
		res[i] = &SubFont{
			FontDict: fontDict,
			Private:  private,
			Subrs:    subrs,
		}
	}
	return res, nil
}

// readEncoding returns the built-in encoding of a simple font.  The
// predefined Expert encoding is not supported and gives a nil result.
func (r *fontReader) readEncoding(offset int32, f *Font) ([]glyph.ID, error) {
	switch offset {
	case 0:
		return standardEncoding(f.glyphNames()), nil
	case 1:
		return nil, nil
	}

	p := r.p
	p.SetRegion("Encoding")
	err := p.SeekPos(int(offset))
	if err != nil {
		return nil, err
	}
	return readEncoding(p, f.Charset)
}

func (r *fontReader) decodeGlyph(ctx context.Context, f *Font, gid glyph.ID, code []byte) *Glyph {
	private, subrs := f.selectFD(gid)
	id := f.Charset[gid]

	var text string
	if f.IsCIDKeyed() {
		var ok bool
		text, ok = r.opt.ToUnicode[cid.CID(id)]
		if !ok {
			text = privateUseText(id)
		}
	} else {
		name, _ := r.set.Strings.Lookup(id)
		if name != "" && name != ".notdef" {
			text = names.ToUnicode(name, r.name)
		}
	}

	cs, err := charstring.Parse(code, r.set.GlobalSubrs, subrs)
	if err != nil {
		gErr := &GlyphError{Font: r.name, Glyph: int(gid), Err: err}
		r.set.Diagnostics = append(r.set.Diagnostics, gErr)
		log.Warn(ctx, "cannot decode glyph, using empty glyph",
			slog.F("font", r.name),
			slog.F("glyph", int(gid)),
			slog.F("text", text),
			slog.F("error", err))
		cs = charstring.Empty()
	}

	width := private.DefaultWidthX
	if cs.Width != nil {
		width = private.NominalWidthX + *cs.Width
	}

	return &Glyph{
		CharString: cs,
		Text:       text,
		Index:      gid,
		ID:         id,
		Width:      width,
	}
}

// privateUseText maps a CID to a code point in one of the Unicode
// private use areas.
func privateUseText(id int32) string {
	const bmpSize = 0xF8FF - 0xE000 + 1
	if id < 0 {
		return ""
	}
	if id < bmpSize {
		return string(rune(0xE000 + id))
	}
	r := rune(0xF0000 + id - bmpSize)
	if r > 0x10FFFD {
		return ""
	}
	return string(r)
}
