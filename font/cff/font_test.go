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
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfsvg/font/charstring"
	"seehuhn.de/go/pdfsvg/internal/log"
)

// testFont describes a simple font for assembling test data by hand.
type testFont struct {
	charStrings [][]byte
	charset     []int32 // nil selects the ISOAdobe charset
	private     *PrivateDict
	subrs       [][]byte
	gsubrs      [][]byte
	top         *TopDict

	charsetPos int // set by build
}

// build returns the binary form of the font.  The layout is
//
//	header, Name INDEX, Top DICT INDEX, String INDEX, Global Subr INDEX,
//	charset, CharStrings INDEX, Private DICT, Local Subr INDEX.
func (tf *testFont) build(t testing.TB) []byte {
	t.Helper()

	ss := NewStrings(nil)
	top := NewTopDict()
	if tf.top != nil {
		c := *tf.top
		top = &c
	}
	private := NewPrivateDict()
	if tf.private != nil {
		c := *tf.private
		private = &c
	}

	mustIndex := func(data [][]byte) []byte {
		t.Helper()
		buf, err := encodeIndex(data)
		if err != nil {
			t.Fatal(err)
		}
		return buf
	}

	var charsetBlob []byte
	if tf.charset != nil {
		var err error
		charsetBlob, err = encodeCharset(tf.charset)
		if err != nil {
			t.Fatal(err)
		}
	}
	nameIndex := mustIndex([][]byte{[]byte("Test")})
	gsubrIndex := mustIndex(tf.gsubrs)
	csIndex := mustIndex(tf.charStrings)
	var subrIndex []byte
	if len(tf.subrs) > 0 {
		subrIndex = mustIndex(tf.subrs)
	}

	var topIndex, privBlob, stringIndex []byte
	for i := 0; ; i++ {
		if i > 20 {
			t.Fatal("layout does not converge")
		}

		charsetPos := 4 + len(nameIndex) + len(topIndex) + len(stringIndex) + len(gsubrIndex)
		csPos := charsetPos + len(charsetBlob)
		privPos := csPos + len(csIndex)

		if subrIndex != nil {
			delta := int32(len(privBlob))
			private.Subrs = &delta
		}
		newPriv := encodeDictBlob(privateDictSchema.encode(private, ss))

		if tf.charset != nil {
			top.Charset = int32(charsetPos)
		}
		top.CharStrings = int32(csPos)
		top.Private = []int32{int32(len(newPriv)), int32(privPos)}
		newTop := mustIndex([][]byte{encodeDictBlob(topDictSchema.encode(top, ss))})

		var custom [][]byte
		for _, s := range ss.Custom() {
			custom = append(custom, []byte(s))
		}
		newStrings := mustIndex(custom)

		if bytes.Equal(newTop, topIndex) && bytes.Equal(newPriv, privBlob) && bytes.Equal(newStrings, stringIndex) {
			tf.charsetPos = charsetPos
			break
		}
		topIndex, privBlob, stringIndex = newTop, newPriv, newStrings
	}

	var buf bytes.Buffer
	for _, part := range [][]byte{
		{1, 0, 4, 4}, nameIndex, topIndex, stringIndex, gsubrIndex,
		charsetBlob, csIndex, privBlob, subrIndex,
	} {
		buf.Write(part)
	}
	return buf.Bytes()
}

func TestParseSimple(t *testing.T) {
	ctx := log.WithTB(context.Background(), t, nil)

	tf := &testFont{
		charStrings: [][]byte{
			{14},               // endchar
			{247, 42, 14},      // 150 endchar
			{149, 159, 21, 14}, // 10 20 rmoveto endchar
			{32, 10, 33, 10},   // -107 callsubr -106 callsubr
		},
		private: &PrivateDict{
			BlueScale:       0.039625,
			BlueShift:       7,
			BlueFuzz:        1,
			ExpansionFactor: 0.06,
			DefaultWidthX:   500,
			NominalWidthX:   100,
		},
		subrs: [][]byte{
			{149, 149, 21, 11}, // 10 10 rmoveto return
			{139, 149, 5, 14},  // 0 10 rlineto endchar
		},
	}

	set, err := Parse(ctx, tf.build(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", set.Diagnostics)
	}
	if len(set.Fonts) != 1 {
		t.Fatalf("expected 1 font, got %d", len(set.Fonts))
	}
	f := set.Fonts[0]
	if f.Name != "Test" {
		t.Errorf("wrong font name %q", f.Name)
	}
	if f.IsCIDKeyed() {
		t.Error("simple font reported as CID-keyed")
	}

	type summary struct {
		Text  string
		ID    int32
		Width float64
	}
	var got []summary
	for _, g := range f.Glyphs {
		got = append(got, summary{g.Text, g.ID, g.Width})
	}
	want := []summary{
		{"", 0, 500},
		{" ", 1, 250},
		{"!", 2, 500},
		{"\"", 3, 500},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	inlined := f.Glyphs[3].CharString.ContentInlinedSubrs
	wantInlined := []charstring.Lexeme{
		charstring.Operand(10), charstring.Operand(10), charstring.Operator(charstring.OpRmoveto),
		charstring.Operand(0), charstring.Operand(10), charstring.Operator(charstring.OpRlineto),
		charstring.Operator(charstring.OpEndchar),
	}
	if d := cmp.Diff(wantInlined, inlined); d != "" {
		t.Error(d)
	}

	if f.GlyphName(2) != "exclam" {
		t.Errorf("wrong glyph name %q", f.GlyphName(2))
	}
	if f.Encoding[' '] != 1 || f.Encoding['!'] != 2 || f.Encoding['A'] != 0 {
		t.Errorf("wrong standard encoding: %v", f.Encoding[:40])
	}
}

func TestMalformedGlyph(t *testing.T) {
	ctx := log.WithTB(context.Background(), t, nil)

	tf := &testFont{
		charStrings: [][]byte{
			{14},
			{149, 159, 21, 14},
			{149, 28, 0}, // shortint truncated
			{247, 42, 14},
		},
	}
	set, err := Parse(ctx, tf.build(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	f := set.Fonts[0]

	if len(set.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(set.Diagnostics))
	}
	gErr := set.Diagnostics[0]
	if gErr.Glyph != 2 || gErr.Font != "Test" {
		t.Errorf("wrong glyph error %v", gErr)
	}
	if !errors.Is(gErr, charstring.ErrTruncated) {
		t.Errorf("expected truncated input, got %v", gErr.Err)
	}

	bad := f.Glyphs[2]
	if len(bad.CharString.Content) != 0 || len(bad.CharString.ContentInlinedSubrs) != 0 {
		t.Error("malformed glyph is not empty")
	}
	if bad.Width != 0 {
		t.Errorf("wrong width %g for malformed glyph", bad.Width)
	}
	if bad.Text != "!" {
		t.Errorf("malformed glyph lost its text: %q", bad.Text)
	}

	for _, gid := range []int{0, 1, 3} {
		if len(f.Glyphs[gid].CharString.Content) == 0 {
			t.Errorf("glyph %d not decoded", gid)
		}
	}
	if f.Glyphs[3].Width != 150 {
		t.Errorf("wrong width %g for glyph 3", f.Glyphs[3].Width)
	}
}

func TestParseErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Parse(ctx, []byte{2, 0, 4, 4}, nil)
	var notSupp *NotSupportedError
	if !errors.As(err, &notSupp) {
		t.Errorf("CFF2: expected NotSupportedError, got %v", err)
	}

	_, err = Parse(ctx, []byte{1, 0}, nil)
	if err == nil {
		t.Error("truncated header not detected")
	}

	top := NewTopDict()
	top.CharstringType = 1
	tf := &testFont{
		charStrings: [][]byte{{14}},
		top:         top,
	}
	_, err = Parse(ctx, tf.build(t), nil)
	if !errors.As(err, &notSupp) {
		t.Errorf("type 1 charstrings: expected NotSupportedError, got %v", err)
	}

	tf = &testFont{
		charStrings: [][]byte{{14}, {14}},
		charset:     []int32{0, 5},
	}
	data := tf.build(t)
	if data[tf.charsetPos] != 0 {
		t.Fatal("charset not found")
	}
	data[tf.charsetPos] = 7 // invalid charset format
	_, err = Parse(ctx, data, nil)
	var invalid *InvalidFontError
	if !errors.As(err, &invalid) {
		t.Errorf("charset format 7: expected InvalidFontError, got %v", err)
	}
}

func TestParseNoGlyphs(t *testing.T) {
	ctx := context.Background()

	for _, charset := range [][]int32{nil, {0}} {
		tf := &testFont{charset: charset}
		_, err := Parse(ctx, tf.build(t), nil)
		var invalid *InvalidFontError
		if !errors.As(err, &invalid) {
			t.Errorf("charset %v: expected InvalidFontError, got %v", charset, err)
		}
	}
}

func TestParseTruncated(t *testing.T) {
	ctx := context.Background()

	data, err := makeCIDFont().Encode()
	if err != nil {
		t.Fatal(err)
	}
	for n := 0; n < len(data); n++ {
		// must not panic
		Parse(ctx, data[:n], nil)
	}
}

func TestSeac(t *testing.T) {
	ctx := log.WithTB(context.Background(), t, nil)

	tf := &testFont{
		charStrings: [][]byte{
			{14},
			// A: 100 0 rmoveto 0 100 rlineto endchar
			{239, 139, 21, 139, 239, 5, 14},
			// grave: 10 20 rmoveto 5 5 rlineto endchar
			{149, 159, 21, 144, 144, 5, 14},
			// Agrave: 600 30 0 65 193 endchar
			{248, 236, 169, 139, 204, 247, 85, 14},
		},
		charset: []int32{0, 34, 124, 174},
		private: &PrivateDict{
			BlueScale:       0.039625,
			BlueShift:       7,
			BlueFuzz:        1,
			ExpansionFactor: 0.06,
			NominalWidthX:   100,
		},
	}
	set, err := Parse(ctx, tf.build(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	f := set.Fonts[0]
	g := f.Glyphs[3]
	if g.Text != "À" {
		t.Errorf("wrong text %q", g.Text)
	}
	if g.Width != 700 {
		t.Errorf("wrong width %g", g.Width)
	}
	if g.CharString.Seac == nil {
		t.Fatal("seac operands lost")
	}

	num := charstring.Operand
	op := charstring.Operator
	merged := []charstring.Lexeme{
		num(100), num(0), op(charstring.OpRmoveto),
		num(0), num(100), op(charstring.OpRlineto),
		// accent origin (30, 0), first point at (40, 20), pen at (100, 100)
		num(-60), num(-80), op(charstring.OpRmoveto),
		num(5), num(5), op(charstring.OpRlineto),
		op(charstring.OpEndchar),
	}
	if d := cmp.Diff(merged, g.CharString.ContentInlinedSubrs); d != "" {
		t.Error(d)
	}
	content := append([]charstring.Lexeme{num(600)}, merged...)
	if d := cmp.Diff(content, g.CharString.Content); d != "" {
		t.Error(d)
	}

	// the merged glyph survives a round trip through the binary format
	data, err := set.Encode()
	if err != nil {
		t.Fatal(err)
	}
	set2, err := Parse(ctx, data, nil)
	if err != nil {
		t.Fatal(err)
	}
	g2 := set2.Fonts[0].Glyphs[3]
	if g2.Width != 700 || g2.CharString.Seac != nil {
		t.Errorf("wrong round trip result: width %g, seac %v", g2.Width, g2.CharString.Seac)
	}
	if d := cmp.Diff(merged, g2.CharString.ContentInlinedSubrs); d != "" {
		t.Error(d)
	}
}

func TestSeacMissingComponent(t *testing.T) {
	ctx := log.WithTB(context.Background(), t, nil)

	tf := &testFont{
		charStrings: [][]byte{
			{14},
			{239, 139, 21, 139, 239, 5, 14},
			{139, 139, 204, 247, 85, 14}, // seac with missing accent
		},
		charset: []int32{0, 34, 174},
	}
	set, err := Parse(ctx, tf.build(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	cs := set.Fonts[0].Glyphs[2].CharString
	want := []charstring.Lexeme{
		charstring.Operand(100), charstring.Operand(0), charstring.Operator(charstring.OpRmoveto),
		charstring.Operand(0), charstring.Operand(100), charstring.Operator(charstring.OpRlineto),
		charstring.Operator(charstring.OpEndchar),
	}
	if d := cmp.Diff(want, cs.ContentInlinedSubrs); d != "" {
		t.Error(d)
	}
}
