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

package main

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/postscript/cid"

	"seehuhn.de/go/pdfsvg/font/cff"
)

func TestDescribeText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "-"},
		{"A", `"A" (LATIN CAPITAL LETTER A)`},
		{"fi", `"fi" (LATIN SMALL LETTER F, LATIN SMALL LETTER I)`},
	}
	for _, c := range cases {
		if got := describeText(c.in); got != c.want {
			t.Errorf("describeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel\u2026"},
		{"h\u00e9llo", 3, "h\u00e9\u2026"},
		{"hello", 1, "\u2026"},
	}
	for _, c := range cases {
		if got := truncate(c.in, c.width); got != c.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", c.in, c.width, got, c.want)
		}
	}
}

func TestShowFontCID(t *testing.T) {
	fdArray := int32(0)
	top := cff.NewTopDict()
	top.ROS = &cid.SystemInfo{Registry: "Adobe", Ordering: "Identity"}
	top.FDArray = &fdArray
	f := &cff.Font{
		Name:    "Test",
		TopDict: top,
		Charset: []int32{0, 5, 6},
		Glyphs: []*cff.Glyph{
			{Index: 0, ID: 0, Width: 1000},
			{Index: 1, ID: 5, Width: 500},
			{Index: 2, ID: 6, Width: 500, Text: "A"},
		},
		FDArray: []*cff.SubFont{{}},
	}

	var buf bytes.Buffer
	showFont(&buf, f, &options{glyphs: true, widths: true}, 0)
	out := buf.String()
	for _, want := range []string{
		"Adobe-Identity-0",
		"3 glyphs",
		"cid6",
		"LATIN CAPITAL LETTER A",
		"DW 500",
		"W [0 [1000]]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestFlags(t *testing.T) {
	opt := &options{}
	flags := newFlagSet(opt)
	err := flags.Parse([]string{"-g", "-s", "1,2", "-o", "sub.cff", "font.cff"})
	if err != nil {
		t.Fatal(err)
	}
	want := &options{glyphs: true, subset: []int{1, 2}, out: "sub.cff"}
	if d := cmp.Diff(want, opt, cmp.AllowUnexported(options{})); d != "" {
		t.Error(d)
	}
	if flags.NArg() != 1 || flags.Arg(0) != "font.cff" {
		t.Errorf("wrong arguments %q", flags.Args())
	}
}

func TestUsage(t *testing.T) {
	flags := newFlagSet(&options{})
	buf := &bytes.Buffer{}
	flags.SetOutput(buf)
	flags.Usage()

	out := buf.String()
	if !strings.HasPrefix(out, "cff-info - show the contents") {
		t.Errorf("wrong first line in %q", out)
	}
	if !strings.Contains(out, "--subset") {
		t.Error("flag defaults missing")
	}
	for i, r := range out {
		if r >= utf8.RuneSelf {
			t.Errorf("non-ASCII character %q at offset %d", r, i)
			break
		}
	}
}
