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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsvg/font/parser"
)

func TestFDSelectRead(t *testing.T) {
	cases := []struct {
		name    string
		data    []byte
		nGlyphs int
		want    FDSelect
	}{
		{
			name:    "format 3",
			data:    []byte{3, 0, 2, 0, 0, 0, 0, 3, 1, 0, 5},
			nGlyphs: 5,
			want:    FDSelect{0, 0, 0, 1, 1},
		},
		{
			name:    "format 0",
			data:    []byte{0, 1, 2, 3},
			nGlyphs: 4,
			want:    FDSelect{1, 2, 3},
		},
		{
			name:    "format 3 short",
			data:    []byte{3, 0, 1, 0, 0, 2, 0, 2},
			nGlyphs: 4,
			want:    FDSelect{2, 2},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := parser.New("test", c.data)
			got, err := readFDSelect(p, c.nGlyphs)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestFDSelectLookup(t *testing.T) {
	p := parser.New("test", []byte{0, 1, 2, 3})
	s, err := readFDSelect(p, 4)
	if err != nil {
		t.Fatal(err)
	}
	for gid := glyph.ID(0); gid < 3; gid++ {
		fd, ok := s.Lookup(gid)
		if !ok || fd != int(gid)+1 {
			t.Errorf("Lookup(%d) = %d, %t", gid, fd, ok)
		}
	}
	if _, ok := s.Lookup(3); ok {
		t.Error("last glyph of a format 0 table should have no entry")
	}
}

func TestFDSelectErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"format 1", []byte{1, 0, 0}},
		{"out of order", []byte{3, 0, 2, 0, 0, 0, 0, 5, 1, 0, 3}},
		{"sentinel too large", []byte{3, 0, 1, 0, 0, 0, 0, 9}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := parser.New("test", c.data)
			_, err := readFDSelect(p, 5)
			var invalid *InvalidFontError
			if !errors.As(err, &invalid) {
				t.Errorf("expected InvalidFontError, got %v", err)
			}
		})
	}

	p := parser.New("test", []byte{3, 0, 2, 0, 0})
	if _, err := readFDSelect(p, 5); err == nil {
		t.Error("truncated table accepted")
	}
}

func TestFDSelectEncode(t *testing.T) {
	cases := []struct {
		s       FDSelect
		nGlyphs int
		want    []byte
	}{
		{make(FDSelect, 1000), 1000, []byte{3, 0, 1, 0, 0, 0, 3, 232}},
		{FDSelect{0, 0, 1, 1, 2}, 5, []byte{3, 0, 3, 0, 0, 0, 0, 2, 1, 0, 4, 2, 0, 5}},
		{FDSelect{1, 2}, 4, []byte{3, 0, 2, 0, 0, 1, 0, 1, 2, 0, 4}},
	}
	for i, c := range cases {
		got := c.s.encode(c.nGlyphs)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%d: %s", i, d)
		}
	}
}

func TestFDSelectRoundtrip(t *testing.T) {
	s := FDSelect{0, 1, 1, 1, 0, 2, 2, 3, 0}
	p := parser.New("test", s.encode(len(s)))
	got, err := readFDSelect(p, len(s))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(s, got); d != "" {
		t.Error(d)
	}
}
