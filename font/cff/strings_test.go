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
)

func TestStringsLookup(t *testing.T) {
	ss := NewStrings([]string{"Foo", "Bar"})

	cases := []struct {
		sid  int32
		want string
	}{
		{0, ".notdef"},
		{1, "space"},
		{34, "A"},
		{390, "Semibold"},
		{391, "Foo"},
		{392, "Bar"},
	}
	for _, c := range cases {
		got, err := ss.Lookup(c.sid)
		if err != nil {
			t.Errorf("%d: %v", c.sid, err)
		} else if got != c.want {
			t.Errorf("%d: got %q, want %q", c.sid, got, c.want)
		}
	}

	for _, sid := range []int32{-1, 393, 65535} {
		_, err := ss.Lookup(sid)
		if !errors.Is(err, ErrStringRange) {
			t.Errorf("%d: expected ErrStringRange, got %v", sid, err)
		}
	}
}

func TestStringsID(t *testing.T) {
	ss := NewStrings([]string{"Foo"})

	if sid := ss.ID("space"); sid != 1 {
		t.Errorf("space: got SID %d", sid)
	}
	if sid := ss.ID("Foo"); sid != 391 {
		t.Errorf("Foo: got SID %d", sid)
	}
	if sid := ss.ID("Bar"); sid != 392 {
		t.Errorf("Bar: got SID %d", sid)
	}
	if sid := ss.ID("Bar"); sid != 392 {
		t.Errorf("Bar again: got SID %d", sid)
	}
	if ss.Len() != 2 {
		t.Errorf("wrong number of strings %d", ss.Len())
	}
	if s, _ := ss.Lookup(392); s != "Bar" {
		t.Errorf("Lookup(392) = %q", s)
	}
}
