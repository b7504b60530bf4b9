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
	"testing"

	"seehuhn.de/go/pdfsvg/font/parser"
)

func TestIndex(t *testing.T) {
	blob := make([]byte, 1+127)
	for i := range blob {
		blob[i] = byte(i + 1)
	}

	for _, count := range []int{0, 1, 2, 3, 517} {
		data := make([][]byte, count)
		for i := 0; i < count; i++ {
			d := i % 2
			data[i] = blob[d : d+127]
		}

		buf, err := encodeIndex(data)
		if err != nil {
			t.Error(err)
			continue
		}
		if len(buf) != indexLength(data) {
			t.Errorf("%d: indexLength is %d, but %d bytes were written",
				count, indexLength(data), len(buf))
		}
		if count == 0 && len(buf) != 2 {
			t.Error("wrong length for empty INDEX")
		}

		p := parser.New("INDEX", buf)
		out, err := readIndex(p)
		if err != nil {
			t.Error(err)
			continue
		}
		if len(out) != len(data) {
			t.Errorf("wrong length")
			continue
		}
		for i, blob := range out {
			if !bytes.Equal(blob, data[i]) {
				t.Errorf("wrong data")
				continue
			}
		}
		if p.Pos() != len(buf) {
			t.Errorf("%d: INDEX ends at %d, not %d", count, p.Pos(), len(buf))
		}
	}
}

func TestIndexOffSize(t *testing.T) {
	cases := []struct {
		total   int
		offSize byte
	}{
		{0, 1},
		{254, 1},
		{255, 2},
		{65534, 2},
		{65535, 3},
	}
	for _, test := range cases {
		buf, err := encodeIndex([][]byte{make([]byte, test.total)})
		if err != nil {
			t.Fatal(err)
		}
		if buf[2] != test.offSize {
			t.Errorf("%d bytes: offSize %d, expected %d", test.total, buf[2], test.offSize)
		}
	}
}

func TestIndexEmptyEntries(t *testing.T) {
	data := [][]byte{{}, {1, 2}, {}}
	buf, err := encodeIndex(data)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{0, 3, 1, 1, 1, 3, 3, 1, 2}
	if !bytes.Equal(buf, expected) {
		t.Errorf("expected % x, got % x", expected, buf)
	}
}

func TestIndexMalformed(t *testing.T) {
	cases := [][]byte{
		{0},                       // truncated count
		{0, 1, 0},                 // offSize 0
		{0, 1, 5},                 // offSize 5
		{0, 1, 1, 2, 3, 0},        // first offset must be 1
		{0, 2, 1, 1, 3, 2, 0},     // offsets decrease
		{0, 1, 1, 1, 10, 1, 2, 3}, // data truncated
	}
	for i, buf := range cases {
		_, err := readIndex(parser.New("INDEX", buf))
		if err == nil {
			t.Errorf("%d: malformed INDEX not detected", i)
		}
	}
}

func TestIndexMaxCount(t *testing.T) {
	data := make([][]byte, 65535)
	for i := range data {
		data[i] = []byte{byte(i)}
	}
	buf, err := encodeIndex(data)
	if err != nil {
		t.Fatal(err)
	}

	out, err := readIndex(parser.New("INDEX", buf))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(data) {
		t.Fatalf("got %d entries, expected %d", len(out), len(data))
	}
	for _, i := range []int{0, 1, 65533, 65534} {
		if !bytes.Equal(out[i], data[i]) {
			t.Errorf("entry %d: got % x, expected % x", i, out[i], data[i])
		}
	}

	_, err = encodeIndex(make([][]byte, 65536))
	if err != errIndexTooLarge {
		t.Errorf("expected errIndexTooLarge, got %v", err)
	}
}
