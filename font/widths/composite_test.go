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

package widths

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/postscript/cid"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseComposite(t *testing.T) {
	type testCase struct {
		w    []any
		want map[uint32]float64
	}
	testCases := []testCase{
		{
			w:    []any{0, []any{100, 200, 300}},
			want: map[uint32]float64{0: 0.1, 1: 0.2, 2: 0.3},
		},
		{
			w:    []any{5, 10, 150},
			want: map[uint32]float64{5: 0.15, 6: 0.15, 7: 0.15, 8: 0.15, 9: 0.15, 10: 0.15},
		},
		{
			w:    []any{1, 2, 150.5, 7, []float64{10, 20.5}},
			want: map[uint32]float64{1: 0.1505, 2: 0.1505, 7: 0.01, 8: 0.0205},
		},
		{ // a real number cannot start a run
			w:    []any{1, 2.5, 7, []any{10}},
			want: map[uint32]float64{7: 0.01},
		},
		{ // elements of unknown type are ignored
			w:    []any{3, "x", []any{10}},
			want: map[uint32]float64{3: 0.01},
		},
		{ // an array without a start code is dropped
			w:    []any{[]any{10}, 4, int64(4), int32(250)},
			want: map[uint32]float64{4: 0.25},
		},
		{ // an integer as the third element is a width
			w:    []any{1, 3, 0},
			want: map[uint32]float64{1: 0, 2: 0, 3: 0},
		},
		{ // reversed range
			w:    []any{10, 5, 100},
			want: map[uint32]float64{},
		},
		{ // incomplete run
			w:    []any{1, 2},
			want: map[uint32]float64{},
		},
	}
	for i, test := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c := ParseComposite(test.w)
			if len(c.widths) != len(test.want) {
				t.Errorf("got %d widths, want %d", len(c.widths), len(test.want))
			}
			for code, want := range test.want {
				if got := c.GetWidth(code); !near(got, want) {
					t.Errorf("code %d: got %g, want %g", code, got, want)
				}
			}
		})
	}
}

func TestCompositeUnmapped(t *testing.T) {
	c := ParseComposite([]any{0, []any{100, 200, 300}})
	if w := c.GetWidth(3); w != 0 {
		t.Errorf("unmapped code has width %g", w)
	}
	if w := ParseComposite(nil).GetWidth(0); w != 0 {
		t.Errorf("empty map has width %g", w)
	}
}

func TestEncodeComposite(t *testing.T) {
	type testCase struct {
		in  [][]float64
		out []any
	}
	testCases := []testCase{
		{
			in:  [][]float64{{1, 2, 3}},
			out: []any{1, []any{1, 2, 3}},
		},
		{
			in:  [][]float64{{1, 1, 1, 1}},
			out: []any{1, 4, 1},
		},
		{
			in:  [][]float64{{1, 2, 3, 0}, {4}},
			out: []any{1, []any{1, 2, 3}, 6, []any{4}},
		},
		{
			in:  [][]float64{{1, 2, 3}, {3, 3}},
			out: []any{1, []any{1, 2}, 3, 6, 3},
		},
		{
			in: [][]float64{{1, 2, 2, 2, 2, 2, 3}},
			out: []any{1, []any{1},
				2, 6, 2,
				7, []any{3}},
		},
		{
			in:  [][]float64{{0.5, 1.5}},
			out: []any{1, []any{0.5, 1.5}},
		},
	}
	for i, test := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var ww []cidWidth
			pos := cid.CID(1)
			for _, run := range test.in {
				for _, w := range run {
					ww = append(ww, cidWidth{pos, w})
					pos++
				}
				pos++
			}

			// make sure 0 is the most frequent width
			n := len(ww) + 1
			for i := 0; i < n; i++ {
				ww = append(ww, cidWidth{pos, 0})
				pos++
			}

			widths := make(map[cid.CID]float64)
			for _, w := range ww {
				widths[w.CID] = w.GlyphWidth
			}
			dw, w := EncodeComposite(widths)
			if dw != 0 {
				t.Errorf("dw=%v, want 0", dw)
			}

			if d := cmp.Diff(test.out, w); d != "" {
				t.Errorf("w mismatch (-want +got):\n%s", d)
			}
		})
	}
}

// TestCompositeRoundTrip checks that ParseComposite recovers the widths
// encoded by EncodeComposite.
func TestCompositeRoundTrip(t *testing.T) {
	w1 := map[cid.CID]float64{
		0:  1000,
		1:  1000,
		2:  500,
		3:  1000,
		4:  1000,
		5:  1000,
		6:  1000,
		7:  800,
		8:  600,
		9:  400,
		10: 1000,
		12: 1000,
	}
	w2 := map[cid.CID]float64{
		0: 1000,
	}
	w3 := map[cid.CID]float64{
		0: 1000,
		1: 1000,
		2: 1000,
	}
	w4 := map[cid.CID]float64{
		0: 0,
		1: 800,
		2: 900,
		3: 1000,
		4: 1100,
	}
	for _, wIn := range []map[cid.CID]float64{w1, w2, w3, w4} {
		dw, ww := EncodeComposite(wIn)
		c := ParseComposite(ww)
		for cid, expect := range wIn {
			got, ok := c.widths[uint32(cid)]
			if ok {
				if !near(got, expect/1000) {
					t.Errorf("got w[%d] = %f, want %f", cid, got, expect/1000)
				}
			} else if expect != dw {
				t.Errorf("w[%d] missing, want %f", cid, expect)
			}
		}
	}
}

func TestEncodeCompositeEmpty(t *testing.T) {
	dw, w := EncodeComposite(nil)
	if dw != 0 || len(w) != 0 {
		t.Errorf("got dw=%g, w=%v", dw, w)
	}
}
