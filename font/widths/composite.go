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
	"math"
	"sort"

	"seehuhn.de/go/dag"
	"seehuhn.de/go/postscript/cid"
)

// The W array gives widths in glyph space units.
const glyphSpaceScale = 0.001

// maxRange limits the number of codes in a single "cFirst cLast w" run.
const maxRange = 65535

// Composite is the width map of a CID-keyed font.
type Composite struct {
	widths map[uint32]float64
}

// ParseComposite reads the W array of a CIDFont dictionary.
//
// The array holds runs of the form "c [w1 w2 ...]" and "cFirst cLast w".
// Numbers can be given as int, int32, int64 or float64 values, sub-arrays
// as []any or []float64.  Malformed runs are skipped, and elements of other
// types are ignored.
func ParseComposite(w []any) *Composite {
	res := &Composite{widths: make(map[uint32]float64)}

	var first, last uint32
	var nCodes int // number of pending codes
	for _, item := range w {
		if run, ok := asArray(item); ok {
			if nCodes > 0 {
				for i, wi := range run {
					res.widths[first+uint32(i)] = wi * glyphSpaceScale
				}
			}
			nCodes = 0
			continue
		}

		x, isInt, ok := asNumber(item)
		switch {
		case !ok:
			// ignore
		case isInt && nCodes == 0:
			first = uint32(int64(x))
			nCodes = 1
		case isInt && nCodes == 1:
			last = uint32(int64(x))
			nCodes = 2
		case nCodes == 2:
			if last >= first && last-first <= maxRange {
				for c := first; ; c++ {
					res.widths[c] = x * glyphSpaceScale
					if c == last {
						break
					}
				}
			}
			nCodes = 0
		default:
			nCodes = 0
		}
	}
	return res
}

// GetWidth implements the Map interface.
func (c *Composite) GetWidth(code uint32) float64 {
	return c.widths[code]
}

func asNumber(obj any) (float64, bool, bool) {
	switch x := obj.(type) {
	case int:
		return float64(x), true, true
	case int32:
		return float64(x), true, true
	case int64:
		return float64(x), true, true
	case float64:
		return x, false, true
	default:
		return 0, false, false
	}
}

func asArray(obj any) ([]float64, bool) {
	switch x := obj.(type) {
	case []float64:
		return x, true
	case []any:
		res := make([]float64, 0, len(x))
		for _, elem := range x {
			if wi, _, ok := asNumber(elem); ok {
				res = append(res, wi)
			}
		}
		return res, true
	default:
		return nil, false
	}
}

// EncodeComposite constructs the DW and W entries for a CIDFont dictionary.
// Widths are given in glyph space units.  The most frequent width is used
// as the default width, and CIDs with this width are omitted from the W
// array.
func EncodeComposite(widths map[cid.CID]float64) (float64, []any) {
	var ww []cidWidth
	for cid, w := range widths {
		ww = append(ww, cidWidth{cid, w})
	}
	sort.Slice(ww, func(i, j int) bool {
		return ww[i].CID < ww[j].CID
	})

	dw := mostFrequent(ww)
	g := wwGraph{ww, dw}
	ee, err := dag.ShortestPath[wwEdge, int](g, len(ww))
	if err != nil {
		panic(err) // unreachable, every vertex has an outgoing edge
	}

	var res []any
	pos := 0
	for _, e := range ee {
		switch {
		case e > 0:
			res = append(res,
				int(ww[pos].CID),
				int(ww[pos+int(e)-1].CID),
				number(ww[pos].GlyphWidth))
		case e < 0:
			run := make([]any, 0, -e)
			for i := pos; i < pos+int(-e); i++ {
				run = append(run, number(ww[i].GlyphWidth))
			}
			res = append(res, int(ww[pos].CID), run)
		}
		pos = g.To(pos, e)
	}

	return dw, res
}

// number returns x as an int if it is integral.
func number(x float64) any {
	if x == math.Trunc(x) && math.Abs(x) < 1<<31 {
		return int(x)
	}
	return x
}

type cidWidth struct {
	CID        cid.CID
	GlyphWidth float64
}

type wwGraph struct {
	ww []cidWidth
	dw float64
}

// An Edge encodes how the next CID width is encoded.
// The edge values have the following meaning:
//
//	e=0: the width of the next CID is the default width, so no entry is needed
//	e>0: the next e CIDs have the same width, encode as a range
//	e<0: the next -e entries have consecutive CIDs, encode as an array
type wwEdge int16

func (g wwGraph) AppendEdges(ee []wwEdge, v int) []wwEdge {
	ww := g.ww
	if math.Abs(ww[v].GlyphWidth-g.dw) < 0.01 {
		return append(ee, 0)
	}

	n := len(ww)

	// positive edges: sequences of CIDs with the same width
	i := v + 1
	for i < n && i-v < math.MaxInt16 && ww[i].GlyphWidth == ww[v].GlyphWidth {
		i++
	}
	if i > v+1 {
		ee = append(ee, wwEdge(i-v))
	}

	// negative edges: sequences of consecutive CIDs
	i = v
	for i < n && i-v < math.MaxInt16 && int(ww[i].CID)-int(ww[v].CID) == i-v {
		i++
		ee = append(ee, wwEdge(v-i))
	}

	return ee
}

func (g wwGraph) Length(v int, e wwEdge) int {
	// for simplicity we assume that all integers in the output have 3 digits
	if e == 0 {
		return 0
	} else if e > 0 {
		// "%d %d %d\n"
		return 12
	} else {
		// "%d [%d ... %d]\n"
		return 6 + 4*int(-e)
	}
}

func (g wwGraph) To(v int, e wwEdge) int {
	if e == 0 {
		return v + 1
	}
	step := int(e)
	if step < 0 {
		step = -step
	}
	return v + step
}

func mostFrequent(ww []cidWidth) float64 {
	hist := make(map[float64]int)
	for _, wi := range ww {
		hist[wi.GlyphWidth]++
	}

	bestCount := 0
	bestVal := 0.0
	for wi, count := range hist {
		if count > bestCount || (count == bestCount && wi < bestVal) {
			bestCount = count
			bestVal = wi
		}
	}
	return bestVal
}
