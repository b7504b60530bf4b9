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
	"fmt"

	"seehuhn.de/go/sfnt/glyph"
)

// Subset returns a new font set which contains only the glyphs listed in
// gids, in the given order.  Glyph 0 is always included as the first
// glyph, and duplicates are ignored.
//
// The new font set shares the string table and the subroutines with the
// original.  Glyphs in the subset are renumbered, the charset, FDSelect
// and encoding are adjusted accordingly.
func (f *Font) Subset(gids []glyph.ID) (*FontSet, error) {
	if len(f.Glyphs) == 0 {
		return nil, errNoGlyphs
	}
	newGid := make(map[glyph.ID]glyph.ID, len(gids)+1)
	order := []glyph.ID{0}
	newGid[0] = 0
	for _, gid := range gids {
		if int(gid) >= len(f.Glyphs) {
			return nil, fmt.Errorf("cff: glyph %d not in font %q", gid, f.Name)
		}
		if _, seen := newGid[gid]; seen {
			continue
		}
		newGid[gid] = glyph.ID(len(order))
		order = append(order, gid)
	}

	set := &FontSet{
		Strings:     f.set.Strings,
		GlobalSubrs: f.set.GlobalSubrs,
	}
	sub := &Font{
		Name:    f.Name,
		TopDict: f.TopDict,
		Private: f.Private,
		Subrs:   f.Subrs,
		FDArray: f.FDArray,
		set:     set,
	}

	sub.Charset = make([]int32, len(order))
	sub.Glyphs = make([]*Glyph, len(order))
	for i, gid := range order {
		g := *f.Glyphs[gid]
		sub.Charset[i] = g.ID
		g.Index = glyph.ID(i)
		sub.Glyphs[i] = &g
	}

	if f.IsCIDKeyed() {
		fds, fdArray := f.fdTable()
		sub.FDArray = fdArray
		sub.FDSelect = make(FDSelect, len(order))
		for i, gid := range order {
			sub.FDSelect[i] = fds[gid]
		}
	}

	if f.Encoding != nil {
		sub.Encoding = make([]glyph.ID, len(f.Encoding))
		for code, gid := range f.Encoding {
			if gid == 0 {
				continue
			}
			if n, ok := newGid[gid]; ok {
				sub.Encoding[code] = n
			}
		}
	}

	set.Fonts = []*Font{sub}
	return set, nil
}
