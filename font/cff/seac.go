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

	"cdr.dev/slog"

	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/postscript/type1/names"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsvg/font/charstring"
	"seehuhn.de/go/pdfsvg/internal/log"
)

// resolveSeac replaces accented character glyphs by the combination of
// their base and accent glyphs.  Missing components are treated as
// empty.
func resolveSeac(ctx context.Context, f *Font) {
	for gid, g := range f.Glyphs {
		seac := g.CharString.Seac
		if seac == nil {
			continue
		}

		base := f.findByCode(seac.Bchar)
		accent := f.findByCode(seac.Achar)
		if base == nil || accent == nil {
			log.Debug(ctx, "seac component not found",
				slog.F("font", f.Name),
				slog.F("glyph", gid),
				slog.F("bchar", seac.Bchar),
				slog.F("achar", seac.Achar))
		}

		var baseCS, accentCS *charstring.CharString
		if base != nil {
			baseCS = base.CharString
		}
		if accent != nil {
			accentCS = accent.CharString
		}
		merged := charstring.Merge(baseCS, accentCS, seac.Adx, seac.Ady)

		private, _ := f.selectFD(glyph.ID(gid))
		content := make([]charstring.Lexeme, 0, len(merged)+1)
		content = append(content, charstring.Operand(g.Width-private.NominalWidthX))
		content = append(content, merged...)

		width := g.Width - private.NominalWidthX
		f.Glyphs[gid] = &Glyph{
			CharString: &charstring.CharString{
				Content:             content,
				ContentInlinedSubrs: merged,
				Width:               &width,
				Seac:                seac,
			},
			Text:  g.Text,
			Index: g.Index,
			ID:    g.ID,
			Width: g.Width,
		}
	}
}

// findByCode returns the first glyph whose text matches the character
// code in the standard encoding.
func (f *Font) findByCode(code int) *Glyph {
	if code < 0 || code >= len(psenc.StandardEncoding) {
		return nil
	}
	name := psenc.StandardEncoding[code]
	if name == ".notdef" {
		return nil
	}
	text := names.ToUnicode(name, f.Name)
	if text == "" {
		return nil
	}
	for _, g := range f.Glyphs {
		if g.Text == text {
			return g
		}
	}
	return nil
}
