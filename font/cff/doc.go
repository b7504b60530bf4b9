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

// Package cff implements reading, writing and subsetting of CFF font sets.
//
// CFF fonts are typically found embedded in PDF files, either stand-alone
// (FontFile3 with subtype Type1C or CIDFontType0C) or inside OpenType
// fonts.  Both simple fonts and CID-keyed fonts are supported.  Glyphs
// must use Type 2 charstrings, see the package
// seehuhn.de/go/pdfsvg/font/charstring.
//
// Glyphs which cannot be decoded do not prevent a font from being read.
// They are replaced by empty glyphs and reported in
// FontSet.Diagnostics.
package cff
