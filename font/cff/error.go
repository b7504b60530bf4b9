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
	"fmt"
)

// NotSupportedError indicates that the font file seems valid but uses a
// CFF feature which is not supported by this library.
type NotSupportedError struct {
	Feature string
}

func (err *NotSupportedError) Error() string {
	return "cff: " + err.Feature + " not supported"
}

func notSupported(feature string) error {
	return &NotSupportedError{feature}
}

// InvalidFontError indicates a problem with the font file.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "cff: " + err.Reason
}

func invalidSince(reason string) error {
	return &InvalidFontError{reason}
}

// ErrStringRange is returned when a string ID refers to neither a standard
// string nor a string from the String INDEX.
var ErrStringRange = errors.New("cff: string ID out of range")

// GlyphError records a glyph which could not be decoded.  Parse replaces
// such glyphs by an empty charstring.
type GlyphError struct {
	Font  string
	Glyph int
	Err   error
}

func (err *GlyphError) Error() string {
	return fmt.Sprintf("cff: font %q, glyph %d: %v", err.Font, err.Glyph, err.Err)
}

func (err *GlyphError) Unwrap() error {
	return err.Err
}
