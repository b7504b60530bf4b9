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

const nStdStrings = 391

// Strings is the string table of a CFF font set.  The SIDs 0, ..., 390
// refer to the standard strings; larger SIDs refer to the strings stored
// in the String INDEX.
//
// Strings can only be appended, existing SIDs never change.
type Strings struct {
	custom []string
	rev    map[string]int32
}

// NewStrings returns a string table with the given custom strings.
func NewStrings(custom []string) *Strings {
	return &Strings{custom: custom}
}

// Lookup returns the string for the given SID.
func (ss *Strings) Lookup(sid int32) (string, error) {
	if sid >= 0 && sid < nStdStrings {
		return stdStrings[sid], nil
	}
	idx := int(sid) - nStdStrings
	if idx < 0 || idx >= len(ss.custom) {
		return "", ErrStringRange
	}
	return ss.custom[idx], nil
}

// ID returns the SID for s.  If s is neither a standard string nor
// already in the table, it is appended.
func (ss *Strings) ID(s string) int32 {
	if ss.rev == nil {
		ss.rev = make(map[string]int32, nStdStrings+len(ss.custom))
		for i, name := range stdStrings {
			ss.rev[name] = int32(i)
		}
		for i, name := range ss.custom {
			if _, seen := ss.rev[name]; !seen {
				ss.rev[name] = int32(nStdStrings + i)
			}
		}
	}

	if sid, ok := ss.rev[s]; ok {
		return sid
	}
	sid := int32(nStdStrings + len(ss.custom))
	ss.custom = append(ss.custom, s)
	ss.rev[s] = sid
	return sid
}

// Custom returns the strings which go into the String INDEX.
func (ss *Strings) Custom() []string {
	return ss.custom
}

// Len returns the number of custom strings.
func (ss *Strings) Len() int {
	return len(ss.custom)
}
