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

// Package buildinfo formats version information for the command line
// tools.
package buildinfo

import (
	"runtime/debug"
)

// Short returns a short version string for a tool, for example
// "cff-info (seehuhn.de/go/pdfsvg v0.1.0)".  If no version is known, the
// VCS revision is used instead.
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = vcsRevision(info.Settings)
	}
	if version == "" {
		return toolName
	}
	return toolName + " (" + info.Main.Path + " " + version + ")"
}

// vcsRevision returns an abbreviated commit hash, with "+dirty" appended
// for modified working trees.
func vcsRevision(settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}
