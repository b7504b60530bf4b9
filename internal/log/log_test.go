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

package log

import (
	"context"
	"testing"

	"cdr.dev/slog"
)

func TestFrom(t *testing.T) {
	ctx := context.Background()
	if _, ok := ctx.Value(loggerKey{}).(slog.Logger); ok {
		t.Fatal("unexpected logger in empty context")
	}
	Info(ctx, "logged through the default logger")

	ctx = WithTB(ctx, t, nil)
	if _, ok := ctx.Value(loggerKey{}).(slog.Logger); !ok {
		t.Error("logger not stored in context")
	}

	// warnings must not fail the test
	Warn(ctx, "test warning", slog.F("glyph", 1))
	Debug(Named(ctx, "sub"), "test debug")
}
