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

// Package profile writes CPU and memory profiles for the command line
// tools.
package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"cdr.dev/slog"

	"seehuhn.de/go/pdfsvg/internal/log"
)

// Start begins CPU profiling if cpuFile is non-empty.  The returned
// function stops CPU profiling and writes a heap profile to memFile, if
// memFile is non-empty.  Problems while writing the heap profile are
// logged through ctx.
func Start(ctx context.Context, cpuFile, memFile string) (stop func(), err error) {
	var cpu *os.File
	if cpuFile != "" {
		cpu, err = os.Create(cpuFile)
		if err != nil {
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			cpu.Close()
			return nil, fmt.Errorf("cpu profile: %w", err)
		}
	}

	stop = func() {
		if cpu != nil {
			pprof.StopCPUProfile()
			cpu.Close()
		}
		if memFile == "" {
			return
		}
		err := writeHeap(memFile)
		if err != nil {
			log.Warn(ctx, "cannot write memory profile",
				slog.F("file", memFile),
				slog.F("error", err))
		}
	}
	return stop, nil
}

func writeHeap(fname string) error {
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return errors.New("no allocs profile")
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	runtime.GC()
	err = allocs.WriteTo(f, 0)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
