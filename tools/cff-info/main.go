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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"cdr.dev/slog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/postscript/cid"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfsvg/font/cff"
	"seehuhn.de/go/pdfsvg/font/widths"
	"seehuhn.de/go/pdfsvg/internal/log"
	"seehuhn.de/go/pdfsvg/tools/internal/buildinfo"
	"seehuhn.de/go/pdfsvg/tools/internal/profile"
)

type options struct {
	glyphs  bool
	widths  bool
	subset  []int
	out     string
	verbose bool

	cpuprofile string
	memprofile string
}

func main() {
	opt := &options{}
	flags := newFlagSet(opt)

	err := flags.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(1)
	}
	if len(opt.subset) > 0 && opt.out == "" {
		fmt.Fprintln(os.Stderr, "cff-info: --subset requires --out")
		os.Exit(2)
	}

	ctx := log.Stderr(context.Background(), opt.verbose)
	err = run(ctx, flags.Arg(0), opt)
	log.Sync(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newFlagSet returns the command line flags of cff-info, storing the
// values in opt.
func newFlagSet(opt *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet("cff-info", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.BoolVarP(&opt.glyphs, "glyphs", "g", false, "list the glyphs of every font")
	flags.BoolVarP(&opt.widths, "widths", "w", false, "show the width table of every font")
	flags.IntSliceVarP(&opt.subset, "subset", "s", nil, "glyph indices to keep in the subset of the first font")
	flags.StringVarP(&opt.out, "out", "o", "", "write the subset to `file`")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "show debug messages")
	flags.StringVar(&opt.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")
	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintf(out, "cff-info - show the contents of a CFF font file\n")
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short("cff-info"))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  cff-info [options] <file.cff>\n\n")
		fmt.Fprintf(out, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  cff-info -g font.cff\n")
		fmt.Fprintf(out, "  cff-info -s 1,2,3 -o subset.cff font.cff\n")
	}
	return flags
}

func run(ctx context.Context, fname string, opt *options) error {
	stop, err := profile.Start(ctx, opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer stop()

	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	set, err := cff.Parse(ctx, data, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	lineWidth := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			lineWidth = w
		}
	}

	for _, f := range set.Fonts {
		showFont(os.Stdout, f, opt, lineWidth)
	}
	if n := len(set.Diagnostics); n > 0 {
		fmt.Printf("%d glyphs could not be decoded\n", n)
	}

	if len(opt.subset) > 0 {
		if len(set.Fonts) == 0 {
			return errors.New("no font to subset")
		}
		err = writeSubset(ctx, set.Fonts[0], opt.subset, opt.out)
		if err != nil {
			return err
		}
	}
	return nil
}

func showFont(w io.Writer, f *cff.Font, opt *options, lineWidth int) {
	fmt.Fprintf(w, "font %q\n", f.Name)
	if ros := f.TopDict.ROS; f.IsCIDKeyed() && ros != nil {
		fmt.Fprintf(w, "  CID-keyed, %s-%s-%d, %d sub-fonts\n",
			ros.Registry, ros.Ordering, ros.Supplement, len(f.FDArray))
	} else if f.IsCIDKeyed() {
		fmt.Fprintf(w, "  CID-keyed, %d sub-fonts\n", len(f.FDArray))
	} else {
		fmt.Fprintf(w, "  simple font\n")
	}
	fmt.Fprintf(w, "  %d glyphs\n", f.NumGlyphs())

	if opt.glyphs {
		for _, g := range f.Glyphs {
			label := f.GlyphName(g.Index)
			if f.IsCIDKeyed() {
				label = fmt.Sprintf("cid%d", f.CID(g.Index))
			}
			line := fmt.Sprintf("  %5d %-24s %8.1f  %s", g.Index, label, g.Width, describeText(g.Text))
			fmt.Fprintln(w, truncate(line, lineWidth))
		}
	}

	if opt.widths {
		if f.IsCIDKeyed() {
			scale := f.TopDict.FontMatrix[0] * 1000
			ww := make(map[cid.CID]float64, len(f.Glyphs))
			for _, g := range f.Glyphs {
				ww[f.CID(g.Index)] = g.Width * scale
			}
			dw, wArray := widths.EncodeComposite(ww)
			fmt.Fprintf(w, "  DW %g\n", dw)
			fmt.Fprintf(w, "  W %s\n", truncate(fmt.Sprint(wArray), lineWidth-4))
		} else {
			m := widths.NewSimple(f)
			for code := uint32(0); code < 256; code++ {
				if wi := m.GetWidth(code); wi != 0 {
					fmt.Fprintf(w, "  code %3d: %g\n", code, wi)
				}
			}
		}
	}
}

func writeSubset(ctx context.Context, f *cff.Font, subset []int, fname string) error {
	gids := make([]glyph.ID, len(subset))
	for i, gid := range subset {
		if gid < 0 || gid > 0xFFFF {
			return fmt.Errorf("invalid glyph index %d", gid)
		}
		gids[i] = glyph.ID(gid)
	}
	sub, err := f.Subset(gids)
	if err != nil {
		return err
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = sub.Write(out)
	if err != nil {
		out.Close()
		return err
	}
	log.Info(ctx, "subset written",
		slog.F("file", fname),
		slog.F("glyphs", sub.Fonts[0].NumGlyphs()))
	return out.Close()
}

// describeText returns text followed by the Unicode names of its runes.
func describeText(text string) string {
	if text == "" {
		return "-"
	}
	var names []string
	for _, r := range text {
		names = append(names, runenames.Name(r))
	}
	return fmt.Sprintf("%q (%s)", text, strings.Join(names, ", "))
}

// truncate shortens s to at most width runes.  A width of zero or less
// means no limit.
func truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	if width == 1 {
		return "\u2026"
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "\u2026"
}
