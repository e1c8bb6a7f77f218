// seehuhn.de/go/fontclean - remove broken glyphs from TrueType fonts
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
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/fontclean"
	"seehuhn.de/go/fontclean/internal/buildinfo"
)

// NewRootCmd creates the root command of the fontclean tool.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fontclean",
		Short: "Remove glyphs without contours from TrueType fonts",
		Long: `Fontclean removes glyphs from TrueType fonts which should have visible
outlines but have zero contours.  Glyphs for whitespace characters
and the .notdef glyph are kept.`,
		Version:       buildinfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			fontclean.SetLogger(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "log every glyph which is removed")

	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger returns a logger writing to w.  Text output is used on
// terminals, JSON output otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
