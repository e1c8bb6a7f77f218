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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fontclean"
	"seehuhn.de/go/fontclean/verify"
)

// errInvalidGlyphs makes "fontclean check" exit with a non-zero status.
var errInvalidGlyphs = errors.New("invalid glyphs found")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] font.ttf...",
		Short: "List glyphs which would be removed",
		Long: `Check lists the glyphs without contours which "fontclean clean"
would remove.  The fonts are also read with a second, independent
font parser which counts the glyphs without outlines.

The exit status is non-zero if any font contains such glyphs.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	addOptionFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opt, err := cf.Options()
	if err != nil {
		return err
	}

	found := false
	for _, fileName := range args {
		invalid, err := checkFile(cmd, fileName, opt)
		if err != nil {
			return err
		}
		if len(invalid) > 0 {
			found = true
		}
	}
	if found {
		return errInvalidGlyphs
	}
	return nil
}

func checkFile(cmd *cobra.Command, fileName string, opt *fontclean.Options) ([]string, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	empty, err := verify.EmptyGlyphs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	c, err := fontclean.Open(fileName, opt)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	invalid, err := c.InvalidGlyphs()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d glyphs, %d without outlines, %d invalid\n",
		fileName, c.Font().NumGlyphs(), len(empty), len(invalid))
	for _, name := range invalid {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return invalid, nil
}
