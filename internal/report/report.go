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

// Package report writes a summary of a cleaning run in Markdown format.
package report

import (
	"io"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"

	"seehuhn.de/go/fontclean/internal/batch"
)

// Write writes a Markdown report for the given results.
func Write(w io.Writer, results []*batch.Result, dryRun bool) error {
	md := markdown.NewMarkdown(w)

	md.H1("Font cleaning report")
	md.PlainText("")
	if dryRun {
		md.PlainText("Dry run, no files were written.")
		md.PlainText("")
	}

	rows := make([][]string, 0, len(results))
	numFailed := 0
	numRemoved := 0
	for _, res := range results {
		status := "ok"
		if res.Err != nil {
			status = "error: " + res.Err.Error()
			numFailed++
		}
		numRemoved += len(res.Removed)
		rows = append(rows, []string{
			res.Input,
			res.Output,
			strconv.Itoa(res.GlyphsBefore),
			strconv.Itoa(res.GlyphsAfter),
			strconv.Itoa(len(res.Removed)),
			status,
		})
	}

	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Input", "Output", "Glyphs before", "Glyphs after", "Removed", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainText(strconv.Itoa(len(results)) + " fonts, " +
		strconv.Itoa(numFailed) + " failed, " +
		strconv.Itoa(numRemoved) + " glyphs removed.")
	md.PlainText("")

	for _, res := range results {
		if len(res.Removed) == 0 {
			continue
		}
		md.H2("Removed from " + filepath.Base(res.Input))
		md.PlainText("")
		md.BulletList(res.Removed...)
		md.PlainText("")
	}

	return md.Build()
}
