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
	"path/filepath"

	"github.com/spf13/cobra"

	"seehuhn.de/go/fontclean"
	"seehuhn.de/go/fontclean/internal/batch"
	"seehuhn.de/go/fontclean/internal/config"
	"seehuhn.de/go/fontclean/internal/report"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [flags] in.ttf out.ttf | clean -o dir in.ttf...",
		Short: "Remove glyphs without contours",
		Long: `Clean removes all glyphs which have no contours, except for .notdef
and glyphs for whitespace characters, and writes the resulting font.

With -o, any number of fonts can be given; the cleaned fonts are
written into the output directory under their original names.`,
		Example: `  fontclean clean broken.ttf fixed.ttf
  fontclean clean -o out --jobs 4 fonts/*.ttf
  fontclean clean --dry-run --report report.md fonts/*.ttf`,
		RunE: runClean,
	}

	addOptionFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "write cleaned fonts into this directory")
	cmd.Flags().Int("jobs", 0, "number of fonts to process in parallel (default: number of CPUs)")
	cmd.Flags().String("report", "", "write a Markdown report to this file")
	cmd.Flags().Bool("dry-run", false, "only list the glyphs which would be removed")

	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	reportFile, _ := cmd.Flags().GetString("report")

	jobs, err := makeJobs(args, outDir, dryRun)
	if err != nil {
		return err
	}

	cf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opt, err := cf.Options()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		cf.Jobs, _ = cmd.Flags().GetInt("jobs")
	}

	if outDir != "" && !dryRun {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	p := &batch.Processor{
		Options: opt,
		Limit:   cf.Jobs,
		DryRun:  dryRun,
	}
	results, err := p.Run(cmd.Context(), jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	verb := "removed"
	if dryRun {
		verb = "would remove"
	}
	numFailed := 0
	for _, res := range results {
		if res.Err != nil {
			numFailed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Input, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %s %d of %d glyphs\n",
			res.Input, verb, len(res.Removed), res.GlyphsBefore)
	}

	if reportFile != "" {
		if err := writeReport(reportFile, results, dryRun); err != nil {
			return err
		}
	}

	if numFailed > 0 {
		return fmt.Errorf("%d of %d fonts failed", numFailed, len(results))
	}
	return nil
}

// makeJobs pairs input and output file names.  With an output directory,
// no two inputs may share a base name.
func makeJobs(args []string, outDir string, dryRun bool) ([]batch.Job, error) {
	switch {
	case outDir != "" || dryRun:
		if len(args) == 0 {
			return nil, errors.New("no input files given")
		}
		jobs := make([]batch.Job, len(args))
		seen := make(map[string]string)
		for i, in := range args {
			jobs[i].Input = in
			if outDir == "" {
				continue
			}
			out := filepath.Join(outDir, filepath.Base(in))
			if prev, ok := seen[out]; ok {
				return nil, fmt.Errorf("%s and %s would both be written to %s", prev, in, out)
			}
			seen[out] = in
			jobs[i].Output = out
		}
		return jobs, nil
	case len(args) != 2:
		return nil, errors.New("expected an input and an output file name, or -o dir")
	default:
		return []batch.Job{{Input: args[0], Output: args[1]}}, nil
	}
}

func writeReport(fileName string, results []*batch.Result, dryRun bool) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = report.Write(f, results, dryRun)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

// addOptionFlags adds the flags which control the choice of glyphs to
// remove.
func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "read settings from this YAML file")
	cmd.Flags().Bool("hinting", false, "keep the TrueType hinting programs")
	cmd.Flags().String("policy", "", `whitespace policy, "all" or "any"`)
	cmd.Flags().StringSlice("whitespace", nil, "additional whitespace code points, e.g. U+3000 or U+2000..U+200A")
}

// loadConfig reads the configuration file and applies the command line
// flags on top.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	explicit, _ := cmd.Flags().GetString("config")
	cf, err := config.Load(explicit)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", config.Find(explicit), err)
	}

	flags := cmd.Flags()
	if flags.Changed("hinting") {
		cf.Hinting, _ = flags.GetBool("hinting")
	}
	if flags.Changed("policy") {
		cf.Policy, _ = flags.GetString("policy")
	}
	if flags.Changed("whitespace") {
		extra, _ := flags.GetStringSlice("whitespace")
		if len(cf.Whitespace) == 0 && cf.DefaultWhitespace == nil {
			// keep the default list when extending it from the command line
			keep := true
			cf.DefaultWhitespace = &keep
		}
		cf.Whitespace = append(cf.Whitespace, extra...)
	}
	fontclean.Logger().Debug("configuration",
		"hinting", cf.Hinting,
		"policy", cf.Policy,
		"whitespace", cf.Whitespace)
	return cf, nil
}
