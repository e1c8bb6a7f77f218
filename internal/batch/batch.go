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

// Package batch cleans several font files.
package batch

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/fontclean"
)

// Job names an input font and the file to write the cleaned font to.
type Job struct {
	Input  string
	Output string
}

// Result describes the outcome of a single job.
type Result struct {
	Job

	GlyphsBefore int
	GlyphsAfter  int

	// Removed lists the glyphs removed from the font.  In dry-run mode,
	// it lists the glyphs which would have been removed.
	Removed []string

	Err error
}

// Processor runs cleaning jobs concurrently.
// Every job uses its own [fontclean.Cleaner].
type Processor struct {
	// Options are passed to every Cleaner.  The options are shared
	// between goroutines and must not be modified while Run is active.
	Options *fontclean.Options

	// Limit is the maximum number of fonts processed at the same time.
	// If this is zero, runtime.NumCPU() is used.
	Limit int

	// DryRun determines the invalid glyphs without writing any files.
	DryRun bool
}

// Run processes all jobs and returns one result per job, in the order
// of the jobs.  Failures of individual jobs are reported in the results
// and do not stop the other jobs.  The returned error is non-nil only if
// the context was cancelled.
func (p *Processor) Run(ctx context.Context, jobs []Job) ([]*Result, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	logger := fontclean.Logger()
	logger.Info("starting batch",
		"fonts", len(jobs),
		"limit", limit,
		"dry-run", p.DryRun)
	start := time.Now()

	results := make([]*Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i] = &Result{Job: job, Err: ctx.Err()}
				return ctx.Err()
			default:
			}

			res := p.clean(job)
			if res.Err != nil {
				logger.Warn("cleaning failed",
					"file", job.Input,
					"error", res.Err)
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()

	logger.Info("batch complete",
		"fonts", len(jobs),
		"elapsed", time.Since(start))
	return results, err
}

func (p *Processor) clean(job Job) *Result {
	res := &Result{Job: job}

	c, err := fontclean.Open(job.Input, p.Options)
	if err != nil {
		res.Err = err
		return res
	}
	defer c.Close()
	res.GlyphsBefore = c.Font().NumGlyphs()

	if p.DryRun {
		res.Removed, res.Err = c.InvalidGlyphs()
		res.GlyphsAfter = res.GlyphsBefore - len(res.Removed)
		return res
	}

	err = c.Clean()
	if err != nil {
		res.Err = err
		return res
	}
	res.Removed = c.Removed()
	res.GlyphsAfter = c.Font().NumGlyphs()

	res.Err = c.Save(job.Output)
	return res
}
