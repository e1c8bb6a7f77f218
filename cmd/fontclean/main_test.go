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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontclean/internal/batch"
	"seehuhn.de/go/fontclean/verify"
)

// execute runs the fontclean command with the given arguments.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// setup writes a font and an empty configuration file into a temporary
// directory.
func setup(t *testing.T) (dir, font, conf string) {
	t.Helper()
	dir = t.TempDir()
	font = filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(font, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	conf = filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(conf, []byte("policy: all\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, font, conf
}

func TestRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Version == "" {
		t.Error("expected non-empty version")
	}
	flag := cmd.PersistentFlags().Lookup("verbose")
	if flag == nil || flag.Shorthand != "v" {
		t.Error("expected verbose flag with shorthand -v")
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	want := []string{"check", "clean", "version"}
	if d := cmp.Diff(want, names); d != "" {
		t.Errorf("subcommands (-want +got):\n%s", d)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "fontclean ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestMakeJobs(t *testing.T) {
	cases := []struct {
		args   []string
		outDir string
		dryRun bool
		want   []batch.Job
		ok     bool
	}{
		{
			args: []string{"a.ttf", "b.ttf"},
			want: []batch.Job{{Input: "a.ttf", Output: "b.ttf"}},
			ok:   true,
		},
		{
			args:   []string{"x/a.ttf", "y/b.ttf"},
			outDir: "out",
			want: []batch.Job{
				{Input: "x/a.ttf", Output: filepath.Join("out", "a.ttf")},
				{Input: "y/b.ttf", Output: filepath.Join("out", "b.ttf")},
			},
			ok: true,
		},
		{
			args:   []string{"a.ttf"},
			dryRun: true,
			want:   []batch.Job{{Input: "a.ttf"}},
			ok:     true,
		},
		{args: []string{"a.ttf"}},
		{args: []string{"x/a.ttf", "y/a.ttf"}, outDir: "out"},
		{args: []string{"a.ttf", "b.ttf", "c.ttf"}},
		{outDir: "out"},
	}
	for i, c := range cases {
		got, err := makeJobs(c.args, c.outDir, c.dryRun)
		if (err == nil) != c.ok {
			t.Errorf("%d: unexpected error %v", i, err)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%d: jobs (-want +got):\n%s", i, d)
		}
	}
}

func TestCleanCmd(t *testing.T) {
	dir, font, conf := setup(t)
	outFile := filepath.Join(dir, "clean.ttf")
	reportFile := filepath.Join(dir, "report.md")

	out, err := execute(t, "clean", "--config", conf, "--report", reportFile, font, outFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "goregular.ttf: removed") {
		t.Errorf("unexpected output %q", out)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verify.EmptyGlyphs(data); err != nil {
		t.Error(err)
	}

	md, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(md), "goregular.ttf") {
		t.Error("report does not mention the input file")
	}
}

func TestCleanCmdOutDir(t *testing.T) {
	dir, font, conf := setup(t)
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "clean", "--config", conf, "--jobs", "2", "-o", outDir, font)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "goregular.ttf")); err != nil {
		t.Error(err)
	}
}

func TestCleanCmdDryRun(t *testing.T) {
	dir, font, conf := setup(t)

	out, err := execute(t, "clean", "--config", conf, "--dry-run", font)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "would remove") {
		t.Errorf("unexpected output %q", out)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("dry run wrote files: %d directory entries", len(entries))
	}
}

func TestCleanCmdErrors(t *testing.T) {
	dir, font, conf := setup(t)
	missing := filepath.Join(dir, "missing.ttf")

	cases := [][]string{
		{"clean", "--config", conf, font},
		{"clean", "--config", conf, missing, filepath.Join(dir, "x.ttf")},
		{"clean", "--config", filepath.Join(dir, "none.yaml"), font, filepath.Join(dir, "x.ttf")},
		{"clean", "--config", conf, "--policy", "some", font, filepath.Join(dir, "x.ttf")},
		{"clean", "--config", conf, "--whitespace", "U+XYZ", font, filepath.Join(dir, "x.ttf")},
	}
	for _, args := range cases {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%q: expected an error", args)
		}
	}
}

func TestCleanCmdSameName(t *testing.T) {
	dir, font, conf := setup(t)
	other := filepath.Join(dir, "sub", filepath.Base(font))
	if err := os.MkdirAll(filepath.Dir(other), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(other, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, "clean", "--config", conf, "-o", outDir, font, other)
	if err == nil {
		t.Fatal("expected an error for inputs with the same name")
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("output directory was created: %v", err)
	}
}

func TestCheckCmd(t *testing.T) {
	_, font, conf := setup(t)

	out, err := execute(t, "check", "--config", conf, font)
	if err != nil && !errors.Is(err, errInvalidGlyphs) {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, font+": ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCheckCmdNoArgs(t *testing.T) {
	if _, err := execute(t, "check"); err == nil {
		t.Error("expected an error")
	}
}
