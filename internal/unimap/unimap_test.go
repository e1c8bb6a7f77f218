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

package unimap

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

func TestRead(t *testing.T) {
	info := &sfnt.Font{
		FamilyName: "Test",
		UnitsPerEm: 1000,
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, 4),
			Widths: make([]funit.Int16, 4),
		},
		CMapTable: cmap.Table{
			{PlatformID: 3, EncodingID: 1}: cmap.Format4{
				0x0020: 2,
				0x0041: 1,
				0x0042: 1,
				0x0043: 9, // out of range
			}.Encode(0),
		},
	}

	got := Read(info)
	want := map[rune]glyph.ID{
		' ': 2,
		'A': 1,
		'B': 1,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected map (-want +got):\n%s", d)
	}

	rev := Reverse(got)
	wantRev := map[glyph.ID][]rune{
		1: {'A', 'B'},
		2: {' '},
	}
	if d := cmp.Diff(wantRev, rev); d != "" {
		t.Errorf("unexpected reverse map (-want +got):\n%s", d)
	}
}

func TestReadNoCMap(t *testing.T) {
	info := &sfnt.Font{
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, 2),
			Widths: make([]funit.Int16, 2),
		},
	}
	if m := Read(info); len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
	if Subtable(info) != nil {
		t.Error("expected no subtable")
	}
}

func TestReadGoRegular(t *testing.T) {
	info, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}

	m := Read(info)
	for _, r := range "AZaz09 " {
		if m[r] == 0 {
			t.Errorf("%q is not mapped", r)
		}
	}
	if m['A'] == m['B'] {
		t.Error("A and B map to the same glyph")
	}

	rev := Reverse(m)
	for r, gid := range m {
		found := false
		for _, r2 := range rev[gid] {
			if r2 == r {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q missing from reverse map of glyph %d", r, gid)
		}
	}
}
