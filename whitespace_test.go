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

package fontclean

import (
	"testing"
	"unicode"
)

func TestDefaultWhitespace(t *testing.T) {
	ws := DefaultWhitespace()
	for _, r := range []rune{0x0000, 0x0009, 0x000D, 0x0020, 0x00A0, 0x2003, 0x200B, 0x3000, 0xFEFF} {
		if !unicode.Is(ws, r) {
			t.Errorf("%U is not in the default whitespace list", r)
		}
	}
	for _, r := range []rune{'A', '.', 0x00AD, 0xE000} {
		if unicode.Is(ws, r) {
			t.Errorf("%U is in the default whitespace list", r)
		}
	}
}

func TestParseWhitespace(t *testing.T) {
	ws, err := ParseWhitespace(nil, []string{"U+0020", "0xA0", "9", " U+2000..U+2002 ", ""})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []rune{0x20, 0xA0, 0x09, 0x2000, 0x2001, 0x2002} {
		if !unicode.Is(ws, r) {
			t.Errorf("%U missing", r)
		}
	}
	for _, r := range []rune{0x0A, 0x2003, 'A'} {
		if unicode.Is(ws, r) {
			t.Errorf("unexpected %U", r)
		}
	}

	ws, err = ParseWhitespace(Whitespace('x'), []string{"U+0020"})
	if err != nil {
		t.Fatal(err)
	}
	if !unicode.Is(ws, 'x') || !unicode.Is(ws, ' ') {
		t.Error("base table not merged")
	}

	for _, bad := range []string{"U+XYZ", "U+0030..U+0020", "0x110000", "space"} {
		if _, err := ParseWhitespace(nil, []string{bad}); err == nil {
			t.Errorf("%q accepted", bad)
		}
	}
}

func TestPolicy(t *testing.T) {
	ws := Whitespace(' ', 0x3000)
	cases := []struct {
		policy WhitespacePolicy
		codes  []rune
		want   bool
	}{
		{PolicyAll, nil, false},
		{PolicyAny, nil, false},
		{PolicyAll, []rune{' '}, true},
		{PolicyAll, []rune{' ', 0x3000}, true},
		{PolicyAll, []rune{' ', 'A'}, false},
		{PolicyAny, []rune{' ', 'A'}, true},
		{PolicyAny, []rune{'A', 'B'}, false},
	}
	for _, c := range cases {
		if got := c.policy.Exempt(c.codes, ws); got != c.want {
			t.Errorf("%s.Exempt(%q) = %t, want %t", c.policy, c.codes, got, c.want)
		}
	}

	for _, p := range []WhitespacePolicy{PolicyAll, PolicyAny} {
		p2, err := ParsePolicy(p.String())
		if err != nil || p2 != p {
			t.Errorf("ParsePolicy(%q) = %v, %v", p.String(), p2, err)
		}
	}
	if _, err := ParsePolicy("some"); err == nil {
		t.Error("invalid policy accepted")
	}
}
