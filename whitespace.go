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
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Code points which fonts usually map to empty glyphs, in addition to
// the Unicode White_Space property.
var invisible = []rune{
	0x0000, // NULL
	0x0008, // BACKSPACE
	0x001D, // GROUP SEPARATOR
	0x180E, // MONGOLIAN VOWEL SEPARATOR
	0x200B, // ZERO WIDTH SPACE
	0x200C, // ZERO WIDTH NON-JOINER
	0x200D, // ZERO WIDTH JOINER
	0x2060, // WORD JOINER
	0xFEFF, // ZERO WIDTH NO-BREAK SPACE
}

var defaultWhitespace = sync.OnceValue(func() *unicode.RangeTable {
	return rangetable.Merge(unicode.White_Space, rangetable.New(invisible...))
})

// DefaultWhitespace returns the code points which are allowed to map to
// glyphs without contours, if no other list is given.
// This consists of the Unicode White_Space characters, the zero-width
// format characters, and a few control characters.
func DefaultWhitespace() *unicode.RangeTable {
	return defaultWhitespace()
}

// Whitespace returns a table containing exactly the given code points.
func Whitespace(codes ...rune) *unicode.RangeTable {
	if len(codes) == 0 {
		return &unicode.RangeTable{}
	}
	return rangetable.New(codes...)
}

// ParseWhitespace converts a list of code points and code point ranges
// into a table.  Each entry has the form "U+0020", "0x20", "32" or
// "U+2000..U+200A".  If base is non-nil, the result includes all
// code points from base.
func ParseWhitespace(base *unicode.RangeTable, entries []string) (*unicode.RangeTable, error) {
	var codes []rune
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		first, last, isRange := strings.Cut(entry, "..")
		lo, err := parseCode(first)
		if err != nil {
			return nil, err
		}
		hi := lo
		if isRange {
			hi, err = parseCode(last)
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, fmt.Errorf("invalid code point range %q", entry)
			}
		}
		for r := lo; r <= hi; r++ {
			codes = append(codes, r)
		}
	}

	res := Whitespace(codes...)
	if base != nil {
		res = rangetable.Merge(base, res)
	}
	return res, nil
}

func parseCode(s string) (rune, error) {
	s = strings.TrimSpace(s)
	var x uint64
	var err error
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"):
		x, err = strconv.ParseUint(s[2:], 16, 32)
	default:
		x, err = strconv.ParseUint(s, 0, 32)
	}
	if err != nil || x > unicode.MaxRune {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(x), nil
}
