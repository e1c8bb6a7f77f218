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
	"strings"
	"unicode"
)

// Options control how a font is cleaned.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// KeepHinting retains the TrueType hinting programs when the font
	// is cleaned.
	KeepHinting bool

	// Whitespace lists the code points which are allowed to map to glyphs
	// without contours.  If this is nil, [DefaultWhitespace] is used.
	Whitespace *unicode.RangeTable

	// Policy decides how glyphs which are selected by more than one code
	// point are treated.
	Policy WhitespacePolicy
}

func (opt *Options) whitespace() *unicode.RangeTable {
	if opt == nil || opt.Whitespace == nil {
		return DefaultWhitespace()
	}
	return opt.Whitespace
}

// WhitespacePolicy decides whether a glyph without contours is exempt
// from removal, given the code points which map to it.
//
// Glyphs which are not selected by any code point are never exempt.
type WhitespacePolicy int

const (
	// PolicyAll exempts a glyph if all of its code points are whitespace.
	PolicyAll WhitespacePolicy = iota

	// PolicyAny exempts a glyph if at least one of its code points is
	// whitespace.
	PolicyAny
)

func (p WhitespacePolicy) String() string {
	switch p {
	case PolicyAll:
		return "all"
	case PolicyAny:
		return "any"
	default:
		return fmt.Sprintf("WhitespacePolicy(%d)", int(p))
	}
}

// ParsePolicy converts the output of [WhitespacePolicy.String] back to
// a policy value.
func ParsePolicy(s string) (WhitespacePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return PolicyAll, nil
	case "any":
		return PolicyAny, nil
	}
	return 0, fmt.Errorf("unknown whitespace policy %q", s)
}

// Exempt reports whether a glyph without contours, selected by the given
// code points, should be kept.
func (p WhitespacePolicy) Exempt(codes []rune, ws *unicode.RangeTable) bool {
	if len(codes) == 0 {
		return false
	}
	if p == PolicyAny {
		for _, r := range codes {
			if unicode.Is(ws, r) {
				return true
			}
		}
		return false
	}
	for _, r := range codes {
		if !unicode.Is(ws, r) {
			return false
		}
	}
	return true
}
