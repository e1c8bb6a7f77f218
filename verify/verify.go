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

// Package verify checks fonts written by fontclean.
//
// The checks use the independent sfnt parser from golang.org/x/image,
// so that problems in the writer are not masked by matching problems in
// the reader.
package verify

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Expect describes the expected contents of a font.
type Expect struct {
	// NumGlyphs is the expected number of glyphs.
	NumGlyphs int

	// Names, if non-nil, gives the expected glyph names in glyph order.
	// Names are only compared if the font contains glyph names.
	Names []string

	// Runes maps code points to the glyph IDs they are expected to
	// select.  A value of 0 means that the code point must not be mapped.
	Runes map[rune]int
}

// Font parses a font and compares it to the expected contents.
// All differences found are reported in the returned error.
func Font(data []byte, want *Expect) error {
	f, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	var buf sfnt.Buffer

	var errs []error
	if got := f.NumGlyphs(); got != want.NumGlyphs {
		errs = append(errs, fmt.Errorf("verify: %d glyphs, expected %d", got, want.NumGlyphs))
	}

	if want.Names != nil && len(want.Names) == f.NumGlyphs() {
		for i, wantName := range want.Names {
			got, err := f.GlyphName(&buf, sfnt.GlyphIndex(i))
			if err != nil {
				errs = append(errs, fmt.Errorf("verify: glyph %d: %w", i, err))
				break
			}
			if got == "" {
				// no glyph names in the font
				break
			}
			if got != wantName {
				errs = append(errs, fmt.Errorf("verify: glyph %d is %q, expected %q", i, got, wantName))
			}
		}
	}

	for r, wantGID := range want.Runes {
		gid, err := f.GlyphIndex(&buf, r)
		if err != nil {
			errs = append(errs, fmt.Errorf("verify: %U: %w", r, err))
			continue
		}
		if int(gid) != wantGID {
			errs = append(errs, fmt.Errorf("verify: %U maps to glyph %d, expected %d", r, gid, wantGID))
		}
	}

	return errors.Join(errs...)
}

// EmptyGlyphs returns the IDs of all glyphs in the font which have no
// outline segments.
func EmptyGlyphs(data []byte) ([]int, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	var buf sfnt.Buffer
	ppem := fixed.I(int(f.UnitsPerEm()))

	var res []int
	for i := 0; i < f.NumGlyphs(); i++ {
		segs, err := f.LoadGlyph(&buf, sfnt.GlyphIndex(i), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("verify: glyph %d: %w", i, err)
		}
		if len(segs) == 0 {
			res = append(res, i)
		}
	}
	return res, nil
}
