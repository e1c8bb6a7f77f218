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

	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// OutlineRecord describes the outline of a single glyph.
type OutlineRecord struct {
	GID  glyph.ID
	Name string

	// Contours is the number of contours of a simple glyph.
	// Glyphs with empty glyph data have zero contours.
	// For composite glyphs, Contours is -1.
	Contours int
}

// OutlineRecord returns information about the outline of the named glyph.
// If the font has no glyph of this name, nil is returned.
func (c *Cleaner) OutlineRecord(name string) (*OutlineRecord, error) {
	if c.font == nil {
		return nil, ErrClosed
	}
	outlines := c.font.Outlines.(*glyf.Outlines)
	for i, n := range c.font.MakeGlyphNames() {
		if n == name {
			return outlineRecord(outlines, glyph.ID(i), name)
		}
	}
	return nil, nil
}

func outlineRecord(outlines *glyf.Outlines, gid glyph.ID, name string) (*OutlineRecord, error) {
	if int(gid) >= len(outlines.Glyphs) {
		return nil, nil
	}
	rec := &OutlineRecord{
		GID:  gid,
		Name: name,
	}

	g := outlines.Glyphs[gid]
	if g == nil {
		return rec, nil
	}
	switch d := g.Data.(type) {
	case glyf.SimpleGlyph:
		rec.Contours = int(d.NumContours)
	case glyf.CompositeGlyph:
		rec.Contours = -1
	default:
		return nil, fmt.Errorf("glyph %q: unexpected glyph data %T", name, g.Data)
	}
	return rec, nil
}

func formatCodes(codes []rune) string {
	parts := make([]string, len(codes))
	for i, r := range codes {
		parts[i] = fmt.Sprintf("%U", r)
	}
	return strings.Join(parts, ",")
}
