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

// Package subset removes glyphs from TrueType fonts.
package subset

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/mac"
)

// Options control how a subset is constructed.
type Options struct {
	// KeepHinting retains the TrueType hinting programs.
	// If this is false, the "fpgm", "prep" and "cvt " tables are dropped
	// and the instructions are removed from all glyphs.
	KeepHinting bool
}

// hintingTables lists the tables which only matter for hinted rendering.
var hintingTables = []string{"fpgm", "prep", "cvt "}

// Glyf constructs a subset of a font with TrueType outlines.
//
// The argument keep lists the glyph IDs of the original font which should
// be retained.  Glyph 0 (.notdef) and all glyphs used as components of
// composite glyphs are added automatically.  The retained glyphs keep
// their relative order.
//
// The second return value gives, for every glyph in the new font, the
// corresponding glyph ID in the original font.
//
// If glyphs are removed, all subtables of the character map are remapped
// to the new glyph IDs, and since glyph IDs
// change, the GDEF, GSUB and GPOS tables are not carried over.  If all
// glyphs are retained, these tables are kept unchanged.
func Glyf(info *sfnt.Font, keep []glyph.ID, opt *Options) (*sfnt.Font, []glyph.ID, error) {
	outlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok {
		return nil, nil, errNotGlyf
	}
	if opt == nil {
		opt = &Options{}
	}
	numGlyphs := len(outlines.Glyphs)
	if numGlyphs == 0 {
		return nil, nil, errors.New("subset: font has no glyphs")
	}

	include := make(map[glyph.ID]bool)
	todo := make(map[glyph.ID]bool)
	todo[0] = true
	for _, gid := range keep {
		if int(gid) >= numGlyphs {
			return nil, nil, fmt.Errorf("subset: glyph %d out of range", gid)
		}
		todo[gid] = true
	}
	for len(todo) > 0 {
		gid := pop(todo)
		include[gid] = true

		g := outlines.Glyphs[gid]
		if g == nil {
			continue
		}
		for _, gid2 := range g.Components() {
			if int(gid2) >= numGlyphs {
				return nil, nil, fmt.Errorf("subset: glyph %d: component %d out of range", gid, gid2)
			}
			if !include[gid2] {
				todo[gid2] = true
			}
		}
	}

	origGID := slices.Sorted(maps.Keys(include))
	newGid := make(map[glyph.ID]glyph.ID, len(origGID))
	for i, gid := range origGID {
		newGid[gid] = glyph.ID(i)
	}

	o2 := &glyf.Outlines{
		Tables: subsetTables(outlines.Tables, opt),
		Maxp:   outlines.Maxp,
	}
	for _, gid := range origGID {
		g := outlines.Glyphs[gid]
		if g != nil {
			g = g.FixComponents(newGid)
		}
		if !opt.KeepHinting {
			g = stripInstructions(g)
		}
		o2.Glyphs = append(o2.Glyphs, g)

		var width funit.Int16
		if int(gid) < len(outlines.Widths) {
			width = outlines.Widths[gid]
		}
		o2.Widths = append(o2.Widths, width)

		if outlines.Names != nil {
			var name string
			if int(gid) < len(outlines.Names) {
				name = outlines.Names[gid]
			}
			o2.Names = append(o2.Names, name)
		}
	}

	res := &sfnt.Font{}
	*res = *info
	res.Outlines = o2
	if len(origGID) < numGlyphs {
		res.CMapTable = subsetCMap(info.CMapTable, newGid)
		res.Gdef = nil
		res.Gsub = nil
		res.Gpos = nil
	}

	return res, origGID, nil
}

func subsetTables(tables map[string][]byte, opt *Options) map[string][]byte {
	if tables == nil {
		return nil
	}
	res := make(map[string][]byte, len(tables))
	for name, data := range tables {
		if !opt.KeepHinting && slices.Contains(hintingTables, name) {
			continue
		}
		res[name] = data
	}
	return res
}

// subsetCMap remaps all subtables of a "cmap" table to the new glyph IDs.
// Entries which point to removed glyphs are dropped.  Every subtable
// keeps its key, so that symbol and Macintosh subtables survive along
// with the Unicode ones.  Subtables in formats which cannot be decoded
// are omitted, since their glyph IDs would be wrong after subsetting.
func subsetCMap(orig cmap.Table, newGid map[glyph.ID]glyph.ID) cmap.Table {
	res := cmap.Table{}
	for key := range orig {
		sub, err := orig.Get(key)
		if err != nil {
			continue
		}

		var out cmap.Subtable
		switch sub := sub.(type) {
		case *cmap.Format0:
			f := &cmap.Format0{}
			for c, gid := range sub.Data {
				f.Data[c] = byte(newGid[glyph.ID(gid)])
			}
			out = f
		case cmap.Format4:
			f := cmap.Format4{}
			for code, gid := range sub {
				gid2, ok := newGid[gid]
				if !ok || gid2 == 0 {
					continue
				}
				if key.PlatformID == 1 {
					// Macintosh subtables are decoded to Unicode.
					code = uint16(mac.Encode(string(rune(code)))[0])
				}
				f[code] = gid2
			}
			if len(f) > 0 {
				out = f
			}
		case cmap.Format12:
			f := cmap.Format12{}
			for code, gid := range sub {
				gid2, ok := newGid[gid]
				if !ok || gid2 == 0 {
					continue
				}
				f[code] = gid2
			}
			if len(f) > 0 {
				out = f
			}
		}
		if out != nil {
			res[key] = out.Encode(key.Language)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// stripInstructions returns a copy of g without TrueType instructions.
// Glyphs which cannot be unpacked are returned unchanged.
func stripInstructions(g *glyf.Glyph) *glyf.Glyph {
	if g == nil {
		return nil
	}
	switch d := g.Data.(type) {
	case glyf.SimpleGlyph:
		info, err := d.Unpack()
		if err != nil || len(info.Instructions) == 0 {
			return g
		}
		info.Instructions = nil
		return &glyf.Glyph{
			Rect16: g.Rect16,
			Data:   info.Pack(),
		}
	case glyf.CompositeGlyph:
		if d.Instructions == nil {
			return g
		}
		d2 := glyf.CompositeGlyph{
			Components: make([]glyf.GlyphComponent, len(d.Components)),
		}
		for i, c := range d.Components {
			c.Flags &^= glyf.FlagWeHaveInstructions
			d2.Components[i] = c
		}
		return &glyf.Glyph{
			Rect16: g.Rect16,
			Data:   d2,
		}
	}
	return g
}

func pop(todo map[glyph.ID]bool) glyph.ID {
	for key := range todo {
		delete(todo, key)
		return key
	}
	panic("empty map")
}

var errNotGlyf = errors.New("subset: font does not have TrueType outlines")
