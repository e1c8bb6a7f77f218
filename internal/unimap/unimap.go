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

// Package unimap reads the Unicode character map of an sfnt font.
package unimap

import (
	"slices"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// unicodeKeys lists the Unicode cmap subtables, in order of preference.
// Mac Roman subtables are not used, since their code ranges are not
// given in Unicode code points.
var unicodeKeys = []cmap.Key{
	{PlatformID: 3, EncodingID: 10}, // full unicode
	{PlatformID: 0, EncodingID: 4},
	{PlatformID: 0, EncodingID: 6},
	{PlatformID: 3, EncodingID: 1}, // BMP
	{PlatformID: 0, EncodingID: 3},
}

// Read returns the mapping from Unicode code points to glyph IDs.
//
// Code points which map to glyph 0 or to a glyph ID outside the font
// are omitted.  If the font has no usable Unicode subtable, the result
// is an empty map.
func Read(info *sfnt.Font) map[rune]glyph.ID {
	res := make(map[rune]glyph.ID)

	subtable := Subtable(info)
	if subtable == nil {
		return res
	}

	numGlyphs := info.NumGlyphs()
	low, high := subtable.CodeRange()
	for r := low; r <= high; r++ {
		gid := subtable.Lookup(r)
		if gid == 0 || int(gid) >= numGlyphs {
			continue
		}
		res[r] = gid
	}
	return res
}

// Subtable returns the preferred Unicode cmap subtable of the font,
// or nil if there is none.
func Subtable(info *sfnt.Font) cmap.Subtable {
	for _, key := range unicodeKeys {
		if _, ok := info.CMapTable[key]; !ok {
			continue
		}
		sub, err := info.CMapTable.Get(key)
		if err == nil {
			return sub
		}
	}
	return nil
}

// Reverse turns a code point map into a map from glyph IDs to the code
// points which select them.  The code points for each glyph are sorted.
func Reverse(m map[rune]glyph.ID) map[glyph.ID][]rune {
	res := make(map[glyph.ID][]rune)
	for r, gid := range m {
		res[gid] = append(res[gid], r)
	}
	for _, rr := range res {
		slices.Sort(rr)
	}
	return res
}
