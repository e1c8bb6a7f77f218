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

// Package fontclean removes broken glyphs from TrueType fonts.
//
// A glyph is considered broken, if it has no contours although it is
// expected to be visible.  Glyphs which are only selected by whitespace
// characters, like "space", legitimately have no contours and are kept.
// The ".notdef" glyph is always kept.
//
// A Cleaner loads a font, removes the broken glyphs and writes the
// result to a new file:
//
//	c, err := fontclean.Open("in.ttf", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//	err = c.Clean()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = c.Save("out.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Only fonts with TrueType (quadratic) outlines are supported.
// Fonts with CFF outlines are rejected with [ErrUnsupportedFontFormat].
package fontclean
