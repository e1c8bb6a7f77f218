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
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontclean/internal/unimap"
	"seehuhn.de/go/fontclean/subset"
)

// Cleaner removes glyphs without contours from a TrueType font.
//
// A Cleaner owns its font exclusively.  It is not safe for concurrent use;
// to process several fonts in parallel, use one Cleaner per font.
type Cleaner struct {
	// FileName is the name of the file the font was loaded from,
	// or the empty string if the font was not read from a file.
	FileName string

	font    *sfnt.Font
	opt     Options
	removed []string
}

// Open reads a font file and returns a Cleaner for it.
// The complete font is loaded into memory.
//
// If the font does not have TrueType outlines, an error wrapping
// [ErrUnsupportedFontFormat] is returned.
func Open(fileName string, opt *Options) (*Cleaner, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}

	c, err := newCleaner(info, opt, fileName)
	if err != nil {
		return nil, err
	}
	Logger().Info("font loaded",
		"file", fileName,
		"glyphs", info.NumGlyphs(),
		"hinting", c.opt.KeepHinting)
	return c, nil
}

// New returns a Cleaner for a font which has already been loaded.
// The Cleaner takes ownership of the font, the caller must not modify
// it afterwards.
func New(info *sfnt.Font, opt *Options) (*Cleaner, error) {
	return newCleaner(info, opt, "")
}

func newCleaner(info *sfnt.Font, opt *Options, fileName string) (*Cleaner, error) {
	if info == nil {
		return nil, errNoFont
	}
	if _, ok := info.Outlines.(*glyf.Outlines); !ok {
		format := fmt.Sprintf("%T", info.Outlines)
		if info.IsCFF() {
			format = "CFF"
		}
		return nil, &UnsupportedFormatError{
			FileName: fileName,
			Format:   format,
		}
	}

	c := &Cleaner{
		FileName: fileName,
		font:     info,
	}
	if opt != nil {
		c.opt = *opt
	}
	c.opt.Whitespace = opt.whitespace()
	return c, nil
}

// Font returns the current state of the font.
// The result is nil after the Cleaner has been closed.
func (c *Cleaner) Font() *sfnt.Font {
	return c.font
}

// GlyphOrder returns the names of all glyphs in the font,
// indexed by glyph ID.
func (c *Cleaner) GlyphOrder() ([]string, error) {
	if c.font == nil {
		return nil, ErrClosed
	}
	return c.font.MakeGlyphNames(), nil
}

// ReverseMap returns, for every glyph in the font, the code points which
// are mapped to the glyph by the font's Unicode character map.
// Glyphs which are not referenced by any code point map to an empty slice.
func (c *Cleaner) ReverseMap() (map[string][]rune, error) {
	if c.font == nil {
		return nil, ErrClosed
	}
	rev := unimap.Reverse(unimap.Read(c.font))
	names := c.font.MakeGlyphNames()
	res := make(map[string][]rune, len(names))
	for gid, name := range names {
		if res[name] == nil {
			res[name] = []rune{}
		}
		res[name] = append(res[name], rev[glyph.ID(gid)]...)
	}
	return res, nil
}

// InvalidGlyphs returns the names of the glyphs which would be removed by
// [Cleaner.Clean], in glyph order.
//
// A glyph is invalid, if its name is not ".notdef", it has zero contours,
// and the code points which select the glyph are not exempt according to
// the whitespace list and policy.
func (c *Cleaner) InvalidGlyphs() ([]string, error) {
	if c.font == nil {
		return nil, ErrClosed
	}
	names := c.font.MakeGlyphNames()
	invalid, err := c.invalidGIDs(names)
	if err != nil || len(invalid) == 0 {
		return nil, err
	}
	res := make([]string, len(invalid))
	for i, gid := range invalid {
		res[i] = names[gid]
	}
	return res, nil
}

func (c *Cleaner) invalidGIDs(names []string) ([]glyph.ID, error) {
	rev := unimap.Reverse(unimap.Read(c.font))
	outlines := c.font.Outlines.(*glyf.Outlines)
	policy := c.opt.Policy
	ws := c.opt.Whitespace

	var res []glyph.ID
	for i, name := range names {
		if name == ".notdef" {
			continue
		}
		gid := glyph.ID(i)
		rec, err := outlineRecord(outlines, gid, name)
		if err != nil {
			return nil, err
		}
		if rec == nil || rec.Contours != 0 {
			continue
		}
		codes := rev[gid]
		if policy.Exempt(codes, ws) {
			continue
		}
		Logger().Debug("invalid glyph",
			"file", c.FileName,
			"glyph", name,
			"gid", int(gid),
			"codes", formatCodes(codes))
		res = append(res, gid)
	}
	return res, nil
}

// Clean removes all invalid glyphs from the font.
//
// Invalid glyphs which are used as components of composite glyphs are
// kept.  Calling Clean a second time does not remove any further glyphs.
func (c *Cleaner) Clean() error {
	if c.font == nil {
		return ErrClosed
	}

	names := c.font.MakeGlyphNames()
	invalid, err := c.invalidGIDs(names)
	if err != nil {
		return err
	}

	keep := make([]glyph.ID, 0, len(names)-len(invalid))
	for i := range names {
		gid := glyph.ID(i)
		if _, found := slices.BinarySearch(invalid, gid); !found {
			keep = append(keep, gid)
		}
	}

	opt := &subset.Options{KeepHinting: c.opt.KeepHinting}
	res, origGID, err := subset.Glyf(c.font, keep, opt)
	if err != nil {
		return fmt.Errorf("subsetting %s: %w", c.displayName(), err)
	}

	numRemoved := 0
	for _, gid := range invalid {
		if _, retained := slices.BinarySearch(origGID, gid); retained {
			Logger().Warn("invalid glyph kept as a component",
				"file", c.FileName,
				"glyph", names[gid])
			continue
		}
		c.removed = append(c.removed, names[gid])
		numRemoved++
	}
	c.font = res

	Logger().Info("font cleaned",
		"file", c.FileName,
		"glyphs", len(origGID),
		"removed", numRemoved)
	return nil
}

// Removed returns the names of the glyphs removed by all calls to
// [Cleaner.Clean] so far.
func (c *Cleaner) Removed() []string {
	return slices.Clone(c.removed)
}

// WriteTo writes the font in sfnt format to w.
func (c *Cleaner) WriteTo(w io.Writer) (int64, error) {
	if c.font == nil {
		return 0, ErrClosed
	}
	return c.font.Write(w)
}

// Save writes the font to the named file.
//
// The font is first written to a temporary file in the same directory,
// which is then renamed.  If an error occurs, the named file is not
// modified.
func (c *Cleaner) Save(fileName string) error {
	if c.font == nil {
		return ErrClosed
	}

	tmp, err := os.CreateTemp(filepath.Dir(fileName), ".fontclean-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	n, err := c.WriteTo(tmp)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	err2 := tmp.Close()
	if err == nil {
		err = err2
	}
	if err == nil {
		err = os.Rename(tmpName, fileName)
	}
	if err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", fileName, err)
	}

	Logger().Info("font saved",
		"file", fileName,
		"bytes", n,
		"glyphs", c.font.NumGlyphs())
	return nil
}

// Close releases the font.  After Close has been called, all other
// methods return [ErrClosed].
func (c *Cleaner) Close() error {
	if c.font == nil {
		return ErrClosed
	}
	c.font = nil
	return nil
}

func (c *Cleaner) displayName() string {
	if c.FileName != "" {
		return c.FileName
	}
	return "font"
}
