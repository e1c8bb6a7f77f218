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
	"errors"
)

// ErrUnsupportedFontFormat indicates that a font does not use TrueType
// outlines.
var ErrUnsupportedFontFormat = errors.New("only TrueType (quadratic) fonts are supported")

// ErrClosed is returned when a Cleaner is used after Close has been called.
var ErrClosed = errors.New("fontclean: cleaner is closed")

var errNoFont = errors.New("fontclean: no font given")

// UnsupportedFormatError is returned when a font is loaded which does not
// have a "glyf" table.
type UnsupportedFormatError struct {
	FileName string
	Format   string
}

func (err *UnsupportedFormatError) Error() string {
	msg := "unsupported font format " + err.Format + ": " + ErrUnsupportedFontFormat.Error()
	if err.FileName != "" {
		msg = err.FileName + ": " + msg
	}
	return msg
}

func (err *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFontFormat
}

// IsUnsupported returns true if the error indicates a font which does not
// use TrueType outlines.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedFontFormat)
}
