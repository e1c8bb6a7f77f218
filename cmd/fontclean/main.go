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

// Fontclean removes glyphs without contours from TrueType fonts.
//
// Usage:
//
//	fontclean clean in.ttf out.ttf
//	fontclean clean -o outdir a.ttf b.ttf ...
//	fontclean check font.ttf
//
// See "fontclean help" for all options.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fontclean:", err)
		os.Exit(1)
	}
}
