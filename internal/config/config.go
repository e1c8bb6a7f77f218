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

// Package config reads the configuration file of the fontclean tool.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"unicode"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fontclean"
)

// AppName is used to locate the configuration directory.
const AppName = "fontclean"

// LocalFile is the name of the configuration file in the current directory.
const LocalFile = ".fontclean.yaml"

// File holds the contents of a configuration file.
type File struct {
	// Hinting keeps the TrueType hinting programs.
	Hinting bool `yaml:"hinting"`

	// Policy is "all" or "any", see [fontclean.WhitespacePolicy].
	Policy string `yaml:"policy"`

	// DefaultWhitespace includes [fontclean.DefaultWhitespace] in the
	// whitespace list.  If this is not set, the default list is used
	// only when Whitespace is empty.
	DefaultWhitespace *bool `yaml:"default-whitespace"`

	// Whitespace lists additional code points and ranges,
	// for example "U+0020" or "U+2000..U+200A".
	Whitespace []string `yaml:"whitespace"`

	// Jobs is the number of fonts processed in parallel.
	Jobs int `yaml:"jobs"`
}

// ErrNotFound is returned by [Load] if an explicitly named configuration
// file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// Dir returns the directory where the user configuration file is stored.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Find returns the name of the configuration file to use.
// The search order is: the explicitly given name, [LocalFile] in the
// current directory, and config.yaml in [Dir].
// If no file is found, the empty string is returned.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{
		LocalFile,
		filepath.Join(Dir(), "config.yaml"),
	}
	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads the configuration file.  If explicit is empty and no
// configuration file exists, an empty configuration is returned.
func Load(explicit string) (*File, error) {
	name := Find(explicit)
	if name == "" {
		return &File{}, nil
	}

	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes the YAML contents of a configuration file.
func Parse(data []byte) (*File, error) {
	cf := &File{}
	if err := yaml.Unmarshal(data, cf); err != nil {
		return nil, err
	}
	return cf, nil
}

// Options converts the configuration into options for a
// [fontclean.Cleaner].
func (cf *File) Options() (*fontclean.Options, error) {
	policy, err := fontclean.ParsePolicy(cf.Policy)
	if err != nil {
		return nil, err
	}

	useDefault := len(cf.Whitespace) == 0
	if cf.DefaultWhitespace != nil {
		useDefault = *cf.DefaultWhitespace
	}
	var base *unicode.RangeTable
	if useDefault {
		base = fontclean.DefaultWhitespace()
	}
	ws, err := fontclean.ParseWhitespace(base, cf.Whitespace)
	if err != nil {
		return nil, err
	}

	return &fontclean.Options{
		KeepHinting: cf.Hinting,
		Whitespace:  ws,
		Policy:      policy,
	}, nil
}
