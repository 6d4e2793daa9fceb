// ABOUTME: Theme file loading (YAML or JSON) with default fallback per role
// ABOUTME: Resolve accepts a built-in name or a path to a theme file

package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"gopkg.in/yaml.v3"
)

// ErrUnknownTheme is returned by Resolve for a name that is neither a
// built-in nor a readable file.
var ErrUnknownTheme = errors.New("unknown theme")

// filePalette is the on-disk shape of a Palette. Field names must match
// Palette's so convertPalette can map them by reflection.
type filePalette struct {
	Primary   string `yaml:"primary"`
	Muted     string `yaml:"muted"`
	Accent    string `yaml:"accent"`
	Selection string `yaml:"selection"`
	Match     string `yaml:"match"`
	Directory string `yaml:"directory"`

	ScrollTrack string `yaml:"scroll_track"`
	ScrollThumb string `yaml:"scroll_thumb"`

	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
	Error  string `yaml:"error"`
}

type fileTheme struct {
	Name    string      `yaml:"name"`
	Base    string      `yaml:"base"`
	Palette filePalette `yaml:"palette"`
}

// LoadFile reads a theme file. YAML is a superset of JSON, so both
// formats are accepted. Unset roles inherit from the "base" built-in,
// or DefaultPalette when no base is named.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a theme document.
func Parse(data []byte) (*Theme, error) {
	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	base := DefaultPalette()
	if ft.Base != "" {
		b := Builtin(ft.Base)
		if b == nil {
			return nil, fmt.Errorf("theme base %q: %w", ft.Base, ErrUnknownTheme)
		}
		base = b.Palette
	}

	return &Theme{
		Name:    ft.Name,
		Palette: convertPalette(ft.Palette, base),
	}, nil
}

// Resolve returns the built-in theme called name, or loads name as a
// file path, or as name.yaml, name.yml or name.json inside one of dirs.
func Resolve(name string, dirs ...string) (*Theme, error) {
	if name == "" {
		return Builtin("default"), nil
	}
	if t := Builtin(name); t != nil {
		return t, nil
	}
	if _, err := os.Stat(name); err == nil {
		return LoadFile(name)
	}
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml", ".json"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return LoadFile(path)
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
}

// convertPalette maps filePalette fields onto a Palette, using base for empty fields.
func convertPalette(fp filePalette, base Palette) Palette {
	p := base

	fv := reflect.ValueOf(fp)
	pv := reflect.ValueOf(&p).Elem()
	ft := fv.Type()

	for i := range ft.NumField() {
		code := fv.Field(i).String()
		if code == "" {
			continue
		}
		pf := pv.FieldByName(ft.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(code)))
		}
	}

	return p
}
