// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Primary:   NewColor("\x1b[97m"),
			Muted:     NewColor("\x1b[38;5;244m"),
			Accent:    NewColor("\x1b[38;5;214m"),
			Selection: NewColor("\x1b[48;5;236m"),
			Match:     NewColor("\x1b[1m\x1b[38;5;221m"),
			Directory: NewColor("\x1b[38;5;117m"),

			ScrollTrack: NewColor("\x1b[38;5;238m"),
			ScrollThumb: NewColor("\x1b[38;5;250m"),

			Header: NewColor("\x1b[1m\x1b[97m"),
			Footer: NewColor("\x1b[38;5;244m"),
			Error:  NewColor("\x1b[38;5;203m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary:   NewColor("\x1b[30m"),
			Muted:     NewColor("\x1b[38;5;246m"),
			Accent:    NewColor("\x1b[38;5;166m"),
			Selection: NewColor("\x1b[48;5;254m"),
			Match:     NewColor("\x1b[1m\x1b[38;5;130m"),
			Directory: NewColor("\x1b[38;5;25m"),

			ScrollTrack: NewColor("\x1b[38;5;252m"),
			ScrollThumb: NewColor("\x1b[38;5;240m"),

			Header: NewColor("\x1b[1m\x1b[30m"),
			Footer: NewColor("\x1b[38;5;246m"),
			Error:  NewColor("\x1b[38;5;160m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary:   NewColor("\x1b[0m"),
			Muted:     NewColor("\x1b[2m"),
			Accent:    NewColor("\x1b[1m"),
			Selection: NewColor("\x1b[7m"),
			Match:     NewColor("\x1b[4m"),
			Directory: NewColor("\x1b[1m"),

			ScrollTrack: NewColor("\x1b[2m"),
			ScrollThumb: NewColor("\x1b[1m"),

			Header: NewColor("\x1b[1m"),
			Footer: NewColor("\x1b[2m"),
			Error:  NewColor("\x1b[1m\x1b[4m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
