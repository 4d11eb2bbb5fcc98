// Package colors owns theme resolution and the immutable palette
// snapshots shared read-only by every render layer.
package colors

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/vtrender/internal/renderer/core"
)

// Theme describes the colors a terminal should render with.
// A Theme is a plain description; the Manager resolves it into a Palette.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Foreground is the default text color.
	Foreground core.Color

	// Background is the terminal background color.
	Background core.Color

	// Cursor is the cursor block color.
	Cursor core.Color

	// CursorAccent is the color of the glyph under the cursor.
	// Leave default to derive one with adequate contrast.
	CursorAccent core.Color

	// Selection is the selection overlay color.
	Selection core.Color

	// ANSI holds the 16 standard terminal colors.
	ANSI [16]core.Color
}

// DefaultTheme returns a dark theme modeled on common defaults.
func DefaultTheme() Theme {
	return Theme{
		Name:         "Default Dark",
		Foreground:   core.ColorFromRGB(212, 212, 212),
		Background:   core.ColorFromRGB(30, 30, 30),
		Cursor:       core.ColorFromRGB(255, 255, 255),
		CursorAccent: core.ColorDefault,
		Selection:    core.ColorFromRGB(64, 64, 128),
		ANSI: [16]core.Color{
			core.ColorFromRGB(0, 0, 0),       // black
			core.ColorFromRGB(205, 49, 49),   // red
			core.ColorFromRGB(13, 188, 121),  // green
			core.ColorFromRGB(229, 229, 16),  // yellow
			core.ColorFromRGB(36, 114, 200),  // blue
			core.ColorFromRGB(188, 63, 188),  // magenta
			core.ColorFromRGB(17, 168, 205),  // cyan
			core.ColorFromRGB(229, 229, 229), // white
			core.ColorFromRGB(102, 102, 102), // bright black
			core.ColorFromRGB(241, 76, 76),   // bright red
			core.ColorFromRGB(35, 209, 139),  // bright green
			core.ColorFromRGB(245, 245, 67),  // bright yellow
			core.ColorFromRGB(59, 142, 234),  // bright blue
			core.ColorFromRGB(214, 112, 214), // bright magenta
			core.ColorFromRGB(41, 184, 219),  // bright cyan
			core.ColorFromRGB(255, 255, 255), // bright white
		},
	}
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	t := DefaultTheme()
	t.Name = "Light"
	t.Foreground = core.ColorFromRGB(0, 0, 0)
	t.Background = core.ColorFromRGB(255, 255, 255)
	t.Cursor = core.ColorFromRGB(0, 0, 0)
	t.Selection = core.ColorFromRGB(173, 214, 255)
	return t
}

// SolarizedDarkTheme returns a Solarized Dark theme.
func SolarizedDarkTheme() Theme {
	t := DefaultTheme()
	t.Name = "Solarized Dark"
	t.Foreground = core.ColorFromRGB(131, 148, 150)
	t.Background = core.ColorFromRGB(0, 43, 54)
	t.Cursor = core.ColorFromRGB(131, 148, 150)
	t.Selection = core.ColorFromRGB(7, 54, 66)
	return t
}

// ansiKeys maps ANSI slots to their JSON field names, in slot order.
var ansiKeys = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"brightBlack", "brightRed", "brightGreen", "brightYellow",
	"brightBlue", "brightMagenta", "brightCyan", "brightWhite",
}

// ParseTheme decodes a theme from JSON. Missing color fields fall back
// to the default dark theme; a missing name is an error.
func ParseTheme(data []byte) (Theme, error) {
	if !gjson.ValidBytes(data) {
		return Theme{}, fmt.Errorf("invalid theme JSON")
	}

	t := DefaultTheme()

	name := gjson.GetBytes(data, "name")
	if !name.Exists() || name.String() == "" {
		return Theme{}, fmt.Errorf("theme has no name")
	}
	t.Name = name.String()

	fields := []struct {
		key string
		dst *core.Color
	}{
		{"foreground", &t.Foreground},
		{"background", &t.Background},
		{"cursor", &t.Cursor},
		{"cursorAccent", &t.CursorAccent},
		{"selection", &t.Selection},
	}
	for _, f := range fields {
		if v := gjson.GetBytes(data, f.key); v.Exists() {
			c, err := core.ColorFromHex(v.String())
			if err != nil {
				return Theme{}, fmt.Errorf("theme %q: field %s: %w", t.Name, f.key, err)
			}
			*f.dst = c
		}
	}

	for i, key := range ansiKeys {
		if v := gjson.GetBytes(data, "ansi."+key); v.Exists() {
			c, err := core.ColorFromHex(v.String())
			if err != nil {
				return Theme{}, fmt.Errorf("theme %q: ansi.%s: %w", t.Name, key, err)
			}
			t.ANSI[i] = c
		}
	}

	return t, nil
}

// JSON encodes the theme as JSON.
func (t Theme) JSON() ([]byte, error) {
	out := []byte(`{}`)

	var err error
	set := func(key, val string) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, key, val)
	}

	set("name", t.Name)
	set("foreground", t.Foreground.ToHex())
	set("background", t.Background.ToHex())
	set("cursor", t.Cursor.ToHex())
	if !t.CursorAccent.IsDefault() {
		set("cursorAccent", t.CursorAccent.ToHex())
	}
	set("selection", t.Selection.ToHex())
	for i, key := range ansiKeys {
		set("ansi."+key, t.ANSI[i].ToHex())
	}

	if err != nil {
		return nil, fmt.Errorf("encode theme %q: %w", t.Name, err)
	}
	return out, nil
}

// ErrUnknownTheme is returned when a registry lookup fails.
var ErrUnknownTheme = fmt.Errorf("unknown theme")

// Registry holds named themes.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry creates a registry pre-populated with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme)}
	r.Register(DefaultTheme())
	r.Register(LightTheme())
	r.Register(SolarizedDarkTheme())
	return r
}

// Register adds or replaces a theme.
func (r *Registry) Register(t Theme) {
	r.themes[t.Name] = t
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (Theme, error) {
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return t, nil
}

// Names returns all registered theme names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	return names
}
