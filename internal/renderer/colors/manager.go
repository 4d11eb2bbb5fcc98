package colors

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/vtrender/internal/renderer/core"
)

// Palette is the resolved color set layers paint with. It is immutable:
// the Manager builds a fresh Palette on every theme change and never
// touches an old one, so a layer holding a reference mid-broadcast can
// never observe a partial update.
type Palette struct {
	name         string
	foreground   core.Color
	background   core.Color
	cursor       core.Color
	cursorAccent core.Color
	selection    core.Color
	selectionDim core.Color
	ansi         [16]core.Color
}

// ThemeName returns the name of the theme this palette was built from.
func (p *Palette) ThemeName() string { return p.name }

// Foreground returns the default text color.
func (p *Palette) Foreground() core.Color { return p.foreground }

// Background returns the terminal background color.
func (p *Palette) Background() core.Color { return p.background }

// Cursor returns the cursor block color.
func (p *Palette) Cursor() core.Color { return p.cursor }

// CursorAccent returns the color of the glyph under the cursor.
func (p *Palette) CursorAccent() core.Color { return p.cursorAccent }

// Selection returns the opaque selection color.
func (p *Palette) Selection() core.Color { return p.selection }

// SelectionDim returns the selection color pre-blended into the
// background, used when painting over occupied cells.
func (p *Palette) SelectionDim() core.Color { return p.selectionDim }

// ANSI returns one of the 16 standard terminal colors.
func (p *Palette) ANSI(i int) core.Color {
	if i < 0 || i > 15 {
		return p.foreground
	}
	return p.ansi[i]
}

// Manager is the palette holder: it resolves themes into immutable
// Palette snapshots and hands out the current one.
type Manager struct {
	mu      sync.RWMutex
	theme   Theme
	palette *Palette
}

// NewManager creates a manager resolved against the given theme.
func NewManager(theme Theme) *Manager {
	m := &Manager{}
	m.SetTheme(theme)
	return m
}

// SetTheme resolves the theme into a new Palette, installs it as the
// current snapshot and returns it. The previous Palette is left intact
// for any layer still holding it.
func (m *Manager) SetTheme(theme Theme) *Palette {
	p := resolve(theme)

	m.mu.Lock()
	m.theme = theme
	m.palette = p
	m.mu.Unlock()

	return p
}

// Palette returns the current palette snapshot.
func (m *Manager) Palette() *Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette
}

// Theme returns the theme the current palette was resolved from.
func (m *Manager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// resolve computes every derived color once per theme swap.
func resolve(t Theme) *Palette {
	p := &Palette{
		name:         t.Name,
		foreground:   t.Foreground,
		background:   t.Background,
		cursor:       t.Cursor,
		cursorAccent: t.CursorAccent,
		selection:    t.Selection,
		ansi:         t.ANSI,
	}

	p.selectionDim = blendLab(t.Selection, t.Background, 0.5)

	if p.cursorAccent.IsDefault() {
		p.cursorAccent = accentFor(t.Cursor)
	}

	return p
}

// blendLab blends two colors in Lab space, which keeps the perceived
// brightness of the overlay stable across themes.
func blendLab(a, b core.Color, amount float64) core.Color {
	if a.Indexed || a.Default || b.Indexed || b.Default {
		return a
	}
	ca := toColorful(a)
	cb := toColorful(b)
	return fromColorful(ca.BlendLab(cb, amount).Clamped())
}

// accentFor picks black or white, whichever contrasts more with the
// given color.
func accentFor(c core.Color) core.Color {
	if c.Indexed || c.Default {
		return core.ColorFromRGB(0, 0, 0)
	}
	l, _, _ := toColorful(c).Lab()
	if l > 0.5 {
		return core.ColorFromRGB(0, 0, 0)
	}
	return core.ColorFromRGB(255, 255, 255)
}

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.RGB255()
	return core.ColorFromRGB(r, g, b)
}
