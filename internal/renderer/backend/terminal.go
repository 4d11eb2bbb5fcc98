package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vtrender/internal/renderer/core"
)

// Terminal implements Surface on top of a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewTerminal creates a terminal surface.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init initializes the underlying screen. Must be called before any
// painting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Init()
}

// Fini restores the terminal state.
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen for event polling.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the terminal dimensions in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// SetCell sets a single cell.
func (t *Terminal) SetCell(col, row int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.SetContent(col, row, cell.Rune, nil, convertStyle(cell.Style))
}

// FillRows fills the inclusive row span with the given cell.
func (t *Terminal) FillRows(start, end int, cell core.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cols, rows := t.screen.Size()
	style := convertStyle(cell.Style)
	for r := start; r <= end && r < rows; r++ {
		if r < 0 {
			continue
		}
		for c := 0; c < cols; c++ {
			t.screen.SetContent(c, r, cell.Rune, nil, style)
		}
	}
}

// Clear clears the screen with the default style.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// Show flushes pending changes to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// convertStyle converts a core style to a tcell style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	style = style.Bold(s.Attributes.Has(core.AttrBold))
	style = style.Dim(s.Attributes.Has(core.AttrDim))
	style = style.Italic(s.Attributes.Has(core.AttrItalic))
	style = style.Underline(s.Attributes.Has(core.AttrUnderline))
	style = style.Blink(s.Attributes.Has(core.AttrBlink))
	style = style.Reverse(s.Attributes.Has(core.AttrReverse))

	return style
}

// convertColor converts a core color to a tcell color.
func convertColor(c core.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
