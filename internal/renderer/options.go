package renderer

import "github.com/dshills/vtrender/internal/renderer/colors"

// Options configures a renderer at construction.
type Options struct {
	// Theme is the initial theme.
	Theme colors.Theme

	// CellWidth and CellHeight are the initial per-character pixel
	// metrics, updated later through OnCharSizeChanged.
	CellWidth  int
	CellHeight int
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Theme:      colors.DefaultTheme(),
		CellWidth:  8,
		CellHeight: 16,
	}
}
