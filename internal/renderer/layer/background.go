package layer

import (
	"github.com/dshills/vtrender/internal/renderer/backend"
	"github.com/dshills/vtrender/internal/renderer/colors"
	"github.com/dshills/vtrender/internal/renderer/core"
)

// Background fills the row span with the theme background color.
// It paints first; every other layer draws over it.
type Background struct {
	palette *colors.Palette
}

// NewBackground creates a background layer.
func NewBackground(p *colors.Palette) *Background {
	return &Background{palette: p}
}

// Render fills the inclusive row span.
func (b *Background) Render(target backend.Surface, _ Grid, start, end int) {
	fill := core.EmptyCell().WithStyle(
		core.DefaultStyle().WithBackground(b.palette.Background()))
	target.FillRows(start, end, fill)
}

// OnThemeChanged installs the new palette.
func (b *Background) OnThemeChanged(p *colors.Palette) {
	b.palette = p
}

// Reset has no layer-local state to drop.
func (b *Background) Reset() {}

// Resize has no cached raster state.
func (b *Background) Resize(width, height int, forceClear bool) {}

// OnCursorMove is irrelevant to the background.
func (b *Background) OnCursorMove() {}

// OnOptionsChanged is irrelevant to the background.
func (b *Background) OnOptionsChanged() {}
