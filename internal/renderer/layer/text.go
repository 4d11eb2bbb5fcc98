package layer

import (
	"github.com/dshills/vtrender/internal/renderer/backend"
	"github.com/dshills/vtrender/internal/renderer/colors"
	"github.com/dshills/vtrender/internal/renderer/core"
)

// Text paints glyph cells for the row span. Wide runes occupy their
// own cell plus a continuation cell; default colors resolve against
// the current palette.
type Text struct {
	palette *colors.Palette
}

// NewText creates a text layer.
func NewText(p *colors.Palette) *Text {
	return &Text{palette: p}
}

// Render paints the inclusive row span from the grid.
func (t *Text) Render(target backend.Surface, grid Grid, start, end int) {
	cols := grid.Cols()

	for row := start; row <= end; row++ {
		for col := 0; col < cols; col++ {
			cell := grid.Cell(col, row)
			if cell.IsContinuation() {
				continue
			}

			target.SetCell(col, row, t.resolve(cell))

			if cell.Width == 2 && col+1 < cols {
				target.SetCell(col+1, row, core.ContinuationCell())
			}
		}
	}
}

// resolve substitutes palette colors for default foreground/background.
func (t *Text) resolve(cell core.Cell) core.Cell {
	style := cell.Style
	if style.Foreground.IsDefault() {
		style.Foreground = t.palette.Foreground()
	}
	if style.Background.IsDefault() {
		style.Background = t.palette.Background()
	}
	return cell.WithStyle(style)
}

// OnThemeChanged installs the new palette.
func (t *Text) OnThemeChanged(p *colors.Palette) {
	t.palette = p
}

// Reset has no layer-local state to drop.
func (t *Text) Reset() {}

// Resize has no cached raster state.
func (t *Text) Resize(width, height int, forceClear bool) {}

// OnCursorMove is irrelevant to the text layer.
func (t *Text) OnCursorMove() {}

// OnOptionsChanged is irrelevant to the text layer.
func (t *Text) OnOptionsChanged() {}
