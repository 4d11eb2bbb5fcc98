package layer

import (
	"github.com/dshills/vtrender/internal/renderer/backend"
	"github.com/dshills/vtrender/internal/renderer/colors"
	"github.com/dshills/vtrender/internal/renderer/core"
)

// Selection paints the selection overlay between two points. It runs
// outside the scheduler so selection feedback tracks the pointer
// without a frame of latency.
type Selection struct {
	palette *colors.Palette
}

// NewSelection creates a selection overlay layer.
func NewSelection(p *colors.Palette) *Selection {
	return &Selection{palette: p}
}

// Render paints the overlay between start and end. The range follows
// stream-selection semantics: full rows between the endpoints, partial
// first and last rows. Endpoints need not be ordered.
func (s *Selection) Render(target backend.Surface, grid Grid, start, end core.Point) {
	start, end = normalize(start, end)
	if start == end {
		return
	}

	cols := grid.Cols()
	bg := s.palette.SelectionDim()

	for row := start.Row; row <= end.Row; row++ {
		first := 0
		if row == start.Row {
			first = start.Col
		}
		last := cols - 1
		if row == end.Row {
			last = end.Col - 1
		}

		for col := first; col <= last; col++ {
			cell := grid.Cell(col, row)
			if cell.IsContinuation() {
				continue
			}
			style := cell.Style
			style.Background = bg
			if style.Foreground.IsDefault() {
				style.Foreground = s.palette.Foreground()
			}
			target.SetCell(col, row, cell.WithStyle(style))
		}
	}
}

// normalize orders two points row-major, start before end.
func normalize(a, b core.Point) (core.Point, core.Point) {
	if a.Row > b.Row || (a.Row == b.Row && a.Col > b.Col) {
		return b, a
	}
	return a, b
}

// OnThemeChanged installs the new palette.
func (s *Selection) OnThemeChanged(p *colors.Palette) {
	s.palette = p
}

// Reset has no layer-local state to drop.
func (s *Selection) Reset() {}

// Resize has no cached raster state.
func (s *Selection) Resize(width, height int, forceClear bool) {}

// OnCursorMove is irrelevant to the selection overlay.
func (s *Selection) OnCursorMove() {}

// OnOptionsChanged is irrelevant to the selection overlay.
func (s *Selection) OnOptionsChanged() {}
