// Package layer defines the compositing layer capability set and the
// built-in layers. Data layers paint row spans and are driven by the
// refresh scheduler; selection layers paint point ranges and are driven
// immediately. Registration order is paint z-order.
package layer

import (
	"github.com/dshills/vtrender/internal/renderer/backend"
	"github.com/dshills/vtrender/internal/renderer/colors"
	"github.com/dshills/vtrender/internal/renderer/core"
)

// Grid is the read-only view of the host terminal model that layers
// paint from.
type Grid interface {
	// Cols returns the current column count.
	Cols() int

	// Rows returns the current row count.
	Rows() int

	// Cell returns the content at the given position.
	Cell(col, row int) core.Cell

	// Cursor returns the current cursor position.
	Cursor() core.Point
}

// Layer is the broadcast hook set shared by both layer families.
// Every implementation must tolerate any hook even when it has no
// state relevant to it.
type Layer interface {
	// OnThemeChanged installs a new palette snapshot.
	OnThemeChanged(p *colors.Palette)

	// Reset drops all layer-local state.
	Reset()

	// Resize reports new pixel dimensions. forceClear is set when
	// glyph metrics changed and any cached raster state is invalid.
	Resize(width, height int, forceClear bool)

	// OnCursorMove reports that the cursor position changed.
	OnCursorMove()

	// OnOptionsChanged reports that rendering options changed.
	OnOptionsChanged()
}

// DataLayer is a row-oriented layer painted on every scheduled flush.
type DataLayer interface {
	Layer

	// Render paints the inclusive row span.
	Render(target backend.Surface, grid Grid, start, end int)
}

// SelectionLayer is a point-range overlay painted immediately,
// independent of the scheduler.
type SelectionLayer interface {
	Layer

	// Render paints the overlay between the two points.
	Render(target backend.Surface, grid Grid, start, end core.Point)
}
