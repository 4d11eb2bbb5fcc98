package layer

import (
	"github.com/dshills/vtrender/internal/renderer/backend"
	"github.com/dshills/vtrender/internal/renderer/colors"
	"github.com/dshills/vtrender/internal/renderer/core"
)

// Cursor paints the cursor cell in the palette's cursor colors. It
// remembers where it last painted so a cursor move can be detected as
// stale state even before the next flush reaches that row.
type Cursor struct {
	palette *colors.Palette

	lastPos  core.Point
	hasLast  bool
	moveSeen bool
}

// NewCursor creates a cursor layer.
func NewCursor(p *colors.Palette) *Cursor {
	return &Cursor{palette: p}
}

// Render paints the cursor if it falls within the row span.
func (c *Cursor) Render(target backend.Surface, grid Grid, start, end int) {
	pos := grid.Cursor()
	if pos.Row < start || pos.Row > end {
		return
	}

	cell := grid.Cell(pos.Col, pos.Row)
	style := core.Style{
		Foreground: c.palette.CursorAccent(),
		Background: c.palette.Cursor(),
		Attributes: cell.Style.Attributes,
	}
	target.SetCell(pos.Col, pos.Row, cell.WithStyle(style))

	c.lastPos = pos
	c.hasLast = true
	c.moveSeen = false
}

// LastPainted returns where the cursor was last drawn, and whether a
// move has been reported since.
func (c *Cursor) LastPainted() (pos core.Point, stale bool, ok bool) {
	return c.lastPos, c.moveSeen, c.hasLast
}

// OnThemeChanged installs the new palette.
func (c *Cursor) OnThemeChanged(p *colors.Palette) {
	c.palette = p
}

// Reset forgets the painted position.
func (c *Cursor) Reset() {
	c.hasLast = false
	c.moveSeen = false
}

// Resize has no cached raster state.
func (c *Cursor) Resize(width, height int, forceClear bool) {}

// OnCursorMove marks the previously painted cell as stale.
func (c *Cursor) OnCursorMove() {
	if c.hasLast {
		c.moveSeen = true
	}
}

// OnOptionsChanged is irrelevant to the cursor layer.
func (c *Cursor) OnOptionsChanged() {}
