package renderer

import (
	"sync"

	"github.com/dshills/vtrender/internal/event"
	"github.com/dshills/vtrender/internal/renderer/backend"
	"github.com/dshills/vtrender/internal/renderer/colors"
	"github.com/dshills/vtrender/internal/renderer/core"
	"github.com/dshills/vtrender/internal/renderer/layer"
	"github.com/dshills/vtrender/internal/renderer/refresh"
)

// TopicRefresh is published once per completed flush. The host uses it
// to mark the flushed rows clean.
const TopicRefresh event.Topic = "render.refresh"

// RefreshPayload is the payload of TopicRefresh.
type RefreshPayload struct {
	Start int
	End   int
}

// Renderer is the coordination facade the host drives. It owns the
// palette holder, the two ordered layer registries and the refresh
// scheduler, and translates host lifecycle events into layer
// broadcasts or scheduler requests.
type Renderer struct {
	mu sync.Mutex

	target backend.Surface
	grid   layer.Grid

	manager    *colors.Manager
	dataLayers []layer.DataLayer
	selLayers  []layer.SelectionLayer
	sched      *refresh.Scheduler
	pub        event.Publisher

	cols, rows            int
	cellWidth, cellHeight int
}

// New creates a renderer with the standard layer stack: background,
// text and cursor data layers plus one selection overlay.
func New(target backend.Surface, grid layer.Grid, pump refresh.FramePump, pub event.Publisher, opts Options) *Renderer {
	manager := colors.NewManager(opts.Theme)
	p := manager.Palette()

	data := []layer.DataLayer{
		layer.NewBackground(p),
		layer.NewText(p),
		layer.NewCursor(p),
	}
	sel := []layer.SelectionLayer{
		layer.NewSelection(p),
	}

	return NewWithLayers(target, grid, pump, pub, manager, data, sel, opts)
}

// NewWithLayers creates a renderer with an explicit layer stack. Layer
// order is paint z-order and is fixed for the renderer's lifetime.
func NewWithLayers(target backend.Surface, grid layer.Grid, pump refresh.FramePump, pub event.Publisher,
	manager *colors.Manager, data []layer.DataLayer, sel []layer.SelectionLayer, opts Options) *Renderer {

	r := &Renderer{
		target:     target,
		grid:       grid,
		manager:    manager,
		dataLayers: data,
		selLayers:  sel,
		pub:        pub,
		cols:       grid.Cols(),
		rows:       grid.Rows(),
		cellWidth:  opts.CellWidth,
		cellHeight: opts.CellHeight,
	}
	r.sched = refresh.NewScheduler(pump, r.rowCount, r.flush)
	return r
}

// QueueRefresh reports the inclusive row span as dirty. The actual
// paint is deferred to the next display-refresh opportunity; any
// number of calls before then collapse into a single flush.
func (r *Renderer) QueueRefresh(start, end int) {
	r.sched.Queue(start, end)
}

// flush paints the effective range on every data layer in z-order and
// notifies the host. Invoked by the scheduler with its queue already
// emptied, so layers may queue further refreshes.
func (r *Renderer) flush(start, end int) {
	for _, l := range r.dataLayers {
		l.Render(r.target, r.grid, start, end)
	}
	r.target.Show()
	r.pub.Publish(TopicRefresh, RefreshPayload{Start: start, End: end})
}

// SetTheme swaps the palette and rebaselines the display: every layer
// learns the new palette, drops local state, and the full viewport is
// repainted at once. Partial repaints are only correct against a fresh
// baseline, so the repaint bypasses the coalescing queue.
func (r *Renderer) SetTheme(theme colors.Theme) {
	p := r.manager.SetTheme(theme)

	for _, l := range r.dataLayers {
		l.OnThemeChanged(p)
	}
	for _, l := range r.selLayers {
		l.OnThemeChanged(p)
	}

	for _, l := range r.dataLayers {
		l.Reset()
	}
	for _, l := range r.selLayers {
		l.Reset()
	}

	r.mu.Lock()
	rows := r.rows
	r.mu.Unlock()
	r.flush(0, rows-1)
}

// OnResize reports new terminal dimensions in cells. Only data layers
// are resized; the selection overlay derives its dimensions elsewhere
// (see package doc).
func (r *Renderer) OnResize(cols, rows int) {
	r.mu.Lock()
	r.cols = cols
	r.rows = rows
	width := r.cellWidth * cols
	height := r.cellHeight * rows
	r.mu.Unlock()

	for _, l := range r.dataLayers {
		l.Resize(width, height, false)
	}
}

// OnCharSizeChanged reports new per-cell pixel metrics. A glyph-metric
// change invalidates cached raster state in any layer, so both layer
// families are resized with forceClear set.
func (r *Renderer) OnCharSizeChanged(cellWidth, cellHeight int) {
	r.mu.Lock()
	r.cellWidth = cellWidth
	r.cellHeight = cellHeight
	width := cellWidth * r.cols
	height := cellHeight * r.rows
	r.mu.Unlock()

	for _, l := range r.dataLayers {
		l.Resize(width, height, true)
	}
	for _, l := range r.selLayers {
		l.Resize(width, height, true)
	}
}

// OnSelectionChanged paints the selection overlay immediately.
// Selection feedback tracks pointer movement, so this path never goes
// through the refresh queue.
func (r *Renderer) OnSelectionChanged(start, end core.Point) {
	for _, l := range r.selLayers {
		l.Render(r.target, r.grid, start, end)
	}
	r.target.Show()
}

// OnCursorMove broadcasts the cursor-move hook to every layer.
func (r *Renderer) OnCursorMove() {
	for _, l := range r.dataLayers {
		l.OnCursorMove()
	}
	for _, l := range r.selLayers {
		l.OnCursorMove()
	}
}

// OnOptionsChanged broadcasts the options-change hook to every layer.
func (r *Renderer) OnOptionsChanged() {
	for _, l := range r.dataLayers {
		l.OnOptionsChanged()
	}
	for _, l := range r.selLayers {
		l.OnOptionsChanged()
	}
}

// Clear drops all layer-local state and blanks the render target.
func (r *Renderer) Clear() {
	for _, l := range r.dataLayers {
		l.Reset()
	}
	for _, l := range r.selLayers {
		l.Reset()
	}
	r.target.Clear()
	r.target.Show()
}

// Palette returns the current palette snapshot.
func (r *Renderer) Palette() *colors.Palette {
	return r.manager.Palette()
}

// Dimensions returns the current viewport size in pixels.
func (r *Renderer) Dimensions() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cellWidth * r.cols, r.cellHeight * r.rows
}

// rowCount supplies the scheduler's full-viewport fallback.
func (r *Renderer) rowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}
