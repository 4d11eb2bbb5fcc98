// Command vtrender-demo drives the renderer against a live terminal.
// Arrow keys move the cursor, 't' cycles themes, mouse drag selects,
// 'q' or Escape quits.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vtrender/internal/event"
	"github.com/dshills/vtrender/internal/renderer"
	"github.com/dshills/vtrender/internal/renderer/backend"
	"github.com/dshills/vtrender/internal/renderer/colors"
	"github.com/dshills/vtrender/internal/renderer/core"
	"github.com/dshills/vtrender/internal/renderer/refresh"
)

const frameInterval = 16 * time.Millisecond

func main() {
	os.Exit(run())
}

func run() int {
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer term.Fini()
	term.Screen().EnableMouse()

	cols, rows := term.Size()
	grid := newDemoGrid(cols, rows)

	pump := refresh.NewTickerPump(frameInterval)
	defer pump.Stop()

	bus := event.NewBus()
	r := renderer.New(term, grid, pump, bus, renderer.DefaultOptions())

	registry := colors.NewRegistry()
	themes := registry.Names()
	themeIdx := 0

	r.QueueRefresh(0, rows-1)

	var selStart core.Point
	selecting := false

	for {
		ev := term.Screen().PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
				return 0
			case ev.Rune() == 't':
				themeIdx = (themeIdx + 1) % len(themes)
				theme, err := registry.Get(themes[themeIdx])
				if err != nil {
					continue
				}
				r.SetTheme(theme)
			case ev.Key() == tcell.KeyUp:
				moveCursor(r, grid, 0, -1)
			case ev.Key() == tcell.KeyDown:
				moveCursor(r, grid, 0, 1)
			case ev.Key() == tcell.KeyLeft:
				moveCursor(r, grid, -1, 0)
			case ev.Key() == tcell.KeyRight:
				moveCursor(r, grid, 1, 0)
			}

		case *tcell.EventMouse:
			col, row := ev.Position()
			switch ev.Buttons() {
			case tcell.Button1:
				pt := core.Point{Col: col, Row: row}
				if !selecting {
					selecting = true
					selStart = pt
				}
				r.OnSelectionChanged(selStart, pt)
			case tcell.ButtonNone:
				if selecting {
					selecting = false
					// Repaint over the overlay on release.
					r.QueueRefresh(0, grid.Rows()-1)
				}
			}

		case *tcell.EventResize:
			cols, rows = ev.Size()
			grid.resize(cols, rows)
			r.OnResize(cols, rows)
			r.QueueRefresh(0, rows-1)
		}
	}
}

// moveCursor shifts the cursor, clamped to the grid, and queues the
// affected rows.
func moveCursor(r *renderer.Renderer, grid *demoGrid, dc, dr int) {
	oldRow, newRow := grid.move(dc, dr)
	r.OnCursorMove()
	r.QueueRefresh(oldRow, oldRow)
	r.QueueRefresh(newRow, newRow)
}

// demoGrid is a static banner with a movable cursor.
type demoGrid struct {
	mu         sync.Mutex
	cols, rows int
	cursor     core.Point
}

var banner = []string{
	"vtrender demo",
	"",
	"arrows  move cursor",
	"drag    select",
	"t       cycle theme",
	"q       quit",
}

func newDemoGrid(cols, rows int) *demoGrid {
	return &demoGrid{cols: cols, rows: rows}
}

func (g *demoGrid) Cols() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cols
}

func (g *demoGrid) Rows() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rows
}

func (g *demoGrid) Cell(col, row int) core.Cell {
	g.mu.Lock()
	defer g.mu.Unlock()

	line := row - 1
	if line < 0 || line >= len(banner) {
		return core.EmptyCell()
	}
	text := []rune(banner[line])
	pos := col - 2
	if pos < 0 || pos >= len(text) {
		return core.EmptyCell()
	}
	return core.NewCell(text[pos])
}

func (g *demoGrid) Cursor() core.Point {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cursor
}

func (g *demoGrid) move(dc, dr int) (oldRow, newRow int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	oldRow = g.cursor.Row
	g.cursor.Col = clamp(g.cursor.Col+dc, 0, g.cols-1)
	g.cursor.Row = clamp(g.cursor.Row+dr, 0, g.rows-1)
	return oldRow, g.cursor.Row
}

func (g *demoGrid) resize(cols, rows int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cols = cols
	g.rows = rows
	g.cursor.Col = clamp(g.cursor.Col, 0, cols-1)
	g.cursor.Row = clamp(g.cursor.Row, 0, rows-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
