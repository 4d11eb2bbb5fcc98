// Package backend provides render-target abstraction for the renderer.
// Layers paint cells onto a Surface without knowing whether it is a
// real terminal or an in-memory buffer.
package backend

import "github.com/dshills/vtrender/internal/renderer/core"

// Surface is the opaque render target handed to layers.
type Surface interface {
	// Size returns the surface dimensions in cells.
	Size() (cols, rows int)

	// SetCell sets a single cell. Out-of-bounds positions are ignored.
	SetCell(col, row int, cell core.Cell)

	// FillRows fills the inclusive row span with the given cell.
	FillRows(start, end int, cell core.Cell)

	// Clear resets the whole surface to empty cells.
	Clear()

	// Show flushes pending changes to the display.
	Show()
}

// Null is an in-memory Surface used in tests and headless mode.
type Null struct {
	cols, rows int
	cells      [][]core.Cell
	showCount  int
}

// NewNull creates a null surface with the given dimensions.
func NewNull(cols, rows int) *Null {
	n := &Null{cols: cols, rows: rows}
	n.reset()
	return n
}

func (n *Null) reset() {
	n.cells = make([][]core.Cell, n.rows)
	for r := range n.cells {
		n.cells[r] = make([]core.Cell, n.cols)
		for c := range n.cells[r] {
			n.cells[r][c] = core.EmptyCell()
		}
	}
}

// Size returns the surface dimensions in cells.
func (n *Null) Size() (int, int) {
	return n.cols, n.rows
}

// SetCell sets a single cell, ignoring out-of-bounds positions.
func (n *Null) SetCell(col, row int, cell core.Cell) {
	if col < 0 || col >= n.cols || row < 0 || row >= n.rows {
		return
	}
	n.cells[row][col] = cell
}

// FillRows fills the inclusive row span with the given cell.
func (n *Null) FillRows(start, end int, cell core.Cell) {
	for r := start; r <= end; r++ {
		if r < 0 || r >= n.rows {
			continue
		}
		for c := 0; c < n.cols; c++ {
			n.cells[r][c] = cell
		}
	}
}

// Clear resets the whole surface to empty cells.
func (n *Null) Clear() {
	n.reset()
}

// Show counts flushes so tests can assert on them.
func (n *Null) Show() {
	n.showCount++
}

// CellAt returns the cell at the given position for test inspection.
func (n *Null) CellAt(col, row int) core.Cell {
	if col < 0 || col >= n.cols || row < 0 || row >= n.rows {
		return core.EmptyCell()
	}
	return n.cells[row][col]
}

// ShowCount returns how many times Show has been called.
func (n *Null) ShowCount() int {
	return n.showCount
}

// Resize replaces the surface with a blank one of the new dimensions.
func (n *Null) Resize(cols, rows int) {
	n.cols = cols
	n.rows = rows
	n.reset()
}
