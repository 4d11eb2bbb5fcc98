package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vtrender/internal/renderer/core"
)

func TestNullSetCell(t *testing.T) {
	n := NewNull(10, 5)

	cell := core.NewCell('x')
	n.SetCell(3, 2, cell)

	if !n.CellAt(3, 2).Equals(cell) {
		t.Errorf("CellAt(3,2) = %v, want %v", n.CellAt(3, 2), cell)
	}
	if !n.CellAt(0, 0).Equals(core.EmptyCell()) {
		t.Error("untouched cell should be empty")
	}
}

func TestNullOutOfBounds(t *testing.T) {
	n := NewNull(10, 5)

	// Must not panic.
	n.SetCell(-1, 0, core.NewCell('x'))
	n.SetCell(10, 0, core.NewCell('x'))
	n.SetCell(0, 5, core.NewCell('x'))

	if !n.CellAt(-1, 0).Equals(core.EmptyCell()) {
		t.Error("out-of-bounds read should return an empty cell")
	}
}

func TestNullFillRows(t *testing.T) {
	n := NewNull(4, 6)

	bg := core.EmptyCell().WithStyle(core.DefaultStyle().WithBackground(core.ColorFromRGB(1, 2, 3)))
	n.FillRows(1, 3, bg)

	for r := 1; r <= 3; r++ {
		for c := 0; c < 4; c++ {
			if !n.CellAt(c, r).Equals(bg) {
				t.Fatalf("cell (%d,%d) not filled", c, r)
			}
		}
	}
	if !n.CellAt(0, 0).Equals(core.EmptyCell()) {
		t.Error("row 0 should be untouched")
	}
	if !n.CellAt(0, 4).Equals(core.EmptyCell()) {
		t.Error("row 4 should be untouched")
	}

	// Spans reaching outside the surface are clipped, not fatal.
	n.FillRows(-2, 10, bg)
	if !n.CellAt(0, 0).Equals(bg) {
		t.Error("clipped fill should still cover in-bounds rows")
	}
}

func TestNullClearAndShow(t *testing.T) {
	n := NewNull(3, 3)
	n.SetCell(1, 1, core.NewCell('q'))

	n.Clear()
	if !n.CellAt(1, 1).Equals(core.EmptyCell()) {
		t.Error("Clear should reset cells")
	}

	n.Show()
	n.Show()
	if n.ShowCount() != 2 {
		t.Errorf("ShowCount = %d, want 2", n.ShowCount())
	}
}

func TestNullResize(t *testing.T) {
	n := NewNull(3, 3)
	n.SetCell(2, 2, core.NewCell('z'))

	n.Resize(5, 4)

	cols, rows := n.Size()
	if cols != 5 || rows != 4 {
		t.Errorf("Size = (%d,%d), want (5,4)", cols, rows)
	}
	if !n.CellAt(2, 2).Equals(core.EmptyCell()) {
		t.Error("resize should blank the surface")
	}
}

func TestConvertStyle(t *testing.T) {
	s := core.NewStyle(core.ColorFromRGB(10, 20, 30)).
		WithBackground(core.ColorFromIndex(4)).
		Bold()

	ts := convertStyle(s)
	fg, bg, attrs := ts.Decompose()

	if fg != convertColor(core.ColorFromRGB(10, 20, 30)) {
		t.Errorf("fg = %v, want RGB(10,20,30)", fg)
	}
	if bg != convertColor(core.ColorFromIndex(4)) {
		t.Errorf("bg = %v, want palette color 4", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("bold attribute lost in conversion")
	}
}
