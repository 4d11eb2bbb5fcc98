package core

import "testing"

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrUnderline)

	if !a.Has(AttrBold) {
		t.Error("should have bold")
	}
	if !a.Has(AttrUnderline) {
		t.Error("should have underline")
	}
	if a.Has(AttrItalic) {
		t.Error("should not have italic")
	}

	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("bold should be removed")
	}
	if !a.Has(AttrUnderline) {
		t.Error("underline should survive removal of bold")
	}
}

func TestStyleBuilders(t *testing.T) {
	fg := ColorFromRGB(200, 200, 200)
	bg := ColorFromRGB(30, 30, 30)

	s := NewStyle(fg).WithBackground(bg).Bold()

	if !s.Foreground.Equals(fg) {
		t.Errorf("Foreground = %v, want %v", s.Foreground, fg)
	}
	if !s.Background.Equals(bg) {
		t.Errorf("Background = %v, want %v", s.Background, bg)
	}
	if !s.Attributes.Has(AttrBold) {
		t.Error("should be bold")
	}
}

func TestStyleInvert(t *testing.T) {
	s := NewStyle(ColorFromRGB(255, 255, 255)).WithBackground(ColorFromRGB(0, 0, 0))
	inv := s.Invert()

	if !inv.Foreground.Equals(s.Background) {
		t.Error("inverted foreground should be original background")
	}
	if !inv.Background.Equals(s.Foreground) {
		t.Error("inverted background should be original foreground")
	}
}

func TestCellWidths(t *testing.T) {
	if c := NewCell('a'); c.Width != 1 {
		t.Errorf("width of 'a' = %d, want 1", c.Width)
	}
	if c := NewCell('世'); c.Width != 2 {
		t.Errorf("width of '世' = %d, want 2", c.Width)
	}
	if c := NewCell('\t'); c.Width != 0 {
		t.Errorf("width of tab = %d, want 0", c.Width)
	}

	cont := ContinuationCell()
	if !cont.IsContinuation() {
		t.Error("continuation cell should report IsContinuation")
	}
	if EmptyCell().IsContinuation() {
		t.Error("empty cell should not report IsContinuation")
	}
}

func TestCellEquals(t *testing.T) {
	a := NewStyledCell('x', NewStyle(ColorFromRGB(1, 2, 3)))
	b := NewStyledCell('x', NewStyle(ColorFromRGB(1, 2, 3)))
	if !a.Equals(b) {
		t.Error("identical cells should be equal")
	}
	if a.Equals(b.WithStyle(DefaultStyle())) {
		t.Error("cells with different styles should not be equal")
	}
}
