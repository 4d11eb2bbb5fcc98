package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#FF0000", Color{R: 255}, false},
		{"00FF00", Color{G: 255}, false},
		{"#FFF", Color{R: 255, G: 255, B: 255}, false},
		{"#1e1e1e", Color{R: 30, G: 30, B: 30}, false},
		{"#GGHHII", Color{}, true},
		{"#FFFF", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ColorFromHex(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true}) {
		t.Error("default colors should be equal")
	}
	if ColorDefault.Equals(ColorFromRGB(0, 0, 0)) {
		t.Error("default should not equal black")
	}
	if !ColorFromIndex(7).Equals(ColorFromIndex(7)) {
		t.Error("same indexed colors should be equal")
	}
	if ColorFromIndex(7).Equals(ColorFromRGB(7, 0, 0)) {
		t.Error("indexed and RGB colors should not be equal")
	}
}

func TestColorString(t *testing.T) {
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q, want %q", got, "default")
	}
	if got := ColorFromIndex(3).String(); got != "idx(3)" {
		t.Errorf("String() = %q, want %q", got, "idx(3)")
	}
	if got := ColorFromRGB(255, 0, 128).String(); got != "#FF0080" {
		t.Errorf("String() = %q, want %q", got, "#FF0080")
	}
}

func TestColorToHex(t *testing.T) {
	if got := ColorFromRGB(30, 30, 30).ToHex(); got != "#1E1E1E" {
		t.Errorf("ToHex() = %q, want %q", got, "#1E1E1E")
	}
	if got := ColorDefault.ToHex(); got != "" {
		t.Errorf("ToHex() on default = %q, want empty", got)
	}
	if got := ColorFromIndex(5).ToHex(); got != "" {
		t.Errorf("ToHex() on indexed = %q, want empty", got)
	}
}
