package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	header := RenderHeader("Quiz", HeaderStats{}, 80)
	footer := RenderFooter(nil, 80)
	if got := ContentHeight(24, header, footer); got != 18 {
		t.Errorf("ContentHeight(24) = %d, want 18", got)
	}
	if got := ContentHeight(4, header, footer); got != 0 {
		t.Errorf("ContentHeight(4) = %d, want 0", got)
	}
}

func TestDensityFor(t *testing.T) {
	tests := []struct {
		w, h int
		want Density
	}{
		{100, 28, Roomy},
		{140, 40, Roomy},
		{99, 40, Compact},
		{120, 27, Compact},
		{80, 18, Compact},
	}
	for _, tt := range tests {
		if got := DensityFor(tt.w, tt.h); got != tt.want {
			t.Errorf("DensityFor(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Quiz", HeaderStats{}, 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, 80)
	frame := RenderFrame(header, "card", footer, 80, 30)
	if got := strings.Count(frame, "\n") + 1; got != 30 {
		t.Errorf("frame has %d lines, want 30", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", HeaderStats{Level: 3, XP: 275, Streak: 4}, 100)
	for _, want := range []string{"terpdex", "Quiz", "Lv 3", "275 XP", "4"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q:\n%s", want, h)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Select") {
		t.Errorf("footer missing hint:\n%s", f)
	}
}
