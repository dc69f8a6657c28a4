package preview

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: byte(x * 3), G: byte(y * 5), B: 0x80, A: 0xff})
		}
	}
	return img
}

func cellsPerLine(s string) []int {
	var counts []int
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		counts = append(counts, strings.Count(line, halfBlock))
	}
	return counts
}

func TestRenderDimensions(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		maxWidth  int
		wantCells int
		wantLines int
	}{
		{name: "fits as-is", w: 10, h: 4, maxWidth: 80, wantCells: 10, wantLines: 2},
		{name: "odd height rounds up a line", w: 6, h: 5, maxWidth: 80, wantCells: 6, wantLines: 3},
		{name: "downsampled to max width", w: 100, h: 50, maxWidth: 10, wantCells: 10, wantLines: 3},
		{name: "single row", w: 4, h: 1, maxWidth: 80, wantCells: 4, wantLines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(testImage(tt.w, tt.h), tt.maxWidth)
			lines := cellsPerLine(out)
			if len(lines) != tt.wantLines {
				t.Fatalf("rendered %d lines, want %d", len(lines), tt.wantLines)
			}
			for i, cells := range lines {
				if cells != tt.wantCells {
					t.Errorf("line %d has %d cells, want %d", i, cells, tt.wantCells)
				}
			}
		})
	}
}

func TestRenderEmptyImage(t *testing.T) {
	if out := Render(image.NewRGBA(image.Rect(0, 0, 0, 0)), 80); out != "" {
		t.Errorf("empty image rendered %q, want empty string", out)
	}
}

func TestRenderDefaultWidth(t *testing.T) {
	out := Render(testImage(200, 2), 0)
	lines := cellsPerLine(out)
	if len(lines) == 0 || lines[0] != DefaultWidth {
		t.Errorf("maxWidth=0 should cap at DefaultWidth (%d), got %v", DefaultWidth, lines)
	}
}
