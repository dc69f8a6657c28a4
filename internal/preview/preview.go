package preview

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultWidth is the fallback terminal width when size detection fails
// (e.g. output is piped).
const DefaultWidth = 80

// halfBlock shows two pixels per cell: foreground paints the top pixel,
// background the bottom.
const halfBlock = "▀"

// TerminalWidth returns the current terminal width in cells, or DefaultWidth
// when stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Render draws img as half-block cells, at most maxWidth cells wide. Images
// wider than maxWidth are downsampled with nearest-neighbor; narrower images
// render one cell per pixel column. maxWidth <= 0 selects DefaultWidth.
func Render(img image.Image, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = DefaultWidth
	}
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return ""
	}

	outW := srcW
	if outW > maxWidth {
		outW = maxWidth
	}
	// Keep the aspect ratio; each output row covers two source rows.
	outH := srcH * outW / srcW
	if outH == 0 {
		outH = 1
	}

	pick := func(x, y int) lipgloss.Color {
		sx := b.Min.X + x*srcW/outW
		sy := b.Min.Y + y*srcH/outH
		r, g, bl, _ := img.At(sx, sy).RGBA()
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8))
	}

	var sb strings.Builder
	for y := 0; y < outH; y += 2 {
		for x := 0; x < outW; x++ {
			style := lipgloss.NewStyle().Foreground(pick(x, y))
			if y+1 < outH {
				style = style.Background(pick(x, y+1))
			}
			sb.WriteString(style.Render(halfBlock))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
