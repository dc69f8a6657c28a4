package imagery

import (
	"fmt"
	"image"
	"image/color"
)

// Rasterize lays data into a width x height RGB image, three bytes per pixel
// in row-major order. The length of data must be exactly w*h*3.
func Rasterize(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", w, h)
	}
	if len(data) != w*h*3 {
		return nil, fmt.Errorf("byte count %d does not fill %dx%d pixels (need %d)", len(data), w, h, w*h*3)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			off := (j*w + i) * 3
			img.SetRGBA(i, j, color.RGBA{R: data[off], G: data[off+1], B: data[off+2], A: 0xff})
		}
	}
	return img, nil
}

// Flatten reads img row-major and returns its pixels as consecutive R, G, B
// bytes. It is the inverse of Rasterize for any image with opaque pixels.
func Flatten(img image.Image) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*3)
	for j := b.Min.Y; j < b.Max.Y; j++ {
		for i := b.Min.X; i < b.Max.X; i++ {
			r, g, bl, _ := img.At(i, j).RGBA()
			out = append(out, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}
	return out
}
