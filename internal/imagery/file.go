package imagery

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
)

// ReadImage decodes the image file at path and reports the format name
// ("png", "jpeg", "gif"). JPEG is lossy and will not round-trip the codec's
// bytes; the format name lets callers warn about that.
func ReadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, format, nil
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG %s: %w", path, err)
	}
	return f.Close()
}
