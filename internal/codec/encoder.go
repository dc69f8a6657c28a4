package codec

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/RenoirTan/tti/internal/geometry"
	"github.com/RenoirTan/tti/internal/logging"
)

// Encoder frames a byte stream into blocks and pads the result so it can be
// laid into an RGB raster. The zero value encodes with no ratio constraint.
type Encoder struct {
	// MaxRatio bounds the aspect ratio of the resulting image; 0 disables
	// the constraint and the stream is only padded to a multiple of 3.
	MaxRatio float64

	// Portrait orders the recommended dimensions taller than wide. It does
	// not affect the encoded bytes, only the dimension recommendation
	// reported to callers via RecommendedDimensions.
	Portrait bool

	// MaxProbes bounds the ratio-compliance search; 0 selects
	// geometry.DefaultMaxProbes.
	MaxProbes int
}

// Encode frames data into 8-byte blocks, marks the final block, and pads the
// stream per the Encoder's configuration. Empty input returns empty output.
func (e *Encoder) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	nblocks := (len(data) + PayloadSize - 1) / PayloadSize
	out := make([]byte, 0, nblocks*BlockSize)

	var chunk [PayloadSize]byte
	lastHeaderIndex := 0
	lastLen := 0
	for off := 0; off < len(data); off += PayloadSize {
		end := off + PayloadSize
		if end > len(data) {
			end = len(data)
		}
		raw := data[off:end]
		lastLen = len(raw)

		shiftable := true
		for _, b := range raw {
			if b > 0x7f {
				shiftable = false
				break
			}
		}

		chunk = [PayloadSize]byte{}
		copy(chunk[:], raw)
		header := headerByte(chunk[:], shiftable)
		if shiftable {
			for i := range chunk {
				chunk[i] <<= 1
			}
		}

		lastHeaderIndex = len(out)
		out = append(out, header)
		out = append(out, chunk[:]...)
	}

	// Rewrite the last header: set the end flag and replace the low three
	// parity bits with the real payload length.
	out[lastHeaderIndex] |= flagEnd
	out[lastHeaderIndex] &^= finalLenMask
	out[lastHeaderIndex] |= byte(lastLen) << finalLenShift

	return e.pad(out)
}

// EncodeReader reads r to EOF and encodes the bytes.
func (e *Encoder) EncodeReader(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return e.Encode(data)
}

// EncodeFile encodes the contents of the file at path.
func (e *Encoder) EncodeFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return e.Encode(data)
}

// pad extends the framed stream to a multiple of 3 and, when MaxRatio is
// set, to the smallest ratio-compliant width*height*3. Filler repeats the
// stream's own contents cyclically; the decoder stops at the end block and
// never reads it.
func (e *Encoder) pad(out []byte) ([]byte, error) {
	n := len(out)
	missing := (3 - n%3) % 3

	if e.MaxRatio > 0 {
		cw, ch := geometry.RecommendDimensions((n+missing)/3, false)
		ow, oh, err := geometry.FindCompliantDimensions(cw, ch, e.MaxRatio, e.MaxProbes)
		if err != nil {
			return nil, fmt.Errorf("cannot satisfy max ratio %.3f: %w", e.MaxRatio, err)
		}
		missing += (ow*oh - cw*ch) * 3
		logging.Debug("ratio padding",
			zap.Int("recommended_pixels", cw*ch),
			zap.Int("compliant_pixels", ow*oh),
			zap.Int("width", ow),
			zap.Int("height", oh),
		)
	}

	for i := 0; i < missing; i++ {
		out = append(out, out[i%n])
	}
	return out, nil
}

// RecommendedDimensions returns the image dimensions for an encoded stream,
// honoring the Portrait setting. The stream length must be a multiple of 3.
func (e *Encoder) RecommendedDimensions(encoded []byte) (int, int, error) {
	if len(encoded)%3 != 0 {
		return 0, 0, fmt.Errorf("encoded length %d is not a multiple of 3", len(encoded))
	}
	w, h := geometry.RecommendDimensions(len(encoded)/3, e.Portrait)
	return w, h, nil
}
