package codec

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/RenoirTan/tti/internal/logging"
)

// Decoder recovers the original byte stream from a framed one. The zero
// value is ready to use.
type Decoder struct {
	// Intermediate, when non-nil, receives a hex dump of each raw 8-byte
	// block as it is consumed. It is a diagnostic sink only; decode behavior
	// is identical with or without it.
	Intermediate io.Writer
}

// Decode reads 8-byte blocks from r until it sees the end block, undoing the
// payload shift and trimming the final block to its declared length. Bytes
// after the end block (padding) are left unread. An immediately-empty stream
// decodes to empty output; a stream that runs short of a full block before
// the end flag is a *FramingError.
func (d *Decoder) Decode(r io.Reader) ([]byte, error) {
	decoded := make([]byte, 0, 256)
	var block [BlockSize]byte
	offset := 0

	for {
		n, err := io.ReadFull(r, block[:])
		if err == io.EOF && offset == 0 {
			// Empty input encodes to an empty stream; mirror that here.
			return []byte{}, nil
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, &FramingError{Offset: offset, Available: n}
			}
			return nil, fmt.Errorf("failed to read block at offset %d: %w", offset, err)
		}
		offset += BlockSize
		if d.Intermediate != nil {
			dumpBytes(d.Intermediate, block[:])
		}

		header := ParseHeader(block[0])
		payload := make([]byte, PayloadSize)
		copy(payload, block[1:])
		if header.Shifted {
			for i := range payload {
				payload[i] >>= 1
			}
		}
		if header.End {
			payload = payload[:header.FinalLen]
		}

		logging.Debug("decoded block",
			zap.Int("offset", offset-BlockSize),
			zap.Stringer("header", header),
		)

		decoded = append(decoded, payload...)
		if header.End {
			return decoded, nil
		}
	}
}

// DecodeBytes decodes an in-memory stream.
func (d *Decoder) DecodeBytes(data []byte) ([]byte, error) {
	return d.Decode(bytes.NewReader(data))
}

// dumpBytes writes data as space-separated lowercase hex pairs.
func dumpBytes(w io.Writer, data []byte) {
	for _, b := range data {
		fmt.Fprintf(w, "%02x ", b)
	}
	fmt.Fprintln(w)
}
