package codec

import (
	"fmt"
	"math/bits"
)

// Block framing constants
const (
	BlockSize   = 8 // header byte + payload
	PayloadSize = 7 // payload bytes per block
)

// Header byte bit layout
const (
	flagShift     = 0x01 // bit 0: payload bytes stored left-shifted
	flagEnd       = 0x02 // bit 1: final block of the stream
	finalLenMask  = 0x1c // bits 2-4: real payload length on the final block
	finalLenShift = 2
	parityShift   = 2    // parity bits occupy bits 2-7 on non-final blocks
	parityMask    = 0x3f // 6 parity bits before shifting into place
)

// Header is the decoded form of a block's header byte.
type Header struct {
	Shifted  bool // payload bytes were left-shifted by one bit
	End      bool // final block of the stream
	FinalLen int  // real payload bytes in the final block; meaningful only when End
	Parity   byte // informational parity bits; on final blocks bits 0-2 were overwritten by FinalLen
}

// ParseHeader decodes a raw header byte.
func ParseHeader(b byte) Header {
	h := Header{
		Shifted: b&flagShift != 0,
		End:     b&flagEnd != 0,
		Parity:  (b >> parityShift) & parityMask,
	}
	if h.End {
		h.FinalLen = int(b&finalLenMask) >> finalLenShift
	}
	return h
}

// Byte re-encodes the header into its wire form. On final headers the low
// three parity bits are replaced by FinalLen, mirroring the encoder.
func (h Header) Byte() byte {
	b := h.Parity << parityShift
	if h.Shifted {
		b |= flagShift
	}
	if h.End {
		b |= flagEnd
		b &^= finalLenMask
		b |= byte(h.FinalLen) << finalLenShift
	}
	return b
}

// String returns a debug representation of the header.
func (h Header) String() string {
	if h.End {
		return fmt.Sprintf("Header{shifted=%v, end=true, finalLen=%d, parity=0b%03b}",
			h.Shifted, h.FinalLen, h.Parity>>3)
	}
	return fmt.Sprintf("Header{shifted=%v, end=false, parity=0b%06b}", h.Shifted, h.Parity)
}

// Block is one framed unit of the stream: a header byte and its payload.
type Block struct {
	Header  byte
	Payload [PayloadSize]byte
}

// headerByte computes the header for a zero-padded 7-byte payload. The six
// parity bits record the set-bit parity of bytes 0-5 (byte 0 in the highest
// parity position) and are inverted as a group when byte 6 has odd parity.
func headerByte(payload []byte, shifted bool) byte {
	var h byte
	for i := 0; i < 6; i++ {
		h |= byte(bits.OnesCount8(payload[i])&1) << (5 - i)
	}
	if bits.OnesCount8(payload[6])&1 == 1 {
		h = ^h & parityMask
	}
	h <<= parityShift
	if shifted {
		h |= flagShift
	}
	return h
}

// FramingError reports a truncated or foreign stream: fewer than BlockSize
// bytes were available before any end block was seen.
type FramingError struct {
	Offset    int // byte offset of the short read
	Available int // bytes actually available there
}

// Error implements the error interface.
func (e *FramingError) Error() string {
	return fmt.Sprintf("framing error at offset %d: %d byte(s) available, end block never seen",
		e.Offset, e.Available)
}
