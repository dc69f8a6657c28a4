// Package codec frames arbitrary byte streams into self-delimiting 8-byte
// blocks so that any file can be carried inside an RGB pixel raster and
// recovered exactly.
//
// # Block Format
//
// Each block is 1 header byte followed by 7 payload bytes:
//
//	bit 0    shift flag: all 7 payload bytes were ASCII-range (<= 0x7F) and
//	         were stored left-shifted by one bit
//	bit 1    end flag: set only on the final block of the stream
//	bits 2-4 on the final block: number of real payload bytes (0-7) before
//	         the zero padding; on all other blocks: parity bits
//	bits 5-7 parity bits (informational, never validated on decode)
//
// The six parity bits record the set-bit parity of payload bytes 0-5 and are
// inverted as a group when payload byte 6 has odd parity. They are produced
// for format compatibility only; the decoder ignores them.
//
// # Stream Layout
//
// Every block except possibly the last carries exactly 7 real payload bytes.
// The true stream length is recovered solely from the final block's declared
// length. After framing, the encoder pads the stream to a multiple of 3 (one
// RGB pixel per 3 bytes) and, when a maximum aspect ratio is configured, to a
// ratio-compliant width*height*3. Padding repeats the stream's own contents
// cyclically; the decoder stops at the end block and never reads it.
//
// # Usage
//
//	enc := codec.Encoder{MaxRatio: 2.0}
//	out, err := enc.Encode(data)
//
//	dec := codec.Decoder{}
//	orig, err := dec.DecodeBytes(out)
//
// Encoding an empty input yields an empty output; decoding an empty stream
// yields empty output rather than a framing error.
package codec
