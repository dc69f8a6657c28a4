// Package preview renders images as ANSI half-block cells in the terminal.
//
// Each terminal cell carries two vertically stacked pixels: the upper-half
// block glyph with its foreground set to the top pixel and its background
// set to the bottom pixel. Images wider than the terminal are downsampled
// with nearest-neighbor so the preview always fits.
//
// The preview is purely informational. Encoded images carry arbitrary bytes
// as colors, so the output usually looks like noise; what it is good for is
// eyeballing the image's shape and spotting obviously truncated output.
package preview
