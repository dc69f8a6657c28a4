// Package imagery converts between flat byte streams and RGB pixel rasters.
//
// The codec treats an image purely as an ordered sequence of (R, G, B) byte
// triples in row-major order. Rasterize lays a stream into a width x height
// image and Flatten reads it back; neither knows anything about the block
// format.
//
// ReadImage decodes PNG, JPEG, and GIF files. Only lossless formats preserve
// the pixel-exact bytes the codec requires; callers should warn when the
// reported format is lossy. WritePNG is the matching lossless writer.
package imagery
