// Package tui implements the interactive block inspector for 'tti inspect'.
//
// The inspector lists every 8-byte block recovered from an image in a
// scrollable viewport: byte offset, raw header bits, the decoded shift and
// end flags, the declared final length, the informational parity bits, and
// the payload as hex and ASCII. It is read-only; it decodes headers for
// display but never alters or validates the stream.
//
// Built on bubbletea with bubbles viewport/key/help components and lipgloss
// styling, following the same model/update/view layout as the rest of the
// CLI's interactive surfaces.
package tui
