// Package tinysurface draws calgrid instructions on small displays.
//
// It targets any tinygo.org/x/drivers Displayer (SPI panels, framebuffers,
// or the in-memory ImageDisplay) and renders text with tinyfont bitmap
// fonts. Font wraps a tinyfont.Fonter as a calgrid.Font; bitmap fonts carry
// no vertical metrics, so layout uses calgrid.FallbackMetrics for them.
package tinysurface
