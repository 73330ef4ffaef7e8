// Package text loads TrueType and OpenType fonts for calendar surfaces.
//
// The package separates the heavyweight font file from its sized faces:
//
//   - FontSource: a parsed font file, shared across the application
//   - Face: a font at one pixel size; it satisfies calgrid.Font and
//     calgrid.BaselineMetrics
//   - FontParser: pluggable parsing backend (default: golang.org/x/image)
//   - Shaper: optional HarfBuzz shaping for advances (go-text/typesetting)
//
// # Example usage
//
//	source, err := text.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	day := source.Face(15)
//	mark := source.Face(12, text.WithShaper(text.NewGoTextShaper()))
//	cal.SetFonts(day, mark)
//
// Draw renders a string at a baseline origin onto any draw.Image; the
// canvas package uses it to execute calgrid Text instructions.
package text
