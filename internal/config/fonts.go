package config

import (
	"fmt"

	"github.com/mitchellh/go-homedir"

	"github.com/gogpu/calgrid/text"
)

// FontSource opens fonts.file, or the bundled Go Regular when it is empty.
func (c Config) FontSource() (*text.FontSource, error) {
	if c.Fonts.File == "" {
		return text.Default()
	}
	path, err := homedir.Expand(c.Fonts.File)
	if err != nil {
		return nil, fmt.Errorf("config: fonts.file: %w", err)
	}
	return text.NewFontSourceFromFile(path)
}

// Faces returns the day and mark faces at the configured sizes. With
// fonts.shaping set both faces measure through one HarfBuzz shaper.
func (c Config) Faces() (day, mark *text.Face, err error) {
	src, err := c.FontSource()
	if err != nil {
		return nil, nil, err
	}
	var opts []text.FaceOption
	if c.Fonts.Shaping {
		opts = append(opts, text.WithShaper(text.NewGoTextShaper()))
	}
	return src.Face(c.Fonts.DaySize, opts...), src.Face(c.Fonts.MarkSize, opts...), nil
}
