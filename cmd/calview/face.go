package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/calgrid"
	"github.com/gogpu/calgrid/internal/config"
)

var (
	_ calgrid.Font            = (*face)(nil)
	_ calgrid.BaselineMetrics = (*face)(nil)
)

// face adapts an ebiten text face to calgrid's font contract.
type face struct {
	gt *text.GoTextFace
	id string
}

func newFace(src *text.GoTextFaceSource, name string, size float64) *face {
	return &face{
		gt: &text.GoTextFace{Source: src, Size: size},
		id: fmt.Sprintf("ebiten:%s@%g", name, size),
	}
}

func (f *face) ID() string { return f.id }

func (f *face) Size() float64 { return f.gt.Size }

func (f *face) Advance(s string) float64 { return text.Advance(s, f.gt) }

func (f *face) BaselineMetrics() (ascent, descent float64, ok bool) {
	m := f.gt.Metrics()
	if m.HAscent <= 0 {
		return 0, 0, false
	}
	return -m.HAscent, m.HDescent, true
}

// loadFaces opens fonts.file or the bundled Go Regular.
func loadFaces(cfg config.Config) (day, mark *face, err error) {
	data, name := goregular.TTF, "goregular"
	if cfg.Fonts.File != "" {
		path, err := homedir.Expand(cfg.Fonts.File)
		if err != nil {
			return nil, nil, err
		}
		if data, err = os.ReadFile(path); err != nil {
			return nil, nil, err
		}
		name = path
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("calview: parse font: %w", err)
	}
	return newFace(src, name, cfg.Fonts.DaySize), newFace(src, name, cfg.Fonts.MarkSize), nil
}
