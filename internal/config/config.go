// Package config loads calgrid application settings: a TOML file created
// with defaults on first use, overridden by CALGRID_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/gogpu/calgrid"
)

const (
	// EnvPrefix prefixes environment overrides: CALGRID_FONTS_DAY_SIZE=18.
	EnvPrefix = "CALGRID"

	// PathEnv names the variable that overrides the config file location.
	PathEnv = "CALGRID_CONFIG"

	DefaultConfigPath = "~/.config/calgrid/config.toml"
)

type FontsConfig struct {
	// File is a TTF/OTF path; empty selects the bundled Go Regular.
	File     string  `mapstructure:"file" toml:"file"`
	DaySize  float64 `mapstructure:"day_size" toml:"day_size"`
	MarkSize float64 `mapstructure:"mark_size" toml:"mark_size"`
	// Shaping measures annotation text with HarfBuzz.
	Shaping bool `mapstructure:"shaping" toml:"shaping"`
}

type LayoutConfig struct {
	ViewportWidth  float64 `mapstructure:"viewport_width" toml:"viewport_width"`
	MaxGridWidth   float64 `mapstructure:"max_grid_width" toml:"max_grid_width"`
	CellHeight     float64 `mapstructure:"cell_height" toml:"cell_height"`
	RowGap         float64 `mapstructure:"row_gap" toml:"row_gap"`
	CircleDiameter float64 `mapstructure:"circle_diameter" toml:"circle_diameter"`
	MarkHeight     float64 `mapstructure:"mark_height" toml:"mark_height"`
	BottomPadding  float64 `mapstructure:"bottom_padding" toml:"bottom_padding"`
	DateMarkGap    float64 `mapstructure:"date_mark_gap" toml:"date_mark_gap"`
	// Trailing is "gap" or "padding".
	Trailing string `mapstructure:"trailing" toml:"trailing"`
	// WeekStart is an English weekday name.
	WeekStart string `mapstructure:"week_start" toml:"week_start"`
}

// PaletteConfig holds "#RRGGBB" colors.
type PaletteConfig struct {
	Background string `mapstructure:"background" toml:"background"`
	Today      string `mapstructure:"today" toml:"today"`
	Selected   string `mapstructure:"selected" toml:"selected"`
	Text       string `mapstructure:"text" toml:"text"`
	OnSelected string `mapstructure:"on_selected" toml:"on_selected"`
	OtherMonth string `mapstructure:"other_month" toml:"other_month"`
	Mark       string `mapstructure:"mark" toml:"mark"`
	Header     string `mapstructure:"header" toml:"header"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	// File enables a rotating log file next to stderr output.
	File       string `mapstructure:"file" toml:"file"`
	MaxSize    int    `mapstructure:"max_size" toml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" toml:"max_age"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}

type Config struct {
	// Annotations is an annotation file (.toml, .yaml, .yml, .json).
	Annotations string        `mapstructure:"annotations" toml:"annotations"`
	Fonts       FontsConfig   `mapstructure:"fonts" toml:"fonts"`
	Layout      LayoutConfig  `mapstructure:"layout" toml:"layout"`
	Palette     PaletteConfig `mapstructure:"palette" toml:"palette"`
	Log         LogConfig     `mapstructure:"log" toml:"log"`
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Default returns the stock configuration.
func Default() Config {
	lc := calgrid.DefaultLayoutConstants()
	pal := calgrid.DefaultPalette()
	return Config{
		Fonts: FontsConfig{DaySize: 15, MarkSize: 12},
		Layout: LayoutConfig{
			ViewportWidth:  375,
			MaxGridWidth:   lc.MaxGridWidth,
			CellHeight:     lc.CellHeight,
			RowGap:         lc.RowGap,
			CircleDiameter: lc.CircleDiameter,
			MarkHeight:     lc.MarkVisualHeight,
			BottomPadding:  lc.MarkBottomPadding,
			DateMarkGap:    lc.DateMarkGap,
			Trailing:       calgrid.SpacingGap.String(),
			WeekStart:      time.Sunday.String(),
		},
		Palette: PaletteConfig{
			Background: "#FFFFFF",
			Today:      hex(pal.Today),
			Selected:   hex(pal.Selected),
			Text:       hex(pal.Text),
			OnSelected: hex(pal.OnSelected),
			OtherMonth: hex(pal.OtherMonth),
			Mark:       hex(pal.Mark),
			Header:     hex(pal.Header),
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// SetDefaults registers every default with v so that environment
// variables can override keys missing from the file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("annotations", d.Annotations)

	v.SetDefault("fonts.file", d.Fonts.File)
	v.SetDefault("fonts.day_size", d.Fonts.DaySize)
	v.SetDefault("fonts.mark_size", d.Fonts.MarkSize)
	v.SetDefault("fonts.shaping", d.Fonts.Shaping)

	v.SetDefault("layout.viewport_width", d.Layout.ViewportWidth)
	v.SetDefault("layout.max_grid_width", d.Layout.MaxGridWidth)
	v.SetDefault("layout.cell_height", d.Layout.CellHeight)
	v.SetDefault("layout.row_gap", d.Layout.RowGap)
	v.SetDefault("layout.circle_diameter", d.Layout.CircleDiameter)
	v.SetDefault("layout.mark_height", d.Layout.MarkHeight)
	v.SetDefault("layout.bottom_padding", d.Layout.BottomPadding)
	v.SetDefault("layout.date_mark_gap", d.Layout.DateMarkGap)
	v.SetDefault("layout.trailing", d.Layout.Trailing)
	v.SetDefault("layout.week_start", d.Layout.WeekStart)

	v.SetDefault("palette.background", d.Palette.Background)
	v.SetDefault("palette.today", d.Palette.Today)
	v.SetDefault("palette.selected", d.Palette.Selected)
	v.SetDefault("palette.text", d.Palette.Text)
	v.SetDefault("palette.on_selected", d.Palette.OnSelected)
	v.SetDefault("palette.other_month", d.Palette.OtherMonth)
	v.SetDefault("palette.mark", d.Palette.Mark)
	v.SetDefault("palette.header", d.Palette.Header)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
}

// DefaultPath returns $CALGRID_CONFIG or ~/.config/calgrid/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return homedir.Expand(p)
	}
	return homedir.Expand(DefaultConfigPath)
}

// Write stores cfg as TOML at path, creating parent directories.
func Write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// NewViper returns a viper instance with defaults, environment overrides
// and, when path is set, the config file. A missing file is written with
// the defaults first.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: expand %s: %w", path, err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Write(path, Default()); err != nil {
			return nil, err
		}
		calgrid.Logger().Info("config: wrote default configuration", "path", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return v, nil
}

// Decode unmarshals and validates the configuration held by v.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

// LoadOrCreate reads the file at path, creating it with defaults when it
// does not exist, and applies environment overrides.
func LoadOrCreate(path string) (Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return Config{}, err
	}
	return Decode(v)
}
