// Package annotations loads date annotations from TOML, YAML or JSON files.
//
// A file maps ISO dates to either a plain mark text or a table with a
// markText field:
//
//	"2024-02-14" = "Payday"
//	[2024-02-29]
//	markText = "Leap"
package annotations

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/calgrid"
)

var (
	ErrUnknownFormat = errors.New("annotations: unknown file format")
	ErrBadEntry      = errors.New("annotations: bad entry")
)

// Format is an annotation file encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads the annotation file at path.
func Load(path string) (calgrid.Annotations, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("annotations: %w", err)
	}
	a, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	calgrid.Logger().Debug("annotations: loaded", "path", path, "entries", len(a))
	return a, nil
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parse decodes data in the given format.
func Parse(data []byte, f Format) (calgrid.Annotations, error) {
	raw := make(map[string]any)
	var err error
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("annotations: decode %s: %w", f, err)
	}
	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (calgrid.Annotations, error) {
	out := make(calgrid.Annotations, len(raw))
	// Sorted so the first reported error is stable.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		d, err := calgrid.ParseDate(k)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrBadEntry, k, err)
		}
		text, err := markText(raw[k])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrBadEntry, k, err)
		}
		if text == "" {
			continue
		}
		out[d.Key()] = calgrid.Mark{Text: text}
	}
	return out, nil
}

func markText(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case map[string]any:
		t, ok := v["markText"]
		if !ok {
			return "", errors.New("missing markText")
		}
		if t == nil {
			return "", nil
		}
		s, ok := t.(string)
		if !ok {
			return "", fmt.Errorf("markText is %T, want string", t)
		}
		return s, nil
	}
	return "", fmt.Errorf("value is %T, want string or table", v)
}

// Write stores a as a TOML file of plain mark texts.
func Write(path string, a calgrid.Annotations) error {
	flat := make(map[string]string, len(a))
	for k, ann := range a {
		if ann == nil || ann.MarkText() == "" {
			continue
		}
		flat[k] = ann.MarkText()
	}
	data, err := toml.Marshal(flat)
	if err != nil {
		return fmt.Errorf("annotations: encode: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
