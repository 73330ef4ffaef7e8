package text

import "golang.org/x/image/font"

// Hinting specifies font hinting mode. Hinted advances are whole pixels,
// which keeps measured widths equal to the drawn ones.
type Hinting int

const (
	// HintingFull applies full hinting.
	HintingFull Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingNone disables hinting.
	HintingNone
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return "Unknown"
	}
}

func (h Hinting) font() font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
