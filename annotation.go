package calgrid

import "golang.org/x/text/unicode/norm"

// Annotation is caller-owned data attached to a date. Only the mark text
// is read.
type Annotation interface {
	MarkText() string
}

// Mark is the plain Annotation loaded from annotation files.
type Mark struct {
	Text string `json:"markText" yaml:"markText" toml:"markText"`
}

// MarkText implements Annotation.
func (m Mark) MarkText() string { return m.Text }

// Annotations maps ISO "YYYY-MM-DD" keys to annotations.
type Annotations map[string]Annotation

// MarkText returns the NFC-normalized mark text for d. A missing entry,
// a nil annotation and an empty text all mean "no annotation".
func (a Annotations) MarkText(d Date) string {
	if a == nil {
		return ""
	}
	ann, ok := a[d.Key()]
	if !ok || ann == nil {
		return ""
	}
	return norm.NFC.String(ann.MarkText())
}
