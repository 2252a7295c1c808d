package models

// LabelLength is the display length of entity labels, ellipsis included.
const LabelLength = 30

const ellipsis = "…"

// Labeled is implemented by entities that have a human-readable display field.
type Labeled interface {
	Label() string
}

// Label returns text unchanged if it fits in limit characters, otherwise its first
// limit-1 characters followed by an ellipsis.
func Label(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + ellipsis
}
