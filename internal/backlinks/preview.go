package backlinks

import (
	"strings"

	"github.com/starford/raido/internal/models"
)

const (
	// previewLead is how many runes of context precede the match.
	previewLead = 12
	// previewClampAt: computed starts below this snap back to column 0 so
	// the preview does not begin with a near-empty truncated prefix.
	previewClampAt = 20
)

// Preview produces the one-line snippet for a hit from the full text of
// its source note: the line containing the span start, truncated to begin
// previewLead runes before the match column. Starts below previewClampAt
// (including negative ones) are clamped to 0. The preview never crosses
// line boundaries.
func Preview(text string, hit models.Hit) string {
	lines := strings.Split(text, "\n")
	n := hit.Span.Start.Line
	if n < 0 || n >= len(lines) {
		return ""
	}
	line := lines[n]

	start := hit.Span.Start.Character - previewLead
	if start < previewClampAt {
		start = 0
	}

	runes := []rune(line)
	if start >= len(runes) {
		return ""
	}
	return string(runes[start:])
}
