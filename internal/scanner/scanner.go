// Package scanner finds references to a target note within Markdown
// content, reporting a span per occurrence. Two syntaxes are supported:
// [[wikilinks]] (with optional |alias) and [label](relative/path.md)
// hyperlinks. Scanning is a pure function of its inputs.
package scanner

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/starford/raido/internal/models"
)

var (
	wikilinkRe  = regexp.MustCompile(`\[\[([^\[\]]+?)\]\]`)
	hyperlinkRe = regexp.MustCompile(`\[[^\]]*\]\(([^()\s]+)\)`)
)

// Scan returns one span per non-overlapping reference to targetBasename
// in text, for the given reference kind, in document order (top-to-bottom,
// left-to-right). Malformed syntax is simply not matched. Self-references
// are reported like any other; filtering is not the scanner's concern.
func Scan(text, targetBasename string, kind models.ReferenceKind) []models.Span {
	if text == "" || targetBasename == "" {
		return nil
	}

	var re *regexp.Regexp
	var resolves func(dest, target string) bool
	switch kind {
	case models.KindWiki:
		re = wikilinkRe
		resolves = wikiResolves
	case models.KindHyperlink:
		re = hyperlinkRe
		resolves = hyperlinkResolves
	default:
		return nil
	}

	var spans []models.Span
	for i, line := range strings.Split(text, "\n") {
		for _, m := range re.FindAllStringSubmatchIndex(line, -1) {
			if !resolves(line[m[2]:m[3]], targetBasename) {
				continue
			}
			spans = append(spans, models.Span{
				Start: models.Position{Line: i, Character: runeCol(line, m[0])},
				End:   models.Position{Line: i, Character: runeCol(line, m[1])},
			})
		}
	}
	return spans
}

// wikiResolves reports whether a wikilink identifier resolves to the
// target basename. Aliases ([[Target|Alias]]) are stripped, the target's
// extension is appended when the identifier carries none, and comparison
// is case-sensitive on the identifier as written.
func wikiResolves(ident, target string) bool {
	if i := strings.Index(ident, "|"); i >= 0 {
		ident = ident[:i]
	}
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return false
	}
	if filepath.Ext(ident) == "" {
		ident += filepath.Ext(target)
	}
	return path.Base(ident) == target
}

// hyperlinkResolves reports whether a hyperlink destination, interpreted
// as a relative path and reduced to its basename, equals the target.
// Absolute URLs never resolve to a note.
func hyperlinkResolves(dest, target string) bool {
	if strings.Contains(dest, "://") {
		return false
	}
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return false
	}
	return path.Base(dest) == target
}

// runeCol converts a byte offset within line to a rune column.
func runeCol(line string, byteOff int) int {
	return utf8.RuneCountInString(line[:byteOff])
}
