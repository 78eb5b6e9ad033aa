// Package models defines the domain types for Raido.
package models

// ReferenceKind identifies one of the two supported link syntaxes.
type ReferenceKind string

const (
	// KindWiki is the double-bracket [[identifier]] syntax.
	KindWiki ReferenceKind = "wiki"
	// KindHyperlink is the [label](destination) syntax with a relative
	// path destination.
	KindHyperlink ReferenceKind = "hyperlink"
)

// Position is a zero-indexed (line, character) pair. Characters are
// counted in runes, not bytes.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Less reports whether p sorts before q, comparing line then character.
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Character < q.Character
}

// Span delimits matched reference text within a note. End is exclusive.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Hit is one inbound reference: a span in a source note whose reference
// resolves to the target note. Hits are immutable after creation.
//
// Source is the vault-relative path of the note the reference was found
// in; identity for grouping purposes is its basename only, so two notes
// sharing a basename in different folders fall into the same group. This
// ambiguity is accepted, matching how wiki identifiers resolve by name.
type Hit struct {
	Source string        `json:"source"`
	Target string        `json:"target"`
	Kind   ReferenceKind `json:"kind"`
	Span   Span          `json:"span"`
}

// FileGroup collects one source identity's hits, ordered by span start.
type FileGroup struct {
	File string `json:"file"`
	Hits []Hit  `json:"hits"`
}

// BacklinkTree is the grouped, ordered backlink result for one target.
// It is built fresh for every query and never persisted.
type BacklinkTree struct {
	Groups []FileGroup `json:"groups"`
}
