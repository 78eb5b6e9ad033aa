// Package vault provides read access to the note corpus on disk.
package vault

import "time"

// NoteInfo describes one candidate note file.
type NoteInfo struct {
	Path      string    // vault-relative path
	Checksum  string    // SHA-256 of content
	UpdatedAt time.Time // file mtime
}

// Provider is the interface for corpus access. List enumerates candidate
// note files; Read returns the raw bytes of one of them. Implementations
// must signal per-file read failure without aborting enumeration.
type Provider interface {
	// List returns metadata for every note file under dir (relative to
	// the vault root; empty string for the whole vault).
	List(dir string) ([]NoteInfo, error)
	// Read returns the raw bytes of the file at path (relative to the
	// vault root).
	Read(path string) ([]byte, error)
}
