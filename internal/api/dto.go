package api

import (
	"github.com/starford/raido/internal/backlinks"
	"github.com/starford/raido/internal/models"
)

// BacklinkTreeResponse wraps the grouped backlink result for one target.
// Groups are the top-level tree nodes; leaves are fetched separately via
// the hits endpoint.
type BacklinkTreeResponse struct {
	Target string             `json:"target"`
	Groups []models.FileGroup `json:"groups"`
}

// HitListResponse materializes one file group's leaf nodes with previews.
type HitListResponse struct {
	Target string                `json:"target"`
	Source string                `json:"source"`
	Hits   []backlinks.HitDetail `json:"hits"`
}

// NoteListItem is a lightweight item in a list response (aliased from the
// domain layer).
type NoteListItem = backlinks.NoteListItem

// NoteListResponse wraps vault listings.
type NoteListResponse struct {
	Notes []NoteListItem `json:"notes"`
	Total int            `json:"total"`
}

// NoteContent is the full note payload (aliased from the domain layer).
type NoteContent = backlinks.NoteContent
