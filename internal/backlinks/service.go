package backlinks

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/checksum"
	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/scanner"
	"github.com/starford/raido/internal/vault"
)

// HitDetail is a leaf node for presentation: one hit plus its one-line
// preview from the source note.
type HitDetail struct {
	models.Hit
	Preview string `json:"preview"`
}

// NoteListItem is a lightweight item in a vault listing.
type NoteListItem struct {
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteContent is a full note payload.
type NoteContent struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Checksum string `json:"checksum"`
}

// Service coordinates vault access and backlink resolution for the HTTP,
// MCP, and CLI surfaces.
type Service struct {
	store    vault.Provider
	resolver *Resolver
}

// NewService creates a service over the given corpus. A nil store yields
// empty results everywhere, matching the no-workspace contract.
func NewService(store vault.Provider, logger *slog.Logger) *Service {
	return &Service{store: store, resolver: NewResolver(store, logger)}
}

// Resolver exposes the underlying resolver.
func (s *Service) Resolver() *Resolver { return s.resolver }

// Backlinks resolves and groups inbound references for a target basename.
func (s *Service) Backlinks(ctx context.Context, target string) (models.BacklinkTree, error) {
	return s.resolver.ResolveTree(ctx, target)
}

// FileHits materializes the leaf nodes of one file group: every hit whose
// source identity equals sourceBasename, each with a preview extracted
// from its source note. Source contents are read once per distinct path.
func (s *Service) FileHits(ctx context.Context, target, sourceBasename string) ([]HitDetail, error) {
	tree, err := s.resolver.ResolveTree(ctx, target)
	if err != nil {
		return nil, err
	}

	var group *models.FileGroup
	for i := range tree.Groups {
		if tree.Groups[i].File == sourceBasename {
			group = &tree.Groups[i]
			break
		}
	}
	if group == nil {
		return []HitDetail{}, nil
	}

	contents := make(map[string]string)
	details := make([]HitDetail, 0, len(group.Hits))
	for _, h := range group.Hits {
		text, ok := contents[h.Source]
		if !ok {
			data, readErr := s.store.Read(h.Source)
			if readErr != nil {
				// The note vanished between scan and materialization;
				// the hit survives with an empty preview.
				data = nil
			}
			text = string(data)
			contents[h.Source] = text
		}
		details = append(details, HitDetail{Hit: h, Preview: Preview(text, h)})
	}
	return details, nil
}

// ListNotes returns the vault listing with derived titles.
func (s *Service) ListNotes(ctx context.Context) ([]NoteListItem, error) {
	if s.store == nil {
		return []NoteListItem{}, nil
	}
	infos, err := s.store.List("")
	if err != nil {
		return nil, err
	}
	items := make([]NoteListItem, 0, len(infos))
	for _, info := range infos {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		title := ""
		if data, readErr := s.store.Read(info.Path); readErr == nil {
			title = scanner.Title(data)
		}
		items = append(items, NoteListItem{
			Path:      info.Path,
			Title:     title,
			Checksum:  info.Checksum,
			UpdatedAt: info.UpdatedAt,
		})
	}
	return items, nil
}

// ReadNote returns one note's content and derived title.
func (s *Service) ReadNote(_ context.Context, path string) (*NoteContent, error) {
	if s.store == nil {
		return nil, apperr.ErrNotFound
	}
	data, err := s.store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &NoteContent{
		Path:     path,
		Title:    scanner.Title(data),
		Content:  string(data),
		Checksum: checksum.Sum(data),
	}, nil
}
