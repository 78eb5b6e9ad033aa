// Package backlinks implements the query-scoped backlink index: scanning
// the corpus for references to a target note and grouping the hits into a
// navigable, deterministically ordered structure. Nothing here persists
// across queries; every query re-walks the vault and re-reads candidate
// note contents.
package backlinks

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"golang.org/x/sync/errgroup"

	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/scanner"
	"github.com/starford/raido/internal/vault"
)

// Resolver finds inbound references to a target note across the corpus.
type Resolver struct {
	store  vault.Provider
	logger *slog.Logger
}

// NewResolver creates a resolver over the given corpus. A nil store means
// no workspace is configured; every query then resolves to no backlinks.
func NewResolver(store vault.Provider, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, logger: logger}
}

// Resolve scans every candidate note for references to targetBasename,
// one concurrent pass per reference kind, and returns the merged flat hit
// list. Hit order before grouping is unspecified; Group imposes the final
// order. An unreadable note is skipped, never aborting the query.
func (r *Resolver) Resolve(ctx context.Context, targetBasename string) ([]models.Hit, error) {
	if targetBasename == "" || r.store == nil {
		return nil, nil
	}

	infos, err := r.store.List("")
	if err != nil {
		return nil, fmt.Errorf("backlinks: list corpus: %w", err)
	}

	kinds := []models.ReferenceKind{models.KindWiki, models.KindHyperlink}
	results := make([][]models.Hit, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			hits, scanErr := r.scanKind(gctx, infos, targetBasename, kind)
			if scanErr != nil {
				return scanErr
			}
			results[i] = hits
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var hits []models.Hit
	for _, part := range results {
		hits = append(hits, part...)
	}
	return hits, nil
}

// ResolveTree resolves and groups in one step.
func (r *Resolver) ResolveTree(ctx context.Context, targetBasename string) (models.BacklinkTree, error) {
	hits, err := r.Resolve(ctx, targetBasename)
	if err != nil {
		return models.BacklinkTree{}, err
	}
	return Group(hits), nil
}

// scanKind runs one reference-kind scan over the full corpus. Each note's
// content is read independently, so concurrent kind scans share no state.
func (r *Resolver) scanKind(ctx context.Context, infos []vault.NoteInfo, target string, kind models.ReferenceKind) ([]models.Hit, error) {
	var hits []models.Hit
	for _, info := range infos {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		data, err := r.store.Read(info.Path)
		if err != nil {
			r.logger.Warn("backlinks: read failed, skipping note",
				slog.String("path", info.Path),
				slog.String("error", err.Error()))
			continue
		}
		for _, span := range scanner.Scan(string(data), target, kind) {
			hits = append(hits, models.Hit{
				Source: info.Path,
				Target: target,
				Kind:   kind,
				Span:   span,
			})
		}
	}
	return hits, nil
}

// sourceIdentity reduces a hit source to its grouping identity (basename).
func sourceIdentity(p string) string {
	return path.Base(p)
}
