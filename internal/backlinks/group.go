package backlinks

import (
	"sort"

	"github.com/starford/raido/internal/models"
)

// Group partitions hits by source identity (basename) and orders them for
// navigation: groups ascending by file using ordinal string comparison,
// hits within a group ascending by span start (line, then character),
// stable on ties. The result is deterministic regardless of input order.
// No hit is dropped or deduplicated; a span matched by both reference
// kinds keeps both hits.
func Group(hits []models.Hit) models.BacklinkTree {
	byFile := make(map[string][]models.Hit)
	var files []string
	for _, h := range hits {
		id := sourceIdentity(h.Source)
		if _, ok := byFile[id]; !ok {
			files = append(files, id)
		}
		byFile[id] = append(byFile[id], h)
	}
	sort.Strings(files)

	groups := make([]models.FileGroup, 0, len(files))
	for _, f := range files {
		hs := byFile[f]
		sort.SliceStable(hs, func(i, j int) bool {
			return hs[i].Span.Start.Less(hs[j].Span.Start)
		})
		groups = append(groups, models.FileGroup{File: f, Hits: hs})
	}
	return models.BacklinkTree{Groups: groups}
}
