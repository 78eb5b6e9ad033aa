package backlinks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/testutil"
)

func TestFileHits_PreviewsPerHit(t *testing.T) {
	dir, store := testutil.TestVault(t)
	testutil.WriteNote(t, dir, "a.md", "see [[b]] here\n"+strings.Repeat("x", 40)+"[[b]] far\n")
	testutil.WriteNote(t, dir, "b.md", "target")

	svc := NewService(store, testutil.QuietLogger())
	details, err := svc.FileHits(context.Background(), "b.md", "a.md")
	if err != nil {
		t.Fatalf("FileHits: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("details = %+v, want 2", details)
	}
	if details[0].Preview != "see [[b]] here" {
		t.Errorf("first preview = %q", details[0].Preview)
	}
	// Second hit starts at column 40; preview begins 12 runes earlier.
	if want := strings.Repeat("x", 12) + "[[b]] far"; details[1].Preview != want {
		t.Errorf("second preview = %q, want %q", details[1].Preview, want)
	}
}

func TestFileHits_UnknownSource(t *testing.T) {
	dir, store := testutil.TestVault(t)
	testutil.WriteNote(t, dir, "a.md", "[[b]]")
	testutil.WriteNote(t, dir, "b.md", "target")

	svc := NewService(store, testutil.QuietLogger())
	details, err := svc.FileHits(context.Background(), "b.md", "zzz.md")
	if err != nil {
		t.Fatalf("FileHits: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("details = %+v, want empty", details)
	}
}

func TestBacklinks_TreeShape(t *testing.T) {
	dir, store := testutil.TestVault(t)
	testutil.WriteNote(t, dir, "one.md", "[[b]]")
	testutil.WriteNote(t, dir, "two.md", "[x](b.md)")
	testutil.WriteNote(t, dir, "b.md", "target")

	svc := NewService(store, testutil.QuietLogger())
	tree, err := svc.Backlinks(context.Background(), "b.md")
	if err != nil {
		t.Fatalf("Backlinks: %v", err)
	}
	if len(tree.Groups) != 2 {
		t.Fatalf("groups = %+v, want 2", tree.Groups)
	}
	if tree.Groups[0].File != "one.md" || tree.Groups[1].File != "two.md" {
		t.Errorf("group order = %s, %s", tree.Groups[0].File, tree.Groups[1].File)
	}
	if tree.Groups[1].Hits[0].Kind != models.KindHyperlink {
		t.Errorf("two.md hit = %+v", tree.Groups[1].Hits[0])
	}
}

func TestListNotes(t *testing.T) {
	dir, store := testutil.TestVault(t)
	testutil.WriteNote(t, dir, "a.md", "---\ntitle: Alpha\n---\nbody")
	testutil.WriteNote(t, dir, "sub/b.md", "# Beta\nbody")

	svc := NewService(store, testutil.QuietLogger())
	items, err := svc.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %+v, want 2", items)
	}
	titles := map[string]string{}
	for _, it := range items {
		titles[it.Path] = it.Title
		if it.Checksum == "" {
			t.Errorf("missing checksum for %s", it.Path)
		}
	}
	if titles["a.md"] != "Alpha" || titles["sub/b.md"] != "Beta" {
		t.Errorf("titles = %v", titles)
	}
}

func TestReadNote(t *testing.T) {
	dir, store := testutil.TestVault(t)
	testutil.WriteNote(t, dir, "a.md", "# Alpha\nbody")

	svc := NewService(store, testutil.QuietLogger())
	note, err := svc.ReadNote(context.Background(), "a.md")
	if err != nil {
		t.Fatalf("ReadNote: %v", err)
	}
	if note.Title != "Alpha" || note.Content != "# Alpha\nbody" || note.Checksum == "" {
		t.Errorf("note = %+v", note)
	}
}

func TestReadNote_Missing(t *testing.T) {
	_, store := testutil.TestVault(t)
	svc := NewService(store, testutil.QuietLogger())
	if _, err := svc.ReadNote(context.Background(), "missing.md"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestService_NoWorkspace(t *testing.T) {
	svc := NewService(nil, testutil.QuietLogger())
	tree, err := svc.Backlinks(context.Background(), "b.md")
	if err != nil {
		t.Fatalf("Backlinks: %v", err)
	}
	if len(tree.Groups) != 0 {
		t.Errorf("tree = %+v, want empty", tree)
	}
	items, err := svc.ListNotes(context.Background())
	if err != nil || len(items) != 0 {
		t.Errorf("items = %+v, err = %v, want empty", items, err)
	}
}
