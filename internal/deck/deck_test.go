// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package deck

import (
	"context"
	"errors"
	"testing"

	"github.com/philocalyst/anki/cerrs"
	"github.com/philocalyst/anki/internal/noteschema"
	"github.com/philocalyst/anki/internal/vcs"
)

// fakeHistory is an in-memory vcs.History used to exercise the
// orchestrator without a real git checkout.
type fakeHistory struct {
	revisions map[string][]vcs.Revision
	blobs     map[string][]byte
}

func (f *fakeHistory) HeadRevisions(ctx context.Context, path string) ([]vcs.Revision, error) {
	revs, ok := f.revisions[path]
	if !ok {
		return nil, nil
	}
	// Return a copy, newest-to-oldest, as a real implementation would.
	out := make([]vcs.Revision, len(revs))
	for i, r := range revs {
		out[len(revs)-1-i] = r
	}
	return out, nil
}

func (f *fakeHistory) BlobBytes(ctx context.Context, entry vcs.EntryHandle) ([]byte, error) {
	blob, ok := f.blobs[entry.String()]
	if !ok {
		return nil, cerrs.ErrInvalidEntry
	}
	return blob, nil
}

func basicModel() *noteschema.NoteModel {
	return &noteschema.NoteModel{
		Name:   "Basic",
		Fields: []noteschema.Field{{Name: "Front"}, {Name: "Back"}},
	}
}

func TestResolveTwoRevisionsPreservesIdentityAcrossModification(t *testing.T) {
	const path = "index.flash"
	rev1 := "c1:" + path
	rev2 := "c2:" + path

	history := &fakeHistory{
		revisions: map[string][]vcs.Revision{
			path: {
				{Entry: vcs.NewEntryHandle(rev1), Commit: vcs.CommitMeta{AuthorName: "Ada", CommitTimeSecs: 1000}},
				{Entry: vcs.NewEntryHandle(rev2), Commit: vcs.CommitMeta{AuthorName: "Ada", CommitTimeSecs: 2000}},
			},
		},
		blobs: map[string][]byte{
			rev1: []byte("= Basic =\n\nFront: one\nBack: 1\n\nFront: two\nBack: 2\n"),
			rev2: []byte("= Basic =\n\nFront: one\nBack: 1\n\nFront: two-edited\nBack: 2\n"),
		},
	}

	result, err := Resolve(context.Background(), history, []*noteschema.NoteModel{basicModel()}, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if len(result.Substrate) != 2 {
		t.Fatalf("got %d substrate entries, want 2", len(result.Substrate))
	}
	if result.Substrate[1].Inner.Fields[0].Content[0].Text != "two-edited" {
		t.Errorf("modification not applied: got %+v", result.Substrate[1].Inner)
	}
	if result.Substrate[0].Inner.Fields[0].Content[0].Text != "one" {
		t.Errorf("untouched note changed unexpectedly: got %+v", result.Substrate[0].Inner)
	}
}

func TestResolveEmptyHistoryFails(t *testing.T) {
	history := &fakeHistory{revisions: map[string][]vcs.Revision{}, blobs: map[string][]byte{}}
	_, err := Resolve(context.Background(), history, []*noteschema.NoteModel{basicModel()}, "index.flash")
	if !errors.Is(err, cerrs.ErrEmptyHistory) {
		t.Errorf("got %v, want ErrEmptyHistory", err)
	}
}

func TestResolveInvalidUtf8Fails(t *testing.T) {
	const path = "index.flash"
	rev1 := "c1:" + path
	history := &fakeHistory{
		revisions: map[string][]vcs.Revision{
			path: {{Entry: vcs.NewEntryHandle(rev1), Commit: vcs.CommitMeta{AuthorName: "Ada", CommitTimeSecs: 1000}}},
		},
		blobs: map[string][]byte{rev1: {0xff, 0xfe, 0x00}},
	}
	_, err := Resolve(context.Background(), history, []*noteschema.NoteModel{basicModel()}, path)
	var invalidUtf8 *cerrs.InvalidUtf8Error
	if !errors.As(err, &invalidUtf8) {
		t.Errorf("got %v, want InvalidUtf8Error", err)
	}
}

func TestResolveExpandsImportsWithinRevision(t *testing.T) {
	const path = "index.flash"
	rev1 := "c1:" + path
	importedRev := "c1:partial.flash"

	history := &fakeHistory{
		revisions: map[string][]vcs.Revision{
			path: {{Entry: vcs.NewEntryHandle(rev1), Commit: vcs.CommitMeta{AuthorName: "Ada", CommitTimeSecs: 1000}}},
		},
		blobs: map[string][]byte{
			rev1:        []byte("= Basic =\nimport partial.flash\n"),
			importedRev: []byte("\nFront: imported\nBack: ok\n"),
		},
	}

	result, err := Resolve(context.Background(), history, []*noteschema.NoteModel{basicModel()}, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Substrate) != 1 {
		t.Fatalf("got %d substrate entries, want 1", len(result.Substrate))
	}
	if result.Substrate[0].Inner.Fields[0].Content[0].Text != "imported" {
		t.Errorf("import was not expanded: got %+v", result.Substrate[0].Inner)
	}
}
