// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package deck

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/philocalyst/anki/cerrs"
	"github.com/philocalyst/anki/internal/changeclass"
	"github.com/philocalyst/anki/internal/flashparse"
	"github.com/philocalyst/anki/internal/identity"
	"github.com/philocalyst/anki/internal/importexpand"
	"github.com/philocalyst/anki/internal/lexer"
	"github.com/philocalyst/anki/internal/noteschema"
	"github.com/philocalyst/anki/internal/resolver"
	"github.com/philocalyst/anki/internal/vcs"
)

// Result is the outcome of resolving one file's history: the final
// identified substrate plus every diagnostic raised across every revision
// parsed along the way.
type Result struct {
	HostUUID    uuid.UUID
	Substrate   resolver.Substrate
	Diagnostics []flashparse.Diagnostic
}

// Resolve runs the four-step orchestration over a single canonical entry
// file: it loads no models itself (models are supplied by the caller,
// keeping deck decoupled from deckconfig and modelconfig) and walks
// history through the supplied vcs.History.
func Resolve(ctx context.Context, history vcs.History, models []*noteschema.NoteModel, entryPath string) (Result, error) {
	revisions, err := history.HeadRevisions(ctx, entryPath)
	if err != nil {
		return Result{}, &cerrs.VcsFailureError{Cause: err}
	}
	if len(revisions) == 0 {
		return Result{}, cerrs.ErrEmptyHistory
	}

	// HeadRevisions is newest-to-oldest; the resolver must fold oldest-first.
	for i, j := 0, len(revisions)-1; i < j; i, j = i+1, j-1 {
		revisions[i], revisions[j] = revisions[j], revisions[i]
	}

	var result Result
	var prevNotes []noteschema.Note

	for i, rev := range revisions {
		blob, err := history.BlobBytes(ctx, rev.Entry)
		if err != nil {
			return Result{}, &cerrs.VcsFailureError{Cause: err}
		}
		if !utf8.Valid(blob) {
			return Result{}, &cerrs.InvalidUtf8Error{Path: entryPath}
		}

		canonical := rev.Entry.String()
		hash, _, err := splitCanonical(canonical)
		if err != nil {
			return Result{}, &cerrs.VcsFailureError{Cause: err}
		}
		reader := &revisionReader{ctx: ctx, history: history, commitHash: hash}

		expanded, err := importexpand.Expand(reader, canonical, string(blob))
		if err != nil {
			return Result{}, err
		}

		notes, diags := flashparse.Parse(lexer.Lex(expanded), models)
		result.Diagnostics = append(result.Diagnostics, diags...)
		slog.Debug("parsed revision", "entry", canonical, "notes", len(notes), "diagnostics", len(diags))

		if i == 0 {
			result.HostUUID = identity.HostUUID(rev.Commit.AuthorName, rev.Commit.CommitTimeSecs)
			result.Substrate = resolver.NewSubstrate(notes, result.HostUUID)
		} else {
			transform := changeclass.Classify(prevNotes, notes)
			resolver.Apply(&result.Substrate, transform, result.HostUUID)
		}
		prevNotes = notes
	}

	return result, nil
}
