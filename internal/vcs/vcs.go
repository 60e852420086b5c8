// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package vcs

import "context"

// CommitMeta is the author/time pair the identifier generator anchors a
// file's host_uuid to.
type CommitMeta struct {
	AuthorName     string
	CommitTimeSecs int64
}

// EntryHandle opaquely identifies one historical revision of a file within
// a History. Its zero value denotes no entry. Handles are built with
// NewEntryHandle from an implementation's own token.
type EntryHandle struct {
	handle string
}

// String returns the handle's underlying opaque token.
func (h EntryHandle) String() string { return h.handle }

// NewEntryHandle constructs an EntryHandle from an implementation's own
// opaque token, so code outside this package can populate EntryHandle
// values without vcs exposing its internal field.
func NewEntryHandle(token string) EntryHandle { return EntryHandle{handle: token} }

// Revision pairs one historical entry with the commit metadata that
// produced it.
type Revision struct {
	Entry  EntryHandle
	Commit CommitMeta
}

// History is the abstract contract the core consumes; it knows nothing
// about git, or any other specific VCS.
type History interface {
	// HeadRevisions returns every revision of path, newest-to-oldest. The
	// orchestrator reverses the result to process chronologically.
	HeadRevisions(ctx context.Context, path string) ([]Revision, error)

	// BlobBytes returns the raw content behind entry. It fails with
	// cerrs.ErrInvalidEntry if entry does not denote a regular file blob.
	BlobBytes(ctx context.Context, entry EntryHandle) ([]byte, error)
}
