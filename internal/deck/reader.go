// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package deck

import (
	"context"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/philocalyst/anki/cerrs"
	"github.com/philocalyst/anki/internal/vcs"
)

// revisionReader implements importexpand.Reader over a single historical
// revision of a vcs.History: import targets are resolved relative to the
// directory of the importing file and read as blobs at the same commit, so
// an import never reaches across revisions.
type revisionReader struct {
	ctx        context.Context
	history    vcs.History
	commitHash string
}

// canonical path shape is "<commit-hash>:<repo-relative-path>", matching
// the token vcsgit.Adapter hands back as an EntryHandle.
func splitCanonical(canonical string) (hash, relPath string, err error) {
	hash, relPath, found := strings.Cut(canonical, ":")
	if !found {
		return "", "", fmt.Errorf("malformed canonical path %q", canonical)
	}
	return hash, relPath, nil
}

func (r *revisionReader) Resolve(fromCanonical, relPath string) (string, error) {
	_, fromPath, err := splitCanonical(fromCanonical)
	if err != nil {
		return "", err
	}
	resolved := path.Clean(path.Join(path.Dir(fromPath), relPath))
	return r.commitHash + ":" + resolved, nil
}

func (r *revisionReader) Read(canonical string) (string, error) {
	blob, err := r.history.BlobBytes(r.ctx, vcs.NewEntryHandle(canonical))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(blob) {
		_, p, _ := splitCanonical(canonical)
		return "", &cerrs.InvalidUtf8Error{Path: p}
	}
	return string(blob), nil
}
