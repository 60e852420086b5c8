// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package vcsgit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/philocalyst/anki/cerrs"
	"github.com/philocalyst/anki/internal/vcs"
)

// recordSep separates the fields of one `git log` line. It is %x1f (unit
// separator), chosen because it cannot appear in an author name or path.
const recordSep = "\x1f"

// Adapter is a vcs.History backed by the system git binary invoked against
// repoRoot.
type Adapter struct {
	repoRoot string
}

// Open returns an Adapter rooted at repoRoot, the directory containing
// (or inside) the .git store.
func Open(repoRoot string) *Adapter {
	return &Adapter{repoRoot: repoRoot}
}

func (a *Adapter) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = a.repoRoot
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// HeadRevisions implements vcs.History.
func (a *Adapter) HeadRevisions(ctx context.Context, path string) ([]vcs.Revision, error) {
	out, err := a.run(ctx, "log", "--format=%H"+recordSep+"%an"+recordSep+"%at", "--", path)
	if err != nil {
		return nil, &cerrs.VcsFailureError{Cause: err}
	}

	var revs []vcs.Revision
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, recordSep)
		if len(fields) != 3 {
			return nil, &cerrs.VcsFailureError{Cause: fmt.Errorf("malformed git log record: %q", line)}
		}
		hash, author, atStr := fields[0], fields[1], fields[2]
		secs, err := strconv.ParseInt(atStr, 10, 64)
		if err != nil {
			return nil, &cerrs.VcsFailureError{Cause: fmt.Errorf("malformed commit time %q: %w", atStr, err)}
		}
		revs = append(revs, vcs.Revision{
			Entry:  vcs.NewEntryHandle(hash + ":" + path),
			Commit: vcs.CommitMeta{AuthorName: author, CommitTimeSecs: secs},
		})
	}
	return revs, nil
}

// BlobBytes implements vcs.History.
func (a *Adapter) BlobBytes(ctx context.Context, entry vcs.EntryHandle) ([]byte, error) {
	token := entry.String()
	if token == "" || !strings.Contains(token, ":") {
		return nil, cerrs.ErrInvalidEntry
	}
	kind, err := a.run(ctx, "cat-file", "-t", token)
	if err != nil {
		return nil, &cerrs.VcsFailureError{Cause: err}
	}
	if strings.TrimSpace(string(kind)) != "blob" {
		return nil, cerrs.ErrInvalidEntry
	}
	out, err := a.run(ctx, "show", token)
	if err != nil {
		return nil, &cerrs.VcsFailureError{Cause: err}
	}
	return out, nil
}
