// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package identity

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/philocalyst/anki/internal/noteschema"
)

// HostUUID derives the per-file namespace UUID from the first observed
// revision's author name and commit time. It anchors every
// note_uuid derived within that file to a single, stable namespace.
func HostUUID(authorName string, commitTimeSecs int64) uuid.UUID {
	name := authorName + strconv.FormatInt(commitTimeSecs, 10)
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(name))
}

// NoteUUID derives a note's identifier from a host namespace and the note's
// content_string projection. It is insensitive to tags and
// cloze id/hint, so cosmetic edits never perturb identity.
func NoteUUID(hostUUID uuid.UUID, note noteschema.Note) uuid.UUID {
	return uuid.NewSHA1(hostUUID, []byte(note.ContentString()))
}
