// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package resolver

import (
	"github.com/google/uuid"

	"github.com/philocalyst/anki/internal/changeclass"
	"github.com/philocalyst/anki/internal/identity"
	"github.com/philocalyst/anki/internal/noteschema"
)

// Substrate is the ordered, identity-carrying note list the resolver
// mutates across a file's entire revision history.
type Substrate = []noteschema.Identified[noteschema.Note]

// NewSubstrate builds the initial substrate from a file's first parsed
// revision, assigning every note a fresh id under hostUUID.
func NewSubstrate(notes []noteschema.Note, hostUUID uuid.UUID) Substrate {
	s := make(Substrate, len(notes))
	for i, n := range notes {
		s[i] = noteschema.Identified[noteschema.Note]{ID: identity.NoteUUID(hostUUID, n), Inner: n}
	}
	return s
}

// Apply folds t over substrate in place, preserving identity across every
// change class but Additions, which mints fresh ids.
func Apply(substrate *Substrate, t changeclass.Transforms, hostUUID uuid.UUID) {
	switch t.Kind {
	case changeclass.None:
	case changeclass.Additions:
		applyAdditions(substrate, t.Additions, hostUUID)
	case changeclass.Deletions:
		applyDeletions(substrate, t.Deletions)
	case changeclass.Modifications:
		applyModifications(substrate, t.Modifications)
	case changeclass.Reorders:
		applyReorders(substrate, t.Reorders)
	}
}

// applyAdditions inserts low-to-high so earlier insertions never shift the
// index a later one targets. Classify already emits Additions in
// increasing new-index order.
func applyAdditions(substrate *Substrate, adds []changeclass.Addition, hostUUID uuid.UUID) {
	for _, add := range adds {
		entry := noteschema.Identified[noteschema.Note]{
			ID:    identity.NoteUUID(hostUUID, add.Note),
			Inner: add.Note,
		}
		s := *substrate
		s = append(s, noteschema.Identified[noteschema.Note]{})
		copy(s[add.Index+1:], s[add.Index:])
		s[add.Index] = entry
		*substrate = s
	}
}

// applyDeletions removes at each index. dels arrives already reversed
// high-to-low, so indices stay valid under sequential removal.
func applyDeletions(substrate *Substrate, dels []changeclass.Deletion) {
	for _, d := range dels {
		s := *substrate
		s = append(s[:d.Index], s[d.Index+1:]...)
		*substrate = s
	}
}

// applyModifications replaces the inner note at each index, preserving the
// entry's existing id.
func applyModifications(substrate *Substrate, mods []changeclass.Modification) {
	s := *substrate
	for _, m := range mods {
		s[m.Index].Inner = m.Note
	}
}

// applyReorders swaps substrate entries pairwise. The pairs are disjoint
// transpositions under the single-change invariant, so swap order does not
// matter.
func applyReorders(substrate *Substrate, swaps []changeclass.Swap) {
	s := *substrate
	for _, sw := range swaps {
		s[sw.A], s[sw.B] = s[sw.B], s[sw.A]
	}
}
