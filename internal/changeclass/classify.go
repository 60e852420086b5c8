// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package changeclass

import (
	"sort"
	"strings"

	"github.com/philocalyst/anki/internal/noteschema"
)

// Kind discriminates the single change category a Transforms value carries.
type Kind int

const (
	None Kind = iota
	Additions
	Deletions
	Modifications
	Reorders
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Additions:
		return "Additions"
	case Deletions:
		return "Deletions"
	case Modifications:
		return "Modifications"
	case Reorders:
		return "Reorders"
	default:
		return "Kind(?)"
	}
}

// Addition is a note inserted at a new-sequence index.
type Addition struct {
	Index int
	Note  noteschema.Note
}

// Deletion is the old-sequence index of a removed note.
type Deletion struct {
	Index int
}

// Modification replaces the note at Index, preserving whatever identity the
// resolver has already assigned to that position.
type Modification struct {
	Index int
	Note  noteschema.Note
}

// Swap is a disjoint transposition between two substrate positions.
type Swap struct {
	A, B int
}

// Transforms is the result of Classify: exactly one of the payload slices
// below is populated, selected by Kind.
type Transforms struct {
	Kind Kind

	Additions     []Addition
	Deletions     []Deletion
	Modifications []Modification
	Reorders      []Swap
}

// Classify derives the single change class between two ordered note
// sequences. It assumes old and new differ by at most one logical change
// class; mixed edits are misclassified, not rejected.
func Classify(old, new []noteschema.Note) Transforms {
	if notesEqual(old, new) {
		return Transforms{Kind: None}
	}
	switch {
	case len(new) > len(old):
		return classifyAdditions(old, new)
	case len(new) < len(old):
		return classifyDeletions(old, new)
	default:
		return classifyEqualLength(old, new)
	}
}

func classifyAdditions(old, new []noteschema.Note) Transforms {
	var adds []Addition
	oldI, newI := 0, 0
	for newI < len(new) {
		if oldI < len(old) && old[oldI].Equal(new[newI]) {
			oldI++
			newI++
			continue
		}
		adds = append(adds, Addition{Index: newI, Note: new[newI]})
		newI++
	}
	return Transforms{Kind: Additions, Additions: adds}
}

func classifyDeletions(old, new []noteschema.Note) Transforms {
	var dels []Deletion
	oldI, newI := 0, 0
	for oldI < len(old) {
		if newI < len(new) && old[oldI].Equal(new[newI]) {
			oldI++
			newI++
			continue
		}
		dels = append(dels, Deletion{Index: oldI})
		oldI++
	}
	// Reversed so application proceeds high-to-low index, remaining valid
	// under sequential removal.
	for i, j := 0, len(dels)-1; i < j; i, j = i+1, j-1 {
		dels[i], dels[j] = dels[j], dels[i]
	}
	return Transforms{Kind: Deletions, Deletions: dels}
}

func classifyEqualLength(old, new []noteschema.Note) Transforms {
	if notesEqual(sortedCopy(old), sortedCopy(new)) {
		return Transforms{Kind: Reorders, Reorders: reorderPairs(old, new)}
	}

	var mods []Modification
	for i := range old {
		if !old[i].Equal(new[i]) {
			mods = append(mods, Modification{Index: i, Note: new[i]})
		}
	}
	return Transforms{Kind: Modifications, Modifications: mods}
}

func reorderPairs(old, new []noteschema.Note) []Swap {
	seen := map[[2]int]struct{}{}
	for i := range old {
		if old[i].Equal(new[i]) {
			continue
		}
		j := indexOf(new, old[i])
		a, b := i, j
		if a > b {
			a, b = b, a
		}
		seen[[2]int{a, b}] = struct{}{}
	}

	pairs := make([]Swap, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, Swap{A: p[0], B: p[1]})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

func indexOf(notes []noteschema.Note, target noteschema.Note) int {
	for i, n := range notes {
		if n.Equal(target) {
			return i
		}
	}
	return -1
}

func notesEqual(a, b []noteschema.Note) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func sortedCopy(notes []noteschema.Note) []noteschema.Note {
	cp := append([]noteschema.Note(nil), notes...)
	sort.Slice(cp, func(i, j int) bool { return noteKey(cp[i]) < noteKey(cp[j]) })
	return cp
}

// noteKey is a total-order key used only to detect a same-multiset
// reordering; it has no bearing on note identity.
func noteKey(n noteschema.Note) string {
	modelName := ""
	if n.Model != nil {
		modelName = n.Model.Name
	}
	return modelName + "\x00" + strings.Join(n.Tags, "\x00") + "\x00" + n.ContentString()
}
