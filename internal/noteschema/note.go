// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package noteschema

import "github.com/google/uuid"

// Cloze is a hidden span within a field content with an optional hint. ID
// is assigned by enumeration within a note, not at parse time; it is left
// at 0 by the parser.
type Cloze struct {
	ID     uint32
	Answer string
	Hint   *string
}

// Equal compares two clozes structurally: answer, ID and hint. This is the
// comparison Note.Equal uses; the content_string projection instead looks
// at the answer alone (see TextElement.Projection).
func (c Cloze) Equal(o Cloze) bool {
	if c.Answer != o.Answer || c.ID != o.ID {
		return false
	}
	switch {
	case c.Hint == nil && o.Hint == nil:
		return true
	case c.Hint == nil || o.Hint == nil:
		return false
	default:
		return *c.Hint == *o.Hint
	}
}

// TextElementKind discriminates the tagged TextElement variant.
type TextElementKind int

const (
	TextKind TextElementKind = iota
	ClozeKind
)

// TextElement is the tagged variant Text(string) | Cloze{...}. Within a
// field's content, adjacent Text elements are coalesced by the parser; a
// Cloze always separates text runs.
type TextElement struct {
	Kind  TextElementKind
	Text  string
	Cloze Cloze
}

// NewText constructs a Text text element.
func NewText(s string) TextElement { return TextElement{Kind: TextKind, Text: s} }

// NewCloze constructs a Cloze text element.
func NewCloze(id uint32, answer string, hint *string) TextElement {
	return TextElement{Kind: ClozeKind, Cloze: Cloze{ID: id, Answer: answer, Hint: hint}}
}

// Equal compares two text elements structurally.
func (e TextElement) Equal(o TextElement) bool {
	if e.Kind != o.Kind {
		return false
	}
	if e.Kind == TextKind {
		return e.Text == o.Text
	}
	return e.Cloze.Equal(o.Cloze)
}

// Projection is the textual projection used by content_string: Text(s)
// projects to s, Cloze{answer,...} projects to answer. It is deliberately
// insensitive to the cloze id and hint.
func (e TextElement) Projection() string {
	if e.Kind == TextKind {
		return e.Text
	}
	return e.Cloze.Answer
}

// NoteField is a single named field of a Note. Name is always a canonical
// model field name after alias resolution. Content never
// contains two consecutive Text elements.
type NoteField struct {
	Name    string
	Content []TextElement
}

// Equal compares two fields structurally.
func (f NoteField) Equal(o NoteField) bool {
	if f.Name != o.Name || len(f.Content) != len(o.Content) {
		return false
	}
	for i := range f.Content {
		if !f.Content[i].Equal(o.Content[i]) {
			return false
		}
	}
	return true
}

// Note is one flashcard: a model reference, an ordered list of tags, and an
// ordered list of fields. Two notes compare equal iff the
// tuple (model identity, tags, fields in order) is equal. Notes are
// immutable once parsed.
type Note struct {
	Model  *NoteModel
	Tags   []string
	Fields []NoteField
}

// Equal compares two notes by value: model identity (same *NoteModel
// pointer — models are loaded once per deck and referenced by every
// parsed note), tags in order, and fields in order.
func (n Note) Equal(o Note) bool {
	if n.Model != o.Model {
		return false
	}
	if len(n.Tags) != len(o.Tags) {
		return false
	}
	for i := range n.Tags {
		if n.Tags[i] != o.Tags[i] {
			return false
		}
	}
	if len(n.Fields) != len(o.Fields) {
		return false
	}
	for i := range n.Fields {
		if !n.Fields[i].Equal(o.Fields[i]) {
			return false
		}
	}
	return true
}

// ContentString is the content_string(note) projection: the byte
// concatenation of, for each field in order, the field's name
// followed immediately by the NUL-separated concatenation of its elements'
// textual projections. It is insensitive to tags and to cloze id/hint so
// that small cosmetic edits do not perturb a note's identity.
func (n Note) ContentString() string {
	var out []byte
	for _, field := range n.Fields {
		out = append(out, field.Name...)
		for i, elem := range field.Content {
			if i > 0 {
				out = append(out, 0)
			}
			out = append(out, elem.Projection()...)
		}
	}
	return string(out)
}

// Identified wraps a value with a stable 128-bit identifier.
// An Identified[Note]'s ID is re-issued only when the resolver treats the
// note as a brand-new addition; modifications preserve it.
type Identified[T any] struct {
	ID    uuid.UUID
	Inner T
}
