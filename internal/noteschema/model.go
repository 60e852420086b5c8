// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package noteschema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maloquacious/semver"
)

// NoteModel is a schema declaring named fields, templates, an optional
// default field configuration, a style sheet, optional LaTeX pre/post
// wrappers, an optional sort field, model-level tags, and a schema version.
// Field names within a model are unique. A NoteModel is immutable for the
// duration of a parse.
type NoteModel struct {
	Name string

	SchemaVersion semver.Version

	Fields    []Field
	Templates []Template

	Defaults *Defaults

	CSS string

	LatexPre  string
	LatexPost string

	SortField string
	Tags      []string
}

// FieldNames returns the model's field names in declaration order.
func (m *NoteModel) FieldNames() []string {
	names := make([]string, len(m.Fields))
	for i, f := range m.Fields {
		names[i] = f.Name
	}
	return names
}

// HasField reports whether name is a declared field of the model.
func (m *NoteModel) HasField(name string) bool {
	for _, f := range m.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Field is a single field declared by a NoteModel.
type Field struct {
	Name             string
	Sticky           bool
	AssociatedMedia  []string
}

// Template is a front/back/browser template triple for a NoteModel
//.
type Template struct {
	Name                   string
	Order                  int
	QuestionFormat         string
	AnswerFormat           string
	BrowserQuestionFormat  string
	BrowserAnswerFormat    string
}

// Defaults holds a NoteModel's default field presentation.
type Defaults struct {
	Font string
	Size uint32
	RTL  bool
}

// ParseSchemaVersion parses a "major.minor.patch" string into a
// semver.Version. It is the only place this package depends on the exact
// shape of a version string.
func ParseSchemaVersion(s string) (semver.Version, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return semver.Version{}, fmt.Errorf("schema_version %q: want major.minor.patch", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return semver.Version{}, fmt.Errorf("schema_version %q: bad major: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return semver.Version{}, fmt.Errorf("schema_version %q: bad minor: %w", s, err)
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return semver.Version{}, fmt.Errorf("schema_version %q: bad patch: %w", s, err)
	}
	return semver.Version{Major: major, Minor: minor, Patch: patch}, nil
}
