// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package flashparse

import (
	"fmt"
	"strings"

	"github.com/philocalyst/anki/internal/lexer"
	"github.com/philocalyst/anki/internal/noteschema"
)

// builder is the stateful fold that turns a token stream into notes.
type builder struct {
	models       []*noteschema.NoteModel
	currentModel *noteschema.NoteModel
	aliases      map[string]string

	pendingTags   []string
	pendingFields []noteschema.NoteField

	notes []noteschema.Note
	diags []Diagnostic
}

// Parse converts a token stream into notes and diagnostics against models,
// the available schemas for this deck.
func Parse(tokens []lexer.Token, models []*noteschema.NoteModel) ([]noteschema.Note, []Diagnostic) {
	b := &builder{models: models, aliases: map[string]string{}}
	for _, line := range splitLines(tokens) {
		b.line(line)
	}
	b.finalize()
	return b.notes, b.diags
}

// splitLines groups tokens into lines at Newline boundaries: a line ends
// at Newline or end-of-input. Newline tokens themselves are dropped; a
// line with no tokens is a blank line.
func splitLines(tokens []lexer.Token) [][]lexer.Token {
	var lines [][]lexer.Token
	var cur []lexer.Token
	for _, t := range tokens {
		if t.Kind == lexer.Newline {
			lines = append(lines, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func lineSpan(line []lexer.Token) lexer.Span {
	if len(line) == 0 {
		return lexer.Span{}
	}
	return lexer.Span{Start: line[0].Span.Start, End: line[len(line)-1].Span.End}
}

func (b *builder) line(line []lexer.Token) {
	i := 0
	for i < len(line) && line[i].Kind == lexer.Whitespace {
		i++
	}
	if i >= len(line) {
		b.finalize() // blank-line
		return
	}

	switch line[i].Kind {
	case lexer.Comment:
		// discarded, not a finalizing event
	case lexer.Eq:
		b.modelDecl(line, i)
	case lexer.KwAlias:
		b.aliasDecl(line, i)
	case lexer.LBracket:
		b.tagsDecl(line, i)
	case lexer.Text, lexer.KwTo:
		b.fieldDecl(line, i)
	default:
		// malformed item: skip to the next newline, this line simply
		// contributes nothing.
	}
}

func (b *builder) modelDecl(line []lexer.Token, i int) {
	closeIdx := -1
	for j := i + 1; j < len(line); j++ {
		if line[j].Kind == lexer.Eq {
			closeIdx = j
			break
		}
	}
	if closeIdx == -1 {
		return
	}

	var name strings.Builder
	for _, t := range line[i+1 : closeIdx] {
		name.WriteString(tokenLiteral(t))
	}
	resolvedName := strings.TrimSpace(name.String())

	b.finalize()
	b.aliases = map[string]string{}

	model := lookupModel(b.models, resolvedName)
	if model == nil {
		b.diags = append(b.diags, Diagnostic{
			Kind:      UnknownModel,
			Span:      lineSpan(line),
			Message:   fmt.Sprintf("unknown model %q", resolvedName),
			Available: modelNames(b.models),
		})
		b.currentModel = nil
		return
	}
	b.currentModel = model
}

func (b *builder) aliasDecl(line []lexer.Token, i int) {
	j := i + 1
	skipWS := func() {
		for j < len(line) && line[j].Kind == lexer.Whitespace {
			j++
		}
	}

	skipWS()
	if j >= len(line) || !isIdentifier(line[j]) {
		return
	}
	from := tokenLiteral(line[j])
	j++

	skipWS()
	if j >= len(line) || line[j].Kind != lexer.KwTo {
		return
	}
	j++

	skipWS()
	if j >= len(line) || !isIdentifier(line[j]) {
		return
	}
	to := tokenLiteral(line[j])

	if b.currentModel == nil {
		return // alias-decl is only valid while a model is active
	}
	if !b.currentModel.HasField(from) {
		b.diags = append(b.diags, Diagnostic{
			Kind:    InvalidAliasTarget,
			Span:    lineSpan(line),
			Message: fmt.Sprintf("alias target %q is not a field of model %q", from, b.currentModel.Name),
		})
		return
	}
	b.aliases[to] = from
}

func (b *builder) tagsDecl(line []lexer.Token, i int) {
	var tags []string
	var cur strings.Builder
	for j := i + 1; j < len(line) && line[j].Kind != lexer.RBracket; j++ {
		if line[j].Kind == lexer.Comma {
			if tag := strings.TrimSpace(cur.String()); tag != "" {
				tags = append(tags, tag)
			}
			cur.Reset()
			continue
		}
		cur.WriteString(tokenLiteral(line[j]))
	}
	if tag := strings.TrimSpace(cur.String()); tag != "" {
		tags = append(tags, tag)
	}
	b.pendingTags = tags
}

func (b *builder) fieldDecl(line []lexer.Token, i int) {
	name := tokenLiteral(line[i])
	j := i + 1

	for j < len(line) && line[j].Kind == lexer.Whitespace {
		j++
	}
	if j >= len(line) || line[j].Kind != lexer.Colon {
		return
	}
	j++

	for j < len(line) && line[j].Kind == lexer.Whitespace {
		j++
	}
	content := parseContent(line[j:])

	resolved := name
	if canon, ok := b.aliases[name]; ok {
		resolved = canon
	}

	if b.currentModel == nil {
		b.diags = append(b.diags, Diagnostic{
			Kind:    ModelNotSpecified,
			Span:    lineSpan(line),
			Message: fmt.Sprintf("field %q: no model is active", name),
		})
		return
	}
	if !b.currentModel.HasField(resolved) {
		b.diags = append(b.diags, Diagnostic{
			Kind:      UnknownField,
			Span:      lineSpan(line),
			Message:   fmt.Sprintf("field %q: not a field of model %q", resolved, b.currentModel.Name),
			Available: b.currentModel.FieldNames(),
		})
		return
	}
	for _, f := range b.pendingFields {
		if f.Name == resolved {
			b.diags = append(b.diags, Diagnostic{
				Kind:    DuplicateField,
				Span:    lineSpan(line),
				Message: fmt.Sprintf("duplicate field %q", resolved),
			})
			return
		}
	}
	b.pendingFields = append(b.pendingFields, noteschema.NoteField{Name: resolved, Content: content})
}

func (b *builder) finalize() {
	if len(b.pendingFields) > 0 {
		b.notes = append(b.notes, noteschema.Note{
			Model:  b.currentModel,
			Tags:   append([]string(nil), b.pendingTags...),
			Fields: append([]noteschema.NoteField(nil), b.pendingFields...),
		})
	}
	b.pendingFields = nil
	b.pendingTags = nil
}

func isIdentifier(t lexer.Token) bool {
	return t.Kind == lexer.Text || t.Kind == lexer.KwAlias || t.Kind == lexer.KwTo
}

func lookupModel(models []*noteschema.NoteModel, name string) *noteschema.NoteModel {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	return nil
}

func modelNames(models []*noteschema.NoteModel) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}
