// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package flashparse

import (
	"strings"

	"github.com/philocalyst/anki/internal/lexer"
	"github.com/philocalyst/anki/internal/noteschema"
)

// tokenLiteral returns the literal text a token contributes when tokens are
// reassembled into a field's content, a model name, or a tag. Whitespace,
// Text, Comment and the two keyword kinds already carry their text; Error
// contributes nothing; every other kind is a single fixed character.
func tokenLiteral(t lexer.Token) string {
	switch t.Kind {
	case lexer.Whitespace, lexer.Text, lexer.Comment, lexer.KwAlias, lexer.KwTo:
		return t.Text
	case lexer.Eq:
		return "="
	case lexer.Colon:
		return ":"
	case lexer.LBracket:
		return "["
	case lexer.RBracket:
		return "]"
	case lexer.LBrace:
		return "{"
	case lexer.RBrace:
		return "}"
	case lexer.Pipe:
		return "|"
	case lexer.Comma:
		return ","
	case lexer.Newline:
		return "\n"
	default:
		return ""
	}
}

// parseContent parses a field's content tokens into the ordered sequence of
// text and cloze elements. Consecutive non-cloze tokens are coalesced into
// a single Text element as they accumulate, which
// already satisfies the content-coalescing rule without a separate merge
// pass.
func parseContent(tokens []lexer.Token) []noteschema.TextElement {
	var elems []noteschema.TextElement
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			elems = append(elems, noteschema.NewText(buf.String()))
			buf.Reset()
		}
	}

	i := 0
	for i < len(tokens) {
		if tokens[i].Kind != lexer.LBrace {
			buf.WriteString(tokenLiteral(tokens[i]))
			i++
			continue
		}

		flush()
		i++ // consume '{'

		var answer strings.Builder
		for i < len(tokens) && tokens[i].Kind != lexer.Pipe && tokens[i].Kind != lexer.RBrace {
			answer.WriteString(tokenLiteral(tokens[i]))
			i++
		}

		var hint *string
		if i < len(tokens) && tokens[i].Kind == lexer.Pipe {
			i++ // consume '|'
			var h strings.Builder
			for i < len(tokens) && tokens[i].Kind != lexer.RBrace {
				h.WriteString(tokenLiteral(tokens[i]))
				i++
			}
			trimmed := strings.TrimSpace(h.String())
			hint = &trimmed
		}

		if i < len(tokens) && tokens[i].Kind == lexer.RBrace {
			i++ // consume '}'
		}

		elems = append(elems, noteschema.NewCloze(0, strings.TrimSpace(answer.String()), hint))
	}
	flush()

	return elems
}
