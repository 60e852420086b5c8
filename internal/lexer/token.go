// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package lexer

import "fmt"

// Kind enumerates the token classes produced by the lexer.
type Kind int

const (
	Eq Kind = iota
	Colon
	LBracket
	RBracket
	LBrace
	RBrace
	Pipe
	Comma
	KwAlias
	KwTo
	Newline
	Whitespace
	Text
	Comment
	Error
)

func (k Kind) String() string {
	switch k {
	case Eq:
		return "Eq"
	case Colon:
		return "Colon"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case Pipe:
		return "Pipe"
	case Comma:
		return "Comma"
	case KwAlias:
		return "KwAlias"
	case KwTo:
		return "KwTo"
	case Newline:
		return "Newline"
	case Whitespace:
		return "Whitespace"
	case Text:
		return "Text"
	case Comment:
		return "Comment"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Token is a single lexed token: a class, its source span, and — for the
// classes that carry text (Whitespace, Text, Comment, KwAlias, KwTo) — its
// literal text.
type Token struct {
	Kind Kind
	Span Span
	Text string
}
