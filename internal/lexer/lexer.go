// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package lexer

import "unicode/utf8"

// isDelimiter reports whether r is one of the structural characters that
// bound a Text run.
func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ':', '=', '[', ']', '{', '}', ',', '|':
		return true
	default:
		return false
	}
}

// Lex scans src and returns its complete token stream. Lexing never fails:
// unrecognized bytes become Error tokens. The parser raises no diagnostic
// for them: an Error token contributes no text, and a line that starts
// with one is skipped.
func Lex(src string) []Token {
	var tokens []Token
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		start := i

		switch {
		case r == utf8.RuneError && size <= 1:
			tokens = append(tokens, Token{Kind: Error, Span: Span{start, start + 1}})
			i++

		case r == '\n':
			tokens = append(tokens, Token{Kind: Newline, Span: Span{start, start + 1}})
			i += size

		case r == '=':
			tokens = append(tokens, Token{Kind: Eq, Span: Span{start, start + 1}})
			i += size

		case r == ':':
			tokens = append(tokens, Token{Kind: Colon, Span: Span{start, start + 1}})
			i += size

		case r == '[':
			tokens = append(tokens, Token{Kind: LBracket, Span: Span{start, start + 1}})
			i += size

		case r == ']':
			tokens = append(tokens, Token{Kind: RBracket, Span: Span{start, start + 1}})
			i += size

		case r == '{':
			tokens = append(tokens, Token{Kind: LBrace, Span: Span{start, start + 1}})
			i += size

		case r == '}':
			tokens = append(tokens, Token{Kind: RBrace, Span: Span{start, start + 1}})
			i += size

		case r == '|':
			tokens = append(tokens, Token{Kind: Pipe, Span: Span{start, start + 1}})
			i += size

		case r == ',':
			tokens = append(tokens, Token{Kind: Comma, Span: Span{start, start + 1}})
			i += size

		case r == ' ' || r == '\t':
			end := i + size
			for end < len(src) {
				r2, size2 := utf8.DecodeRuneInString(src[end:])
				if r2 != ' ' && r2 != '\t' {
					break
				}
				end += size2
			}
			tokens = append(tokens, Token{Kind: Whitespace, Span: Span{start, end}, Text: src[start:end]})
			i = end

		case r == '/' && i+1 < len(src) && src[i+1] == '/':
			end := i
			for end < len(src) && src[end] != '\n' {
				end++
			}
			tokens = append(tokens, Token{Kind: Comment, Span: Span{start, end}, Text: src[start:end]})
			i = end

		default:
			end := i
			for end < len(src) {
				r2, size2 := utf8.DecodeRuneInString(src[end:])
				if isDelimiter(r2) || (r2 == utf8.RuneError && size2 <= 1) {
					break
				}
				end += size2
			}
			text := src[start:end]
			kind := Text
			switch text {
			case "alias":
				kind = KwAlias
			case "to":
				kind = KwTo
			}
			tokens = append(tokens, Token{Kind: kind, Span: Span{start, end}, Text: text})
			i = end
		}
	}
	return tokens
}
