// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package lexer converts .flash source text into a stream of tokens with
// source spans. It knows nothing about notes, models, or diagnostics — it
// only classifies runs of bytes. The parser package consumes its output.
package lexer
