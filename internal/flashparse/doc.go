// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package flashparse turns a lexer token stream into validated Notes,
// checked against an immutable list of available NoteModel schemas, plus
// zero or more diagnostics carrying source spans. Parsing is a single
// stateful fold over the input's lines; a malformed line is skipped and
// parsing continues so one bad note never discards the rest of a file.
package flashparse
