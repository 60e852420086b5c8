// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package noteschema defines the value types shared by the lexer, parser,
// change classifier, and history resolver: note models, fields, clozes, and
// the identified-note wrapper that carries a note's stable UUID through the
// history fold. Every type here is immutable once constructed; equality is
// defined on value, not identity.
package noteschema
