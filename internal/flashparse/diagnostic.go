// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package flashparse

import (
	"fmt"

	"github.com/philocalyst/anki/internal/lexer"
)

// DiagnosticKind classifies a semantic parse failure.
type DiagnosticKind int

const (
	UnknownModel DiagnosticKind = iota
	UnknownField
	InvalidAliasTarget
	ModelNotSpecified
	DuplicateField
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnknownModel:
		return "UnknownModel"
	case UnknownField:
		return "UnknownField"
	case InvalidAliasTarget:
		return "InvalidAliasTarget"
	case ModelNotSpecified:
		return "ModelNotSpecified"
	case DuplicateField:
		return "DuplicateField"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a single semantic complaint raised while building notes.
// Parsing never stops at the first diagnostic; it recovers at the next
// line and continues.
type Diagnostic struct {
	Kind      DiagnosticKind
	Span      lexer.Span
	Message   string
	Available []string
}
