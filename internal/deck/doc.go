// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package deck is the orchestrator that binds the lexer, parser, import
// expander, identifier generator, change classifier, and history resolver
// together over a vcs.History. It accepts the note models and the VCS
// façade as injected dependencies so the core stays oblivious to how
// either is produced.
package deck
