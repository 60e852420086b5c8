// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package cerrs implements constant errors.
package cerrs

// Error defines a constant error
type Error string

// Error implements the Errors interface
func (e Error) Error() string { return string(e) }

// Fatal-for-the-run sentinels.
const (
	ErrNoDeckFound         = Error("no deck found")
	ErrFileNotInHistory    = Error("file not in history")
	ErrInvalidEntry        = Error("invalid entry")
	ErrEmptyHistory        = Error("empty history")
	ErrModelConfigNotFound = Error("model config not found")
)

// Fatal-for-the-current-revision sentinels.
const (
	ErrCircularImport       = Error("circular import")
	ErrImportUnreadable     = Error("import unreadable")
	ErrImportPathResolution = Error("import path resolution failed")
)

// Parse diagnostic kind sentinels.
const (
	ErrUnknownModel       = Error("unknown model")
	ErrUnknownField       = Error("unknown field")
	ErrInvalidAliasTarget = Error("invalid alias target")
	ErrModelNotSpecified  = Error("model not specified")
	ErrDuplicateField     = Error("duplicate field")
)

// Miscellaneous.
const (
	ErrDeckExists   = Error("deck already exists")
	ErrInvalidPath  = Error("invalid path")
	ErrNotDirectory = Error("not a directory")
	ErrNotAFile     = Error("not a file")
	ErrMixedChanges = Error("mixed changes")
)
