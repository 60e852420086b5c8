// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package cerrs

import "fmt"

// ModelNotFoundError reports that a deck does not have a model by the given
// name loaded.
type ModelNotFoundError struct {
	Name string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %q not found", e.Name)
}

func (e *ModelNotFoundError) Unwrap() error { return ErrModelNotFound }

// ErrModelNotFound is the sentinel wrapped by ModelNotFoundError so callers
// can use errors.Is without inspecting the model name.
const ErrModelNotFound = Error("model not found")

// InvalidUtf8Error reports that a blob's bytes did not decode as UTF-8.
type InvalidUtf8Error struct {
	Path string
}

func (e *InvalidUtf8Error) Error() string {
	return fmt.Sprintf("%s: invalid utf-8", e.Path)
}

func (e *InvalidUtf8Error) Unwrap() error { return ErrInvalidUtf8 }

// ErrInvalidUtf8 is the sentinel wrapped by InvalidUtf8Error.
const ErrInvalidUtf8 = Error("invalid utf-8")

// CircularImportError reports an import cycle detected during expansion.
type CircularImportError struct {
	Path string
}

func (e *CircularImportError) Error() string {
	return fmt.Sprintf("circular import: %s", e.Path)
}

func (e *CircularImportError) Unwrap() error { return ErrCircularImport }

// ImportUnreadableError reports that an imported file could not be read.
type ImportUnreadableError struct {
	Path  string
	Cause error
}

func (e *ImportUnreadableError) Error() string {
	return fmt.Sprintf("import %s: unreadable: %v", e.Path, e.Cause)
}

func (e *ImportUnreadableError) Unwrap() error { return ErrImportUnreadable }

// ImportPathResolutionError reports that an import's path could not be
// resolved relative to its importing file.
type ImportPathResolutionError struct {
	Path  string
	Cause error
}

func (e *ImportPathResolutionError) Error() string {
	return fmt.Sprintf("import %s: cannot resolve: %v", e.Path, e.Cause)
}

func (e *ImportPathResolutionError) Unwrap() error { return ErrImportPathResolution }

// TomlError wraps a TOML decoding failure.
type TomlError struct {
	Cause error
}

func (e *TomlError) Error() string { return fmt.Sprintf("toml: %v", e.Cause) }

func (e *TomlError) Unwrap() error { return e.Cause }

// VcsFailureError wraps a failure from the VCS façade.
type VcsFailureError struct {
	Cause error
}

func (e *VcsFailureError) Error() string { return fmt.Sprintf("vcs: %v", e.Cause) }

func (e *VcsFailureError) Unwrap() error { return e.Cause }

// ModelConfigNotFoundError reports that a model directory has no
// config.toml.
type ModelConfigNotFoundError struct {
	Path string
}

func (e *ModelConfigNotFoundError) Error() string {
	return fmt.Sprintf("%s: model config not found", e.Path)
}

func (e *ModelConfigNotFoundError) Unwrap() error { return ErrModelConfigNotFound }
