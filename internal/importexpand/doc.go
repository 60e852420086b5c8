// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package importexpand inlines `import <relative-path>` directives into a
// single expanded text, recursively and with cycle detection.
// It knows nothing about the lexer or parser; it operates purely on lines of
// text and a caller-supplied Reader that resolves and reads the imported
// content, so the same code works whether that content comes from a working
// tree or from a historical VCS blob.
package importexpand
