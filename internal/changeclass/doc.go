// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package changeclass classifies the diff between two ordered Note
// sequences into exactly one of None, Additions, Deletions, Modifications,
// or Reorders. It assumes a single-purpose-commit workflow: a historical
// step mixing categories produces an undefined but total classification,
// never a crash.
package changeclass
