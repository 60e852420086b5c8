// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package resolver folds a changeclass.Transforms over a substrate — an
// ordered sequence of identity-carrying notes — mutating it in place so
// that the minimum number of identifiers are invalidated across a file's
// edit history.
package resolver
