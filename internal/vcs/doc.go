// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package vcs declares the abstract interface the core consumes to walk a
// file's version-control history and read blob bytes, without depending
// on any concrete version-control implementation. A conforming adapter
// over any content-addressed store may stand in; package vcsgit provides
// one backed by the system git binary.
package vcs
