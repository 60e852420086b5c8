// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package deckconfig loads the per-run options for a flashdeck invocation
// from an optional JSON file, the same Default-then-overlay pattern the
// teacher's own config package uses for per-player settings. It has
// nothing to do with note models; see package modelconfig for those.
package deckconfig
