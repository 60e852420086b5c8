// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package identity derives the two deterministic name-based UUIDs that
// anchor a deck's note identifiers: a per-file host_uuid from the first
// observed revision's author and commit time, and a per-note note_uuid
// content-addressed within that namespace.
package identity
