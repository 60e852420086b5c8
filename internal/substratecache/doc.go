// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package substratecache persists a deck entry's resolved substrate to a
// SQLite database between runs, the same CreateStore/OpenStore-shaped
// wrapper around database/sql, backed by modernc.org/sqlite. It is never a
// source of truth for identity: the resolve command always walks the full
// history and only writes the result here; nothing in this repository
// reads the cache back to skip that walk.
package substratecache
