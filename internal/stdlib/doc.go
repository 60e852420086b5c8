// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package stdlib provides small filesystem existence checks for the
// packages that sit outside the core; deck discovery is the one that uses
// them. It has no knowledge of decks, models, or notes.
package stdlib
