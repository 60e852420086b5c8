// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package vcsgit implements vcs.History by shelling out to the system git
// binary, the same exec.CommandContext style as a plain git wrapper. It is
// the one concrete adapter the deck orchestrator wires in by default; the
// core itself never imports this package.
package vcsgit
