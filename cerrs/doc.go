// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes the error taxonomy for the deck engine: parse diagnostics,
// import expansion failures, and VCS/orchestration failures. The Error type
// supports comparison via errors.Is().
package cerrs
