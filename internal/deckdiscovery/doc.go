// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package deckdiscovery locates deck directories and the model and note
// files within them. It is one of the external collaborators the core is
// deliberately oblivious to: the orchestrator is handed a canonical entry
// path and a model list, not a directory to walk itself.
package deckdiscovery
