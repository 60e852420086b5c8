// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package modelconfig loads a NoteModel from a model directory's
// config.toml plus its auxiliary assets: a style sheet, optional LaTeX
// wrappers, and per-template Handlebars files named by appending the side
// to the template name (Cardfront.hbs, Cardback.hbs, Cardfront-browser.hbs,
// Cardback-browser.hbs for a template named Card). It is an external
// collaborator the core never imports.
package modelconfig
