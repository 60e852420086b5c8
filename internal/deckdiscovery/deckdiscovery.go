// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package deckdiscovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/philocalyst/anki/cerrs"
	"github.com/philocalyst/anki/internal/stdlib"
)

const (
	deckSuffix     = ".deck"
	modelSuffix    = ".model"
	flashSuffix    = ".flash"
	canonicalEntry = "index.flash"
	configFile     = "config.toml"
)

// Deck_t is one discovered deck directory.
type Deck_t struct {
	Path string // full path to the *.deck directory
	Name string // deck name, without the .deck suffix
}

// Model_t is one discovered note-model directory within a deck.
type Model_t struct {
	Path   string // full path to the *.model directory
	Name   string // model name, without the .model suffix
	Config string // path to the model's config.toml
}

// FlashFile_t is one discovered .flash note file within a deck.
type FlashFile_t struct {
	Path      string // full path to the .flash file
	Name      string // file name, with the .flash suffix
	Canonical bool   // true only for index.flash
}

// FindDecks returns every *.deck directory directly under root, sorted by
// name.
func FindDecks(root string) ([]*Deck_t, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var list []*Deck_t
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), deckSuffix) {
			continue
		}
		list = append(list, &Deck_t{
			Path: filepath.Join(root, entry.Name()),
			Name: strings.TrimSuffix(entry.Name(), deckSuffix),
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// FindModels returns every *.model directory within a deck, sorted by
// name. Each model directory must contain a config.toml or FindModels
// fails with cerrs.ModelConfigNotFoundError.
func FindModels(deckPath string) ([]*Model_t, error) {
	entries, err := os.ReadDir(deckPath)
	if err != nil {
		return nil, err
	}
	var list []*Model_t
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), modelSuffix) {
			continue
		}
		modelPath := filepath.Join(deckPath, entry.Name())
		configPath := filepath.Join(modelPath, configFile)
		ok, err := stdlib.IsFileExists(configPath)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &cerrs.ModelConfigNotFoundError{Path: configPath}
		}
		list = append(list, &Model_t{
			Path:   modelPath,
			Name:   strings.TrimSuffix(entry.Name(), modelSuffix),
			Config: configPath,
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// FindFlashFiles returns every *.flash file directly within a deck, with
// the canonical entry (index.flash) sorted first and the remainder
// lexically ordered.
func FindFlashFiles(deckPath string) ([]*FlashFile_t, error) {
	entries, err := os.ReadDir(deckPath)
	if err != nil {
		return nil, err
	}
	var list []*FlashFile_t
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), flashSuffix) {
			continue
		}
		list = append(list, &FlashFile_t{
			Path:      filepath.Join(deckPath, entry.Name()),
			Name:      entry.Name(),
			Canonical: entry.Name() == canonicalEntry,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Canonical != list[j].Canonical {
			return list[i].Canonical
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// CanonicalEntry returns a deck's canonical entry file path, failing with
// cerrs.ErrNoDeckFound if index.flash is absent.
func CanonicalEntry(deckPath string) (string, error) {
	p := filepath.Join(deckPath, canonicalEntry)
	ok, err := stdlib.IsFileExists(p)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", cerrs.ErrNoDeckFound
	}
	return p, nil
}
