// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/philocalyst/anki/internal/deck"
	"github.com/philocalyst/anki/internal/deckdiscovery"
	"github.com/philocalyst/anki/internal/modelconfig"
	"github.com/philocalyst/anki/internal/substratecache"
	"github.com/philocalyst/anki/internal/vcsgit"
)

var argsResolve struct {
	repo string
	deck string
}

var cmdResolve = &cobra.Command{
	Use:   "resolve",
	Short: "resolve a deck's identity-stable note history",
	Long:  `Walk a deck's git history and assign every note a stable identifier.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runResolve(cmd.Context()); err != nil {
			log.Fatalf("error: %v\n", err)
		}
	},
}

func runResolve(ctx context.Context) error {
	deckPath := filepath.Join(argsResolve.repo, argsResolve.deck+".deck")

	models, err := deckdiscovery.FindModels(deckPath)
	if err != nil {
		return fmt.Errorf("find models: %w", err)
	}
	noteModels, err := modelconfig.LoadAll(models)
	if err != nil {
		return fmt.Errorf("load models: %w", err)
	}

	entryPath, err := deckdiscovery.CanonicalEntry(deckPath)
	if err != nil {
		return fmt.Errorf("canonical entry: %w", err)
	}
	relEntry, err := filepath.Rel(argsResolve.repo, entryPath)
	if err != nil {
		return fmt.Errorf("relativize entry path: %w", err)
	}

	var cache *substratecache.Store
	if !argsRoot.noCache {
		cache, err = substratecache.Open(argsRoot.cachePath)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer cache.Close()
	}

	history := vcsgit.Open(argsResolve.repo)
	result, err := deck.Resolve(ctx, history, noteModels, relEntry)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", relEntry, err)
	}

	if cache != nil {
		if err := cache.SaveSubstrate(ctx, argsResolve.deck, relEntry, result.HostUUID, result.Substrate); err != nil {
			return fmt.Errorf("save cache: %w", err)
		}
	}

	fmt.Printf("host: %s\n", result.HostUUID)
	fmt.Printf("notes: %s\n", humanize.Comma(int64(len(result.Substrate))))
	for _, entry := range result.Substrate {
		fmt.Printf("  %s\n", entry.ID)
	}
	if len(result.Diagnostics) > 0 {
		fmt.Printf("diagnostics: %s\n", humanize.Comma(int64(len(result.Diagnostics))))
		for _, d := range result.Diagnostics {
			fmt.Printf("  %s: %s\n", d.Kind, d.Message)
		}
	}
	return nil
}
