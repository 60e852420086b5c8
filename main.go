// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package main implements the flashdeck application
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/philocalyst/anki/internal/deckconfig"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	globalConfig *deckconfig.RunOptions
)

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}

	const configFileName = "flashdeck.json"
	cfg, err := deckconfig.Load(configFileName)
	if err != nil {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}

	if err := Execute(cfg); err != nil {
		log.Fatal(err)
	}
}

func Execute(cfg *deckconfig.RunOptions) error {
	if cfg == nil {
		globalConfig = deckconfig.Default()
	} else {
		globalConfig = cfg
	}
	initLogging(globalConfig.Logging)

	cmdRoot.PersistentFlags().StringVar(&argsRoot.cachePath, "cache", globalConfig.Cache.Path, "path to the substrate cache database")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.noCache, "no-cache", !globalConfig.Cache.Enabled, "disable the substrate cache")

	cmdRoot.AddCommand(cmdVersion)
	cmdRoot.AddCommand(cmdResolve)
	cmdResolve.Flags().StringVar(&argsResolve.repo, "repo", ".", "path to the git repository containing the deck")
	cmdResolve.Flags().StringVar(&argsResolve.deck, "deck", "", "deck name to resolve (the *.deck directory, without suffix)")
	if err := cmdResolve.MarkFlagRequired("deck"); err != nil {
		log.Fatalf("deck: %v\n", err)
	}

	return cmdRoot.Execute()
}

func initLogging(opts deckconfig.LoggingOptions_t) {
	level := slog.LevelInfo
	switch opts.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if opts.Debug {
		level = slog.LevelDebug
	}
	if opts.Quiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

var argsRoot struct {
	cachePath string
	noCache   bool
}

var cmdRoot = &cobra.Command{
	Use:   "flashdeck",
	Short: "Root command for our application",
	Long:  `Resolve flashcard decks and track note identity across git history.`,
}
