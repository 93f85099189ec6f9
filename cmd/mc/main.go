// Package main is the entry point for the mission-control CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sanirudh17/mission-control/internal/app"
	"github.com/sanirudh17/mission-control/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// newRootCommand is replaced in tests.
var newRootCommand = cli.NewRootCommand

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	dataDir, err := app.ResolveDataDir(cli.DataDirFromArgs(args))
	if err != nil {
		return err
	}

	// Create dependency injection container
	container, err := app.New(dataDir)
	if err != nil {
		initErr := fmt.Errorf("failed to initialize: %w", err)
		// A broken config or store must not block help or the config template
		if canRunWithoutStore(args) {
			return runWithoutContainer(args)
		}
		return initErr
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := newRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// runWithoutContainer executes commands that never touch the store.
func runWithoutContainer(args []string) error {
	rootCmd := newRootCommand(nil, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func canRunWithoutStore(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	if len(args) > 1 && args[0] == "config" && args[1] == "template" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
