package main

import (
	"fmt"
	"os"

	"exr/internal/cli"
	"exr/internal/cli/commands"
	"exr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "exr",
		Short:   "Progressive Exercism C++ test runner",
		Long:    `Build, test and submit Exercism C++ exercises. Tests run progressively by task tag for incremental fail-fast feedback without recompiling between runs.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
