package commands

import (
	"os"

	"exr/internal/build"
	"exr/internal/cli"
	"exr/internal/config"
	"exr/internal/execution"
	"exr/internal/parser"
	"exr/internal/project"
	"exr/internal/storage"
	"exr/internal/submit"
	"exr/internal/tags"
	"exr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	Tags  *TagsCommand
	Fails *FailsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	resolver := project.NewResolver(cfg)
	extractor := tags.NewExtractor()
	runner := execution.NewExecRunner()
	catch2 := parser.NewCatch2Parser()
	progressive := execution.NewProgressive(cfg, runner, catch2)
	builder := build.NewCMake(cfg, runner)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	submitter := submit.NewSubmitter(cfg, runner, os.Stdin)
	viewer := ui.NewViewer(cfg)

	return &Commands{
		Run:   NewRunCommand(cfg, resolver, extractor, builder, progressive, jsonStorage, formatter, submitter),
		Tags:  NewTagsCommand(cfg, resolver, extractor, formatter),
		Fails: NewFailsCommand(cfg, resolver, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <project>",
		Short: "Build and progressively test an exercise",
		Long:  "Build the exercise, run its tests tag by tag with fail-fast feedback, validate the full suite and optionally submit",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().BoolVarP(&flags.Submit, "submit", "s", false, "Auto-submit to Exercism if all tests pass")
	runCmd.Flags().BoolVar(&flags.ShowSuccess, "show-success", false, "Print the test binary output for passing runs too")
	runCmd.Flags().DurationVar(&flags.TestTimeout, "test-timeout", 0, "Per-run timeout for the test binary (default 30s)")
	runCmd.Flags().DurationVar(&flags.BuildTimeout, "build-timeout", 0, "Timeout for each build step (default 2m)")
	rootCmd.AddCommand(runCmd)

	// Tags command
	tagsCmd := &cobra.Command{
		Use:   "tags <project>",
		Short: "List the task tags of an exercise",
		Long:  "Extract and list the task tags from the exercise's test source in execution order, without building or running anything",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Tags.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	rootCmd.AddCommand(tagsCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:   "fails <project>",
		Short: "View the last run's results interactively",
		Long:  "Display the persisted report of the exercise's last test run in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  c.Fails.Execute,
	}
	rootCmd.AddCommand(failsCmd)
}
