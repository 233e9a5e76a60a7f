package commands

import (
	"exr/internal/config"
	"exr/internal/project"
	"exr/internal/tags"
	"exr/internal/ui"

	"github.com/spf13/cobra"
)

// TagsCommand handles the tags command
type TagsCommand struct {
	config    *config.Config
	resolver  *project.Resolver
	extractor *tags.Extractor
	formatter *ui.Formatter
}

// NewTagsCommand creates a new TagsCommand
func NewTagsCommand(
	cfg *config.Config,
	resolver *project.Resolver,
	extractor *tags.Extractor,
	formatter *ui.Formatter,
) *TagsCommand {
	return &TagsCommand{
		config:    cfg,
		resolver:  resolver,
		extractor: extractor,
		formatter: formatter,
	}
}

// Execute runs the command
func (tc *TagsCommand) Execute(cmd *cobra.Command, args []string) error {
	projectDir, err := tc.resolver.Resolve(args[0])
	if err != nil {
		return err
	}

	testSource, err := project.FindTestSource(projectDir)
	if err != nil {
		return err
	}

	tagList, err := tc.extractor.ExtractFile(testSource)
	if err != nil {
		return err
	}

	tc.formatter.PrintTagList(project.Name(projectDir), tagList)
	return nil
}
