package commands

import (
	"exr/internal/config"
	"exr/internal/project"
	"exr/internal/storage"
	"exr/internal/ui"

	"github.com/spf13/cobra"
)

// FailsCommand handles the fails command
type FailsCommand struct {
	config   *config.Config
	resolver *project.Resolver
	storage  storage.Storage
	viewer   *ui.Viewer
}

// NewFailsCommand creates a new FailsCommand
func NewFailsCommand(cfg *config.Config, resolver *project.Resolver, st storage.Storage, viewer *ui.Viewer) *FailsCommand {
	return &FailsCommand{
		config:   cfg,
		resolver: resolver,
		storage:  st,
		viewer:   viewer,
	}
}

// Execute runs the command
func (fc *FailsCommand) Execute(cmd *cobra.Command, args []string) error {
	projectDir, err := fc.resolver.Resolve(args[0])
	if err != nil {
		return err
	}

	doc, err := fc.storage.Load(projectDir)
	if err != nil {
		return err
	}

	return fc.viewer.View(doc)
}
