package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// SynchronizeController handles the "synchronize" subcommand.
type SynchronizeController struct {
	command commands.Synchronize
}

// NewSynchronizeController creates a new SynchronizeController.
func NewSynchronizeController(command commands.Synchronize) *SynchronizeController {
	return &SynchronizeController{command: command}
}

// GetBind returns the Cobra command metadata for the synchronize controller.
func (it *SynchronizeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "synchronize",
		Short: "Clone or update a repository's working copy",
		Long: `Clone the repository when its working copy is missing, otherwise
fetch, checkout the reference and pull.

The reference must be refs/branches/<name> or refs/tags/<name>.`,
	}
}

// Execute runs a single synchronization.
func (it *SynchronizeController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	backend, repository, err := parseRepositoryFlags(cmd.Flags())
	if err != nil {
		return err
	}

	rawRef, _ := cmd.Flags().GetString(flagRef)
	reference, err := entities.ParseReference(rawRef)
	if err != nil {
		return err
	}

	if err = it.command.Execute(context.Background(), settings, commands.SynchronizeOptions{
		Backend:    backend,
		Repository: repository,
		Reference:  reference,
	}); err != nil {
		logger.Errorf("Synchronization failed: %v", err)
		return err
	}

	logger.Infof("%s is at %s %s", repository.FullName(), reference.Kind(), reference.Name())
	return nil
}

// AddFlags adds the synchronize-specific flags to the given Cobra command.
func (it *SynchronizeController) AddFlags(cmd *cobra.Command) {
	addRepositoryFlags(cmd)
	cmd.Flags().String(flagRef, "", "Git reference (e.g. refs/branches/my-branch or refs/tags/my-tag)")
	_ = cmd.MarkFlagRequired(flagRef)
}
