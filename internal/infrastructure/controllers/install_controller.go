package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// InstallController handles the "install" subcommand.
type InstallController struct {
	command commands.Install
}

// NewInstallController creates a new InstallController.
func NewInstallController(command commands.Install) *InstallController {
	return &InstallController{command: command}
}

// GetBind returns the Cobra command metadata for the install controller.
func (it *InstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install",
		Short: "Register the webhook on a repository",
		Long: `Register a JSON push webhook targeting --url on the repository.
Nothing is created when a webhook with the same URL already exists.`,
	}
}

// Execute registers the webhook and prints its id.
func (it *InstallController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	opts, err := parseWebhookFlags(cmd.Flags())
	if err != nil {
		return err
	}

	webhook, err := it.command.Execute(context.Background(), settings, opts)
	if err != nil {
		logger.Errorf("Webhook installation failed: %v", err)
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), webhook.ID)
	return nil
}

// AddFlags adds the install-specific flags to the given Cobra command.
func (it *InstallController) AddFlags(cmd *cobra.Command) {
	addWebhookFlags(cmd, true)
}
