package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// UninstallController handles the "uninstall" subcommand.
type UninstallController struct {
	command commands.Uninstall
}

// NewUninstallController creates a new UninstallController.
func NewUninstallController(command commands.Uninstall) *UninstallController {
	return &UninstallController{command: command}
}

// GetBind returns the Cobra command metadata for the uninstall controller.
func (it *UninstallController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "uninstall",
		Short: "Remove the webhook from a repository",
		Long: `Delete the webhook targeting --url from the repository.
An unknown webhook is reported but is not an error.`,
	}
}

// Execute unregisters the webhook.
func (it *UninstallController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	opts, err := parseWebhookFlags(cmd.Flags())
	if err != nil {
		return err
	}

	if err = it.command.Execute(context.Background(), settings, opts); err != nil {
		logger.Errorf("Webhook removal failed: %v", err)
		return err
	}
	return nil
}

// AddFlags adds the uninstall-specific flags to the given Cobra command.
func (it *UninstallController) AddFlags(cmd *cobra.Command) {
	addWebhookFlags(cmd, true)
}
