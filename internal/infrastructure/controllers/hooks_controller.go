package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// HooksController handles the "hooks" subcommand.
type HooksController struct {
	command commands.ListWebhooks
}

// NewHooksController creates a new HooksController.
func NewHooksController(command commands.ListWebhooks) *HooksController {
	return &HooksController{command: command}
}

// GetBind returns the Cobra command metadata for the hooks controller.
func (it *HooksController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "hooks",
		Short: "List the webhooks registered on a repository",
		Long:  `Print one "<id> <url>" line per webhook registered on the repository.`,
	}
}

// Execute lists the webhooks.
func (it *HooksController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	opts, err := parseWebhookFlags(cmd.Flags())
	if err != nil {
		return err
	}

	webhooks, err := it.command.Execute(context.Background(), settings, opts)
	if err != nil {
		logger.Errorf("Listing webhooks failed: %v", err)
		return err
	}

	for _, webhook := range webhooks {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", webhook.ID, webhook.URL)
	}
	return nil
}

// AddFlags adds the hooks-specific flags to the given Cobra command.
func (it *HooksController) AddFlags(cmd *cobra.Command) {
	addWebhookFlags(cmd, false)
}
