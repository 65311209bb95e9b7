package controllers

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/infrastructure/webhook"
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	command commands.Synchronize
}

// NewServeController creates a new ServeController.
func NewServeController(command commands.Synchronize) *ServeController {
	return &ServeController{command: command}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Run the webhook server",
		Long: `Listen for GitHub ping and push deliveries and synchronize the
pushed repository's local working copy to the pushed branch or tag.

Deliveries must come from GitHub's hook agent. When a webhook secret is
configured, the X-Hub-Signature-256 header is verified as well.`,
	}
}

// Execute serves until SIGINT or SIGTERM.
func (it *ServeController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return webhook.NewServer(settings, it.command).Start(ctx)
}
