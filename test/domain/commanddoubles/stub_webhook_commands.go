//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// StubInstallCommand is a stub implementation of commands.Install.
type StubInstallCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.Webhook
	LastSettings     *entities.Settings
	LastOpts         commands.WebhookOptions
}

var _ commands.Install = (*StubInstallCommand)(nil)

func (s *StubInstallCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.WebhookOptions,
) (entities.Webhook, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubUninstallCommand is a stub implementation of commands.Uninstall.
type StubUninstallCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.WebhookOptions
}

var _ commands.Uninstall = (*StubUninstallCommand)(nil)

func (s *StubUninstallCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.WebhookOptions,
) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubListWebhooksCommand is a stub implementation of commands.ListWebhooks.
type StubListWebhooksCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           []entities.Webhook
	LastOpts         commands.WebhookOptions
}

var _ commands.ListWebhooks = (*StubListWebhooksCommand)(nil)

func (s *StubListWebhooksCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.WebhookOptions,
) ([]entities.Webhook, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
