package commands

import (
	"context"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	infraRepos "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
)

// ListWebhooks returns the hooks registered on a repository.
type ListWebhooks interface {
	Execute(ctx context.Context, settings *entities.Settings, opts WebhookOptions) ([]entities.Webhook, error)
}

// ListWebhooksCommand lists webhooks.
type ListWebhooksCommand struct {
	hosts *infraRepos.HostingRegistry
}

// NewListWebhooksCommand creates a new ListWebhooksCommand.
func NewListWebhooksCommand(hosts *infraRepos.HostingRegistry) *ListWebhooksCommand {
	return &ListWebhooksCommand{hosts: hosts}
}

func (it *ListWebhooksCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts WebhookOptions,
) ([]entities.Webhook, error) {
	client, err := it.hosts.Get(opts.Backend, settings.GitHubAPIURL, opts.Credentials)
	if err != nil {
		return nil, err
	}
	return client.List(ctx, opts.Repository.Owner, opts.Repository.Name)
}
