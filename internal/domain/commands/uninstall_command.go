package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
)

// Uninstall removes the bridge webhook; removing an absent hook succeeds.
type Uninstall interface {
	Execute(ctx context.Context, settings *entities.Settings, opts WebhookOptions) error
}

// UninstallCommand unregisters webhooks.
type UninstallCommand struct {
	hosts *infraRepos.HostingRegistry
}

// NewUninstallCommand creates a new UninstallCommand.
func NewUninstallCommand(hosts *infraRepos.HostingRegistry) *UninstallCommand {
	return &UninstallCommand{hosts: hosts}
}

// Execute deletes the hook targeting opts.URL when there is one.
func (it *UninstallCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts WebhookOptions,
) error {
	client, err := it.hosts.Get(opts.Backend, settings.GitHubAPIURL, opts.Credentials)
	if err != nil {
		return err
	}
	return tryUnregister(ctx, client, opts.Repository, opts.URL)
}

func tryUnregister(
	ctx context.Context,
	client repositories.WebhookRepository,
	repo entities.RepositoryPath,
	url string,
) error {
	existing, err := findWebhook(ctx, client, repo, url)
	if err != nil {
		return err
	}

	fields := logger.Fields{"repository": repo.FullName(), "url": url}
	if existing == nil {
		logger.WithFields(fields).Error("Unknown webhook")
		return nil
	}

	if err = client.Delete(ctx, repo.Owner, repo.Name, existing.ID); err != nil {
		return err
	}

	fields["id"] = existing.ID
	logger.WithFields(fields).Info("Webhook unregistered")
	return nil
}
