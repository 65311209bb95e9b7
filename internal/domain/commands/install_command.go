package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
)

// Install registers the bridge URL as a push webhook, at most once.
type Install interface {
	Execute(ctx context.Context, settings *entities.Settings, opts WebhookOptions) (entities.Webhook, error)
}

// InstallCommand registers webhooks idempotently.
type InstallCommand struct {
	hosts *infraRepos.HostingRegistry
}

// NewInstallCommand creates a new InstallCommand.
func NewInstallCommand(hosts *infraRepos.HostingRegistry) *InstallCommand {
	return &InstallCommand{hosts: hosts}
}

// Execute returns the existing hook targeting opts.URL, or creates one.
func (it *InstallCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts WebhookOptions,
) (entities.Webhook, error) {
	client, err := it.hosts.Get(opts.Backend, settings.GitHubAPIURL, opts.Credentials)
	if err != nil {
		return entities.Webhook{}, err
	}
	return tryRegister(ctx, client, opts.Repository, opts.URL)
}

func tryRegister(
	ctx context.Context,
	client repositories.WebhookRepository,
	repo entities.RepositoryPath,
	url string,
) (entities.Webhook, error) {
	existing, err := findWebhook(ctx, client, repo, url)
	if err != nil {
		return entities.Webhook{}, err
	}
	if existing != nil {
		logger.WithFields(logger.Fields{
			"repository": repo.FullName(),
			"id":         existing.ID,
			"url":        url,
		}).Warn("Webhook already registered")
		return *existing, nil
	}

	created, err := client.Create(ctx, repo.Owner, repo.Name, url)
	if err != nil {
		return entities.Webhook{}, err
	}

	logger.WithFields(logger.Fields{
		"repository": repo.FullName(),
		"id":         created.ID,
		"url":        url,
	}).Info("New webhook installed")
	return created, nil
}

// findWebhook returns the first hook of repo targeting url, or nil.
func findWebhook(
	ctx context.Context,
	client repositories.WebhookRepository,
	repo entities.RepositoryPath,
	url string,
) (*entities.Webhook, error) {
	webhooks, err := client.List(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, err
	}
	for i := range webhooks {
		if webhooks[i].URL == url {
			return &webhooks[i], nil
		}
	}
	return nil, nil //nolint:nilnil // absence is not an error
}
