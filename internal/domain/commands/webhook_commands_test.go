//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	infraRepos "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
	"github.com/rios0rios0/hookrunner/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/hookrunner/test/infrastructure/repositorydoubles"
)

const bridgeURL = "https://bridge.example.com/webhook/github"

func newHostingRegistry(store *doubles.InMemoryWebhookRepository) *infraRepos.HostingRegistry {
	registry := infraRepos.NewHostingRegistry()
	registry.Register(entities.GitHubBackend, store.Factory())
	return registry
}

func widgetsWebhookOptions() commands.WebhookOptions {
	return commands.WebhookOptions{
		Backend:     entities.NewGitHubBackend(),
		Repository:  entities.RepositoryPath{Owner: "acme", Name: "widgets"},
		URL:         bridgeURL,
		Credentials: entities.WebhookCredentials{Username: "octocat", Token: "s3cr3t"},
	}
}

func TestInstallCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should create the webhook when none targets the URL", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.Seed("acme", "widgets", entities.Webhook{ID: 7, URL: "https://other.example.com/hook"})
		cmd := commands.NewInstallCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().WithAPIURL("https://ghe.example.com/api/v3").BuildSettings()

		// when
		webhook, err := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(8), webhook.ID)
		assert.Equal(t, bridgeURL, webhook.URL)
		assert.Len(t, store.Hooks("acme", "widgets"), 2)
		assert.Equal(t, "https://ghe.example.com/api/v3", store.LastAPIURL)
		assert.Equal(t, "octocat", store.LastCredentials.Username)
		assert.Equal(t, "s3cr3t", store.LastCredentials.Token)
	})

	t.Run("should register only once when installed repeatedly", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		cmd := commands.NewInstallCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		first, firstErr := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())
		second, secondErr := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, store.CreateCallCount)
		assert.Len(t, store.Hooks("acme", "widgets"), 1)
	})

	t.Run("should reject backends without a webhook client", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		cmd := commands.NewInstallCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()
		opts := widgetsWebhookOptions()
		opts.Backend = entities.NewGitLabBackend()

		// when
		_, err := cmd.Execute(context.Background(), settings, opts)

		// then
		var unsupported *entities.UnsupportedBackendError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, "gitlab", unsupported.Value)
		assert.Zero(t, store.CreateCallCount)
	})

	t.Run("should not create when listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.ListErr = entities.ErrCouldNotListWebhooks
		cmd := commands.NewInstallCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())

		// then
		require.ErrorIs(t, err, entities.ErrCouldNotListWebhooks)
		assert.Zero(t, store.CreateCallCount)
	})
}

func TestTryRegister(t *testing.T) {
	t.Parallel()

	t.Run("should return the existing hook targeting the URL", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.Seed("acme", "widgets", entities.Webhook{ID: 42, URL: bridgeURL})

		// when
		webhook, err := commands.TryRegister(
			context.Background(), store, entities.RepositoryPath{Owner: "acme", Name: "widgets"}, bridgeURL,
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, int64(42), webhook.ID)
		assert.Zero(t, store.CreateCallCount)
	})

	t.Run("should propagate creation failures", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.CreateErr = entities.ErrCouldNotRegisterWebhook

		// when
		_, err := commands.TryRegister(
			context.Background(), store, entities.RepositoryPath{Owner: "acme", Name: "widgets"}, bridgeURL,
		)

		// then
		require.ErrorIs(t, err, entities.ErrCouldNotRegisterWebhook)
	})
}

func TestUninstallCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should delete the hook targeting the URL", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.Seed("acme", "widgets", entities.Webhook{ID: 3, URL: "https://other.example.com/hook"})
		store.Seed("acme", "widgets", entities.Webhook{ID: 4, URL: bridgeURL})
		cmd := commands.NewUninstallCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Webhook{{ID: 3, URL: "https://other.example.com/hook"}}, store.Hooks("acme", "widgets"))
	})

	t.Run("should only touch the addressed repository", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.Seed("acme", "widgets", entities.Webhook{ID: 1, URL: bridgeURL})
		store.Seed("widgets", "acme", entities.Webhook{ID: 2, URL: bridgeURL})
		cmd := commands.NewUninstallCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())

		// then
		require.NoError(t, err)
		assert.Empty(t, store.Hooks("acme", "widgets"))
		assert.Len(t, store.Hooks("widgets", "acme"), 1)
	})

	t.Run("should succeed without deleting when no hook targets the URL", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		cmd := commands.NewUninstallCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())

		// then
		require.NoError(t, err)
		assert.Zero(t, store.DeleteCallCount)
	})
}

func TestTryUnregister(t *testing.T) {
	t.Parallel()

	t.Run("should propagate deletion failures", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.Seed("acme", "widgets", entities.Webhook{ID: 9, URL: bridgeURL})
		store.DeleteErr = entities.ErrCouldNotUnregisterWebhook

		// when
		err := commands.TryUnregister(
			context.Background(), store, entities.RepositoryPath{Owner: "acme", Name: "widgets"}, bridgeURL,
		)

		// then
		require.ErrorIs(t, err, entities.ErrCouldNotUnregisterWebhook)
		assert.Equal(t, 1, store.DeleteCallCount)
	})

	t.Run("should propagate listing failures", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		listErr := errors.New("connection refused")
		store.ListErr = listErr

		// when
		err := commands.TryUnregister(
			context.Background(), store, entities.RepositoryPath{Owner: "acme", Name: "widgets"}, bridgeURL,
		)

		// then
		require.ErrorIs(t, err, listErr)
		assert.Zero(t, store.DeleteCallCount)
	})
}

func TestListWebhooksCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return every hook of the repository", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		store.Seed("acme", "widgets", entities.Webhook{ID: 1, URL: bridgeURL})
		store.Seed("acme", "widgets", entities.Webhook{ID: 2, URL: "https://other.example.com/hook"})
		cmd := commands.NewListWebhooksCommand(newHostingRegistry(store))
		settings := entitybuilders.NewSettingsBuilder().BuildSettings()

		// when
		webhooks, err := cmd.Execute(context.Background(), settings, widgetsWebhookOptions())

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Webhook{
			{ID: 1, URL: bridgeURL},
			{ID: 2, URL: "https://other.example.com/hook"},
		}, webhooks)
	})
}
