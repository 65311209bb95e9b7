//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	infraRepos "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
	"github.com/rios0rios0/hookrunner/internal/infrastructure/repositories/github"
	doubles "github.com/rios0rios0/hookrunner/test/infrastructure/repositorydoubles"
)

func TestVersionControlRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build the engine registered under a name", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyVersionControlRepository{}
		registry := infraRepos.NewVersionControlRegistry()
		registry.Register("fake", spy.Factory())

		// when
		engine, err := registry.Get("fake")

		// then
		require.NoError(t, err)
		assert.Same(t, spy, engine)
	})

	t.Run("should fail on an unknown name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewVersionControlRegistry()

		// when
		_, err := registry.Get("svn")

		// then
		require.ErrorContains(t, err, `unknown git engine: "svn"`)
	})
}

func TestHostingRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should hand the API URL and credentials to the factory", func(t *testing.T) {
		t.Parallel()

		// given
		store := doubles.NewInMemoryWebhookRepository()
		registry := infraRepos.NewHostingRegistry()
		registry.Register(entities.GitHubBackend, store.Factory())
		credentials := entities.WebhookCredentials{Username: "octocat", Token: "s3cr3t"}

		// when
		client, err := registry.Get(entities.NewGitHubBackend(), "https://api.github.com", credentials)

		// then
		require.NoError(t, err)
		assert.Same(t, store, client)
		assert.Equal(t, "https://api.github.com", store.LastAPIURL)
		assert.Equal(t, credentials, store.LastCredentials)
	})

	t.Run("should reject unregistered backends", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewHostingRegistry()

		// when
		_, err := registry.Get(entities.NewGitLabBackend(), "https://api.github.com", entities.WebhookCredentials{})

		// then
		var unsupported *entities.UnsupportedBackendError
		require.ErrorAs(t, err, &unsupported)
	})
}

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should provide both engines and the GitHub hosting client", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, infraRepos.RegisterProviders(container))

		// when
		err := container.Invoke(func(engines *infraRepos.VersionControlRegistry, hosts *infraRepos.HostingRegistry) {
			assert.Equal(t, []string{entities.GitEngineBinary, entities.GitEngineBuiltin}, engines.Names())

			client, getErr := hosts.Get(entities.NewCustomBackend("https://git.example.com"),
				entities.DefaultGitHubAPIURL, entities.WebhookCredentials{})
			require.NoError(t, getErr)
			assert.IsType(t, &github.GitHubWebhookRepository{}, client)

			_, getErr = hosts.Get(entities.NewGitLabBackend(), entities.DefaultGitHubAPIURL, entities.WebhookCredentials{})
			assert.Error(t, getErr)
		})

		// then
		require.NoError(t, err)
	})
}
