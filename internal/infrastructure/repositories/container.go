package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	gitRepo "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/hookrunner/internal/infrastructure/repositories/github"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Engines are built lazily so commands that never touch git do not require it
	if err := container.Provide(func() *VersionControlRegistry {
		reg := NewVersionControlRegistry()
		reg.Register(entities.GitEngineBinary, gitRepo.NewVersionControlRepository)
		reg.Register(entities.GitEngineBuiltin, gitRepo.NewBuiltinVersionControlRepository)
		return reg
	}); err != nil {
		return err
	}

	// GitHub Enterprise speaks the same hook API, so custom backends share the client
	if err := container.Provide(func() *HostingRegistry {
		reg := NewHostingRegistry()
		reg.Register(entities.GitHubBackend, ghRepo.NewWebhookRepository)
		reg.Register(entities.CustomBackend, ghRepo.NewWebhookRepository)
		return reg
	}); err != nil {
		return err
	}

	return nil
}
