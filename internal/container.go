package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/infrastructure/controllers"
	"github.com/rios0rios0/hookrunner/internal/infrastructure/repositories"
)

// RegisterProviders wires every layer into the DIG container, bottom-up:
// engine and hosting registries, entities, commands, then the CLI controllers.
func RegisterProviders(container *dig.Container) error {
	registrations := []func(*dig.Container) error{
		repositories.RegisterProviders,
		entities.RegisterProviders,
		commands.RegisterProviders,
		controllers.RegisterProviders,
	}
	for _, register := range registrations {
		if err := register(container); err != nil {
			return err
		}
	}

	return container.Provide(NewAppInternal)
}
