package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewServeController); err != nil {
		return err
	}
	if err := container.Provide(NewSynchronizeController); err != nil {
		return err
	}
	if err := container.Provide(NewInstallController); err != nil {
		return err
	}
	if err := container.Provide(NewUninstallController); err != nil {
		return err
	}
	if err := container.Provide(NewHooksController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	serveController *ServeController,
	synchronizeController *SynchronizeController,
	installController *InstallController,
	uninstallController *UninstallController,
	hooksController *HooksController,
) *[]entities.Controller {
	return &[]entities.Controller{
		serveController,
		synchronizeController,
		installController,
		uninstallController,
		hooksController,
	}
}
