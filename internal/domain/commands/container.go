package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewSynchronizeCommand); err != nil {
		return err
	}
	if err := container.Provide(NewInstallCommand); err != nil {
		return err
	}
	if err := container.Provide(NewUninstallCommand); err != nil {
		return err
	}
	if err := container.Provide(NewListWebhooksCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *SynchronizeCommand) Synchronize {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *InstallCommand) Install {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *UninstallCommand) Uninstall {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListWebhooksCommand) ListWebhooks {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
