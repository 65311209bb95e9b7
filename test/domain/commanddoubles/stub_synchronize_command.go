//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// StubSynchronizeCommand is a stub implementation of commands.Synchronize.
type StubSynchronizeCommand struct {
	ExecuteErr error

	mu               sync.Mutex
	executeCallCount int
	lastSettings     *entities.Settings
	lastOpts         commands.SynchronizeOptions
}

var _ commands.Synchronize = (*StubSynchronizeCommand)(nil)

func (s *StubSynchronizeCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.SynchronizeOptions,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executeCallCount++
	s.lastSettings = settings
	s.lastOpts = opts
	return s.ExecuteErr
}

func (s *StubSynchronizeCommand) ExecuteCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeCallCount
}

func (s *StubSynchronizeCommand) LastOpts() commands.SynchronizeOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOpts
}

func (s *StubSynchronizeCommand) LastSettings() *entities.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSettings
}
