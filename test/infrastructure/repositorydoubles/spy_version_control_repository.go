//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, fakes) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
)

// VersionControlCall records one invocation made on the spy.
type VersionControlCall struct {
	Operation  string
	Dir        string
	Reference  string
	RemoteURL  string
	TargetName string
}

// SpyVersionControlRepository is an in-memory repositories.VersionControlRepository.
// It records every call and returns the configured outputs and errors.
type SpyVersionControlRepository struct {
	// --- canned results ---
	Output      string
	CloneErr    error
	FetchErr    error
	CheckoutErr error
	PullErr     error

	// --- behavior ---
	// CreateOnClone makes Clone create the target directory, like a real clone.
	CreateOnClone bool
	// Delay holds every call open for a while, to observe overlapping calls.
	Delay time.Duration

	// --- spy ---
	mu            sync.Mutex
	calls         []VersionControlCall
	active        int
	maxConcurrent int
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

// Factory returns an engine factory that always hands out this spy.
func (s *SpyVersionControlRepository) Factory() func() (repositories.VersionControlRepository, error) {
	return func() (repositories.VersionControlRepository, error) { return s, nil }
}

func (s *SpyVersionControlRepository) Clone(
	_ context.Context,
	parentDir, reference, remoteURL, targetName string,
) (string, error) {
	s.record(VersionControlCall{
		Operation:  "clone",
		Dir:        parentDir,
		Reference:  reference,
		RemoteURL:  remoteURL,
		TargetName: targetName,
	})
	if s.CloneErr != nil {
		return "", s.CloneErr
	}
	if s.CreateOnClone {
		if err := os.MkdirAll(filepath.Join(parentDir, targetName), 0o755); err != nil {
			return "", err
		}
	}
	return s.Output, nil
}

func (s *SpyVersionControlRepository) Fetch(_ context.Context, dir string) (string, error) {
	s.record(VersionControlCall{Operation: "fetch", Dir: dir})
	return s.Output, s.FetchErr
}

func (s *SpyVersionControlRepository) Checkout(_ context.Context, dir, reference string) (string, error) {
	s.record(VersionControlCall{Operation: "checkout", Dir: dir, Reference: reference})
	return s.Output, s.CheckoutErr
}

func (s *SpyVersionControlRepository) Pull(_ context.Context, dir string) (string, error) {
	s.record(VersionControlCall{Operation: "pull", Dir: dir})
	return s.Output, s.PullErr
}

// Calls returns a copy of the recorded calls, in order.
func (s *SpyVersionControlRepository) Calls() []VersionControlCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]VersionControlCall(nil), s.calls...)
}

// Operations returns the recorded operation names, in order.
func (s *SpyVersionControlRepository) Operations() []string {
	calls := s.Calls()
	ops := make([]string, 0, len(calls))
	for _, call := range calls {
		ops = append(ops, call.Operation)
	}
	return ops
}

// MaxConcurrent is the highest number of calls observed in flight at once.
func (s *SpyVersionControlRepository) MaxConcurrent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxConcurrent
}

func (s *SpyVersionControlRepository) record(call VersionControlCall) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.active++
	if s.active > s.maxConcurrent {
		s.maxConcurrent = s.active
	}
	s.mu.Unlock()

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}

	s.mu.Lock()
	s.active--
	s.mu.Unlock()
}
