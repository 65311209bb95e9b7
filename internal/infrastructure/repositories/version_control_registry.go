package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/hookrunner/internal/domain/repositories"
)

// VersionControlFactory builds a version control engine. Construction may fail,
// for example when the engine's executable is not installed.
type VersionControlFactory func() (domainRepos.VersionControlRepository, error)

// VersionControlRegistry manages the available version control engines.
type VersionControlRegistry struct {
	engines map[string]VersionControlFactory
}

// NewVersionControlRegistry creates an empty engine registry.
func NewVersionControlRegistry() *VersionControlRegistry {
	return &VersionControlRegistry{
		engines: make(map[string]VersionControlFactory),
	}
}

// Register adds an engine factory under the given name (e.g. "binary").
func (r *VersionControlRegistry) Register(name string, factory VersionControlFactory) {
	r.engines[name] = factory
}

// Get constructs the engine registered under name.
func (r *VersionControlRegistry) Get(name string) (domainRepos.VersionControlRepository, error) {
	factory, ok := r.engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown git engine: %q", name)
	}
	return factory()
}

// Names returns the registered engine names in lexical order.
func (r *VersionControlRegistry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
