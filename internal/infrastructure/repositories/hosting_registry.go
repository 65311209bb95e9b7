package repositories

import (
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	domainRepos "github.com/rios0rios0/hookrunner/internal/domain/repositories"
)

// WebhookFactory builds a hook API client for the given API root and credentials.
type WebhookFactory func(apiURL string, credentials entities.WebhookCredentials) (domainRepos.WebhookRepository, error)

// HostingRegistry maps a backend kind to the client managing its webhooks.
type HostingRegistry struct {
	hosts map[entities.BackendKind]WebhookFactory
}

// NewHostingRegistry creates an empty hosting registry.
func NewHostingRegistry() *HostingRegistry {
	return &HostingRegistry{
		hosts: make(map[entities.BackendKind]WebhookFactory),
	}
}

// Register adds a webhook client factory for a backend kind.
func (r *HostingRegistry) Register(kind entities.BackendKind, factory WebhookFactory) {
	r.hosts[kind] = factory
}

// Get returns a configured webhook client for backend.
func (r *HostingRegistry) Get(
	backend entities.Backend,
	apiURL string,
	credentials entities.WebhookCredentials,
) (domainRepos.WebhookRepository, error) {
	factory, ok := r.hosts[backend.Kind()]
	if !ok {
		return nil, &entities.UnsupportedBackendError{Value: backend.String()}
	}
	return factory(apiURL, credentials)
}
