//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"sync"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
)

// InMemoryWebhookRepository is a repositories.WebhookRepository keeping hooks
// in memory, so state persists between calls like a real provider.
type InMemoryWebhookRepository struct {
	// --- canned errors ---
	ListErr   error
	CreateErr error
	DeleteErr error

	// --- spy ---
	CreateCallCount int
	DeleteCallCount int
	LastCredentials entities.WebhookCredentials
	LastAPIURL      string

	mu     sync.Mutex
	hooks  map[string][]entities.Webhook
	nextID int64
}

var _ repositories.WebhookRepository = (*InMemoryWebhookRepository)(nil)

// NewInMemoryWebhookRepository creates an empty store.
func NewInMemoryWebhookRepository() *InMemoryWebhookRepository {
	return &InMemoryWebhookRepository{
		hooks:  make(map[string][]entities.Webhook),
		nextID: 1,
	}
}

// Factory returns a hosting factory handing out this store and recording its arguments.
func (r *InMemoryWebhookRepository) Factory() func(
	string, entities.WebhookCredentials,
) (repositories.WebhookRepository, error) {
	return func(apiURL string, credentials entities.WebhookCredentials) (repositories.WebhookRepository, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.LastAPIURL = apiURL
		r.LastCredentials = credentials
		return r, nil
	}
}

// Seed adds an existing hook to owner/repo.
func (r *InMemoryWebhookRepository) Seed(owner, repo string, webhook entities.Webhook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := owner + "/" + repo
	r.hooks[key] = append(r.hooks[key], webhook)
	if webhook.ID >= r.nextID {
		r.nextID = webhook.ID + 1
	}
}

// Hooks returns a copy of the hooks registered on owner/repo.
func (r *InMemoryWebhookRepository) Hooks(owner, repo string) []entities.Webhook {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Webhook(nil), r.hooks[owner+"/"+repo]...)
}

func (r *InMemoryWebhookRepository) List(_ context.Context, owner, repo string) ([]entities.Webhook, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.Hooks(owner, repo), nil
}

func (r *InMemoryWebhookRepository) Create(
	_ context.Context,
	owner, repo, url string,
) (entities.Webhook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.CreateCallCount++
	if r.CreateErr != nil {
		return entities.Webhook{}, r.CreateErr
	}

	webhook := entities.Webhook{ID: r.nextID, URL: url}
	r.nextID++
	key := owner + "/" + repo
	r.hooks[key] = append(r.hooks[key], webhook)
	return webhook, nil
}

func (r *InMemoryWebhookRepository) Delete(_ context.Context, owner, repo string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.DeleteCallCount++
	if r.DeleteErr != nil {
		return r.DeleteErr
	}

	key := owner + "/" + repo
	for i, webhook := range r.hooks[key] {
		if webhook.ID == id {
			r.hooks[key] = append(r.hooks[key][:i], r.hooks[key][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("hook %d not found on %s", id, key)
}
