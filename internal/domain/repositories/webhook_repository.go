package repositories

import (
	"context"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// WebhookRepository exposes the hosting provider's repository hook API.
type WebhookRepository interface {
	// List returns every hook registered on owner/repo.
	List(ctx context.Context, owner, repo string) ([]entities.Webhook, error)

	// Create subscribes url to push events on owner/repo and returns the new hook.
	Create(ctx context.Context, owner, repo, url string) (entities.Webhook, error)

	// Delete removes the hook with the given id from owner/repo.
	Delete(ctx context.Context, owner, repo string, id int64) error
}
