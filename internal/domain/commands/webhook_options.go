package commands

import "github.com/rios0rios0/hookrunner/internal/domain/entities"

// WebhookOptions addresses a webhook on the hosting provider.
// URL is ignored when listing.
type WebhookOptions struct {
	Backend     entities.Backend
	Repository  entities.RepositoryPath
	URL         string
	Credentials entities.WebhookCredentials
}
