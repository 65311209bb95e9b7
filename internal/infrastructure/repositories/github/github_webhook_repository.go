package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"

	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	"github.com/rios0rios0/hookrunner/internal/domain/repositories"
)

const (
	perPage        = 100
	hookName       = "web"
	contentType    = "json"
	connectTimeout = 10 * time.Second
)

// subscribedEvents is the fixed event list every installed hook listens to.
var subscribedEvents = []string{"push"} //nolint:gochecknoglobals // constant slice

// GitHubWebhookRepository implements repositories.WebhookRepository against the GitHub REST API.
type GitHubWebhookRepository struct {
	client *gh.Client
}

var _ repositories.WebhookRepository = (*GitHubWebhookRepository)(nil)

// NewGitHubWebhookRepository creates a client rooted at apiURL that sends
// credentials as HTTP basic auth on every call.
func NewGitHubWebhookRepository(
	apiURL string,
	credentials entities.WebhookCredentials,
) (*GitHubWebhookRepository, error) {
	baseURL, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}

	dialer := &net.Dialer{Timeout: connectTimeout}
	//nolint:exhaustruct // only the connect phase is bounded
	transport := &gh.BasicAuthTransport{
		Username: credentials.Username,
		Password: credentials.Token,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			TLSHandshakeTimeout: connectTimeout,
		},
	}

	client := gh.NewClient(transport.Client())
	client.BaseURL = baseURL
	client.UserAgent = entities.UserAgent()

	return &GitHubWebhookRepository{client: client}, nil
}

// NewWebhookRepository adapts NewGitHubWebhookRepository to the hosting registry.
func NewWebhookRepository(
	apiURL string,
	credentials entities.WebhookCredentials,
) (repositories.WebhookRepository, error) {
	return NewGitHubWebhookRepository(apiURL, credentials)
}

// List returns every hook of owner/repo, following pagination.
func (p *GitHubWebhookRepository) List(ctx context.Context, owner, repo string) ([]entities.Webhook, error) {
	var webhooks []entities.Webhook
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		hooks, resp, err := p.client.Repositories.ListHooks(ctx, owner, repo, opts)
		if err != nil {
			return nil, classify(entities.ErrCouldNotListWebhooks, err)
		}

		for _, hook := range hooks {
			webhooks = append(webhooks, entities.Webhook{
				ID:  hook.GetID(),
				URL: hook.GetConfig().GetURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return webhooks, nil
}

// Create registers a JSON push hook targeting hookURL. No secret is forwarded.
func (p *GitHubWebhookRepository) Create(
	ctx context.Context,
	owner, repo, hookURL string,
) (entities.Webhook, error) {
	//nolint:exhaustruct // GitHub fills the remaining fields
	hook := &gh.Hook{
		Name:   gh.Ptr(hookName),
		Active: gh.Ptr(true),
		Events: subscribedEvents,
		Config: &gh.HookConfig{
			URL:         gh.Ptr(hookURL),
			ContentType: gh.Ptr(contentType),
		},
	}

	created, _, err := p.client.Repositories.CreateHook(ctx, owner, repo, hook)
	if err != nil {
		return entities.Webhook{}, classify(entities.ErrCouldNotRegisterWebhook, err)
	}

	return entities.Webhook{
		ID:  created.GetID(),
		URL: created.GetConfig().GetURL(),
	}, nil
}

// Delete removes the hook with the given id.
func (p *GitHubWebhookRepository) Delete(ctx context.Context, owner, repo string, id int64) error {
	if _, err := p.client.Repositories.DeleteHook(ctx, owner, repo, id); err != nil {
		return classify(entities.ErrCouldNotUnregisterWebhook, err)
	}
	return nil
}

// classify tags err with the failed operation and, when recognizable, with
// entities.ErrBadStatusCode or entities.ErrMalformedResponse.
func classify(operation, err error) error {
	var (
		errResp     *gh.ErrorResponse
		rateErr     *gh.RateLimitError
		abuseErr    *gh.AbuseRateLimitError
		redirectErr *gh.RedirectionError
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &errResp), errors.As(err, &rateErr),
		errors.As(err, &abuseErr), errors.As(err, &redirectErr):
		return fmt.Errorf("%w: %w: %w", operation, entities.ErrBadStatusCode, err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w: %w", operation, entities.ErrMalformedResponse, err)
	default:
		return fmt.Errorf("%w: %w", operation, err)
	}
}
