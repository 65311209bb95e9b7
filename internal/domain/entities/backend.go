package entities

import "strings"

const (
	gitHubRootURL = "https://github.com"
	gitLabRootURL = "https://gitlab.com"

	customBackendPrefix = "custom:"
)

// BackendKind enumerates the supported Git hosting backends.
type BackendKind int

const (
	GitHubBackend BackendKind = iota
	GitLabBackend
	CustomBackend
)

// Backend selects the root URL used to build clone URLs.
type Backend struct {
	kind    BackendKind
	baseURL string
}

// NewGitHubBackend returns the public GitHub backend.
func NewGitHubBackend() Backend { return Backend{kind: GitHubBackend} }

// NewGitLabBackend returns the public GitLab backend.
func NewGitLabBackend() Backend { return Backend{kind: GitLabBackend} }

// NewCustomBackend returns a backend rooted at baseURL.
func NewCustomBackend(baseURL string) Backend {
	return Backend{kind: CustomBackend, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// ParseBackend accepts "github", "gitlab" or "custom:<url>".
func ParseBackend(value string) (Backend, error) {
	switch {
	case value == "github":
		return NewGitHubBackend(), nil
	case value == "gitlab":
		return NewGitLabBackend(), nil
	case strings.HasPrefix(value, customBackendPrefix) && len(value) > len(customBackendPrefix):
		return NewCustomBackend(strings.TrimPrefix(value, customBackendPrefix)), nil
	default:
		return Backend{}, &UnsupportedBackendError{Value: value}
	}
}

func (b Backend) Kind() BackendKind { return b.kind }

// RootURL returns the base URL that repository full names are appended to.
func (b Backend) RootURL() string {
	switch b.kind {
	case GitLabBackend:
		return gitLabRootURL
	case CustomBackend:
		return b.baseURL
	default:
		return gitHubRootURL
	}
}

// CloneURL builds "<root>/<owner>/<name>".
func (b Backend) CloneURL(path RepositoryPath) string {
	return b.RootURL() + "/" + path.FullName()
}

func (b Backend) String() string {
	switch b.kind {
	case GitLabBackend:
		return "gitlab"
	case CustomBackend:
		return customBackendPrefix + b.baseURL
	default:
		return "github"
	}
}
