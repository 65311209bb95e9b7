//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	workingDir string
	secret     string
	engine     string
	apiURL     string
	mapping    entities.RepositoryMapping
}

// NewSettingsBuilder creates a settings builder with the default values.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		engine:      entities.GitEngineBinary,
		apiURL:      entities.DefaultGitHubAPIURL,
		mapping:     entities.RepositoryMapping{},
	}
}

// WithWorkingDir sets the working directory.
func (b *SettingsBuilder) WithWorkingDir(dir string) *SettingsBuilder {
	b.workingDir = dir
	return b
}

// WithSecret sets the webhook secret.
func (b *SettingsBuilder) WithSecret(secret string) *SettingsBuilder {
	b.secret = secret
	return b
}

// WithGitEngine sets the git engine name.
func (b *SettingsBuilder) WithGitEngine(engine string) *SettingsBuilder {
	b.engine = engine
	return b
}

// WithAPIURL sets the GitHub API URL.
func (b *SettingsBuilder) WithAPIURL(apiURL string) *SettingsBuilder {
	b.apiURL = apiURL
	return b
}

// WithMapping maps a repository full name to a directory.
func (b *SettingsBuilder) WithMapping(fullName, dir string) *SettingsBuilder {
	b.mapping[fullName] = dir
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := entities.NewDefaultSettings()
	settings.WorkingDir = b.workingDir
	settings.WebhookSecret = b.secret
	settings.GitEngine = b.engine
	settings.GitHubAPIURL = b.apiURL
	for name, dir := range b.mapping {
		settings.RepositoryMapping[name] = dir
	}
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.workingDir = ""
	b.secret = ""
	b.engine = entities.GitEngineBinary
	b.apiURL = entities.DefaultGitHubAPIURL
	b.mapping = entities.RepositoryMapping{}
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	mapping := make(entities.RepositoryMapping, len(b.mapping))
	for name, dir := range b.mapping {
		mapping[name] = dir
	}
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		workingDir:  b.workingDir,
		secret:      b.secret,
		engine:      b.engine,
		apiURL:      b.apiURL,
		mapping:     mapping,
	}
}
