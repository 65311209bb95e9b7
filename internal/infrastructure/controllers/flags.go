package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rios0rios0/hookrunner/internal/domain/commands"
	"github.com/rios0rios0/hookrunner/internal/domain/entities"
)

// Global flag names.
const (
	FlagConfig        = "config"
	FlagGitHubAPIURL  = "github-api-url"
	FlagWorkingDir    = "working-dir"
	FlagWebhookSecret = "webhook-secret"
	FlagRepoMapping   = "repo-mapping"
	FlagBindIP        = "bind-ip"
	FlagGitEngine     = "git-engine"
)

const (
	flagBackend    = "backend"
	flagRepository = "repository"
	flagRef        = "ref"
	flagURL        = "url"
	flagUsername   = "username"
	flagToken      = "token"
)

// AddGlobalFlags declares the options shared by every subcommand.
func AddGlobalFlags(flags *pflag.FlagSet) {
	flags.StringP(FlagConfig, "c", "", "Path to config file (default: auto-detect)")
	flags.String(FlagGitHubAPIURL, "", "GitHub API URL (default "+entities.DefaultGitHubAPIURL+")")
	flags.String(FlagWorkingDir, "", "Working directory (default: current directory)")
	flags.String(FlagWebhookSecret, "", "Webhook secret (verification disabled when empty)")
	flags.String(FlagRepoMapping, "", "Repository mapping, e.g. owner/name=path,owner2/name2=path2")
	flags.String(FlagBindIP, "", "Bind address (default "+entities.DefaultBindAddress+")")
	flags.String(FlagGitEngine, "",
		fmt.Sprintf("Git engine: %s or %s (default %s)",
			entities.GitEngineBinary, entities.GitEngineBuiltin, entities.GitEngineBinary))
}

// LoadSettings builds the settings from the config file, the environment and
// the flags explicitly set on cmd, in increasing precedence.
func LoadSettings(flags *pflag.FlagSet) (*entities.Settings, error) {
	configPath, _ := flags.GetString(FlagConfig)
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
	}

	settings, err := entities.NewSettings(configPath)
	if err != nil {
		return nil, err
	}

	if err = applyFlagOverrides(flags, settings); err != nil {
		return nil, err
	}

	if err = settings.Validate(); err != nil {
		return nil, err
	}

	logger.Debugf("Settings: %s", settings)
	return settings, nil
}

func applyFlagOverrides(flags *pflag.FlagSet, settings *entities.Settings) error {
	override := func(name string, target *string) {
		if flags.Changed(name) {
			*target, _ = flags.GetString(name)
		}
	}

	override(FlagGitHubAPIURL, &settings.GitHubAPIURL)
	override(FlagWorkingDir, &settings.WorkingDir)
	override(FlagWebhookSecret, &settings.WebhookSecret)
	override(FlagBindIP, &settings.BindAddress)
	override(FlagGitEngine, &settings.GitEngine)

	if flags.Changed(FlagRepoMapping) {
		raw, _ := flags.GetString(FlagRepoMapping)
		mapping, err := entities.ParseRepositoryMapping(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", FlagRepoMapping, err)
		}
		settings.RepositoryMapping = mapping
	}

	return nil
}

func addRepositoryFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagBackend, "github", "Git hosting backend: github, gitlab or custom:<url>")
	cmd.Flags().String(flagRepository, "", "Repository full name (owner/name)")
	_ = cmd.MarkFlagRequired(flagRepository)
}

func addWebhookFlags(cmd *cobra.Command, withURL bool) {
	addRepositoryFlags(cmd)
	if withURL {
		cmd.Flags().String(flagURL, "", "Webhook target URL")
		_ = cmd.MarkFlagRequired(flagURL)
	}
	cmd.Flags().String(flagUsername, "", "API username")
	cmd.Flags().String(flagToken, "", "API token")
	_ = cmd.MarkFlagRequired(flagUsername)
	_ = cmd.MarkFlagRequired(flagToken)
}

func parseRepositoryFlags(flags *pflag.FlagSet) (entities.Backend, entities.RepositoryPath, error) {
	rawBackend, _ := flags.GetString(flagBackend)
	backend, err := entities.ParseBackend(rawBackend)
	if err != nil {
		return entities.Backend{}, entities.RepositoryPath{}, err
	}

	rawRepository, _ := flags.GetString(flagRepository)
	repository, err := entities.ParseRepositoryPath(rawRepository)
	if err != nil {
		return entities.Backend{}, entities.RepositoryPath{}, err
	}

	return backend, repository, nil
}

func parseWebhookFlags(flags *pflag.FlagSet) (commands.WebhookOptions, error) {
	backend, repository, err := parseRepositoryFlags(flags)
	if err != nil {
		return commands.WebhookOptions{}, err
	}

	url, _ := flags.GetString(flagURL)
	username, _ := flags.GetString(flagUsername)
	token, _ := flags.GetString(flagToken)

	return commands.WebhookOptions{
		Backend:     backend,
		Repository:  repository,
		URL:         url,
		Credentials: entities.WebhookCredentials{Username: username, Token: token},
	}, nil
}
