package entities

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGitHubAPIURL = "https://api.github.com"
	DefaultBindAddress  = "0.0.0.0:3000"
	DefaultHookPath     = "/webhook/github"
	DefaultMaxBodyBytes = 25 << 20

	GitEngineBinary  = "binary"
	GitEngineBuiltin = "builtin"
)

// Environment variables read by ApplyEnvironment.
const (
	EnvGitHubAPIURL  = "HR_GITHUB_API_URL"
	EnvWebhookSecret = "HR_WEBHOOK_SECRET"
	EnvWorkingDir    = "HR_WORKING_DIR"
	EnvRepoMapping   = "HR_REPO_MAPPING"
	EnvBindAddress   = "HR_BIND_IP"
	EnvGitEngine     = "HR_GIT_ENGINE"
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Settings is the process configuration, built once at startup and passed down.
type Settings struct {
	GitHubAPIURL      string            `yaml:"github_api_url"`
	WebhookSecret     string            `yaml:"webhook_secret"`
	WorkingDir        string            `yaml:"working_dir"`
	RepositoryMapping RepositoryMapping `yaml:"repo_mapping"`
	BindAddress       string            `yaml:"bind_ip"`
	GitEngine         string            `yaml:"git_engine"`
	HookPath          string            `yaml:"hook_path"`
	MaxBodyBytes      int64             `yaml:"max_body_bytes"`
}

// NewDefaultSettings returns the settings used when nothing is configured.
func NewDefaultSettings() *Settings {
	return &Settings{
		GitHubAPIURL:      DefaultGitHubAPIURL,
		RepositoryMapping: RepositoryMapping{},
		BindAddress:       DefaultBindAddress,
		GitEngine:         GitEngineBinary,
		HookPath:          DefaultHookPath,
		MaxBodyBytes:      DefaultMaxBodyBytes,
	}
}

// NewSettings layers the config file at path (if any) and the HR_* environment
// over the defaults. Flags are applied afterwards by the caller.
func NewSettings(path string) (*Settings, error) {
	settings := NewDefaultSettings()

	if path != "" {
		if err := settings.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := settings.ApplyEnvironment(os.LookupEnv); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *Settings) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if unmarshalErr := yaml.Unmarshal(data, s); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	s.GitHubAPIURL = ResolveValue(s.GitHubAPIURL)
	s.WorkingDir = ResolveValue(s.WorkingDir)
	s.WebhookSecret = ResolveSecret(s.WebhookSecret)
	if s.RepositoryMapping == nil {
		s.RepositoryMapping = RepositoryMapping{}
	}
	return nil
}

// ApplyEnvironment overrides settings with the non-empty HR_* variables.
func (s *Settings) ApplyEnvironment(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		if !ok || value == "" {
			return "", false
		}
		return value, true
	}

	if v, ok := get(EnvGitHubAPIURL); ok {
		s.GitHubAPIURL = v
	}
	if v, ok := get(EnvWebhookSecret); ok {
		s.WebhookSecret = v
	}
	if v, ok := get(EnvWorkingDir); ok {
		s.WorkingDir = v
	}
	if v, ok := get(EnvGitEngine); ok {
		s.GitEngine = v
	}
	if v, ok := get(EnvRepoMapping); ok {
		mapping, err := ParseRepositoryMapping(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRepoMapping, err)
		}
		s.RepositoryMapping = mapping
	}
	if v, ok := get(EnvBindAddress); ok {
		if err := ValidateBindAddress(v); err != nil {
			logger.Errorf(
				"error while parsing bind ip '%s' from environment variable %s, will use default value '%s'",
				v, EnvBindAddress, s.BindAddress,
			)
		} else {
			s.BindAddress = v
		}
	}

	return nil
}

// Validate checks the settings a command is about to rely on.
func (s *Settings) Validate() error {
	apiURL, err := url.Parse(s.GitHubAPIURL)
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return fmt.Errorf("invalid GitHub API URL %q", s.GitHubAPIURL)
	}

	if s.WorkingDir != "" {
		if _, statErr := os.Stat(s.WorkingDir); statErr != nil {
			return &MissingWorkingDirectoryError{Path: s.WorkingDir}
		}
	}

	switch s.GitEngine {
	case GitEngineBinary, GitEngineBuiltin:
	default:
		return fmt.Errorf("unknown git engine %q (expected %s or %s)", s.GitEngine, GitEngineBinary, GitEngineBuiltin)
	}

	if err = ValidateBindAddress(s.BindAddress); err != nil {
		return err
	}

	if !strings.HasPrefix(s.HookPath, "/") {
		return fmt.Errorf("hook path %q must start with /", s.HookPath)
	}
	if s.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}

	return nil
}

// SignatureRequired reports whether deliveries must carry a valid HMAC signature.
// An empty secret disables verification, which is insecure and meant for trusted networks only.
func (s *Settings) SignatureRequired() bool {
	return s.WebhookSecret != ""
}

// ValidateBindAddress accepts "ip:port".
func ValidateBindAddress(value string) error {
	if _, err := netip.ParseAddrPort(value); err != nil {
		return fmt.Errorf("invalid bind address %q: %w", value, err)
	}
	return nil
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{".", ".config", "configs"}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".hookrunner.yaml",
		".hookrunner.yml",
		"hookrunner.yaml",
		"hookrunner.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveValue expands ${ENV_VAR} references.
func ResolveValue(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// ResolveSecret expands ${ENV_VAR} references and, when the result names an
// existing file, reads the secret from it.
func ResolveSecret(raw string) string {
	resolved := ResolveValue(raw)
	if resolved == "" {
		return resolved
	}

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read webhook secret from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// String renders the settings for debug logs with the secret masked.
func (s *Settings) String() string {
	secret := "<unset>"
	if s.WebhookSecret != "" {
		secret = "<redacted>"
	}
	return fmt.Sprintf(
		"api=%s working_dir=%q mappings=%d bind=%s engine=%s hook_path=%s max_body=%s secret=%s",
		s.GitHubAPIURL, s.WorkingDir, len(s.RepositoryMapping), s.BindAddress,
		s.GitEngine, s.HookPath, strconv.FormatInt(s.MaxBodyBytes, 10), secret,
	)
}
