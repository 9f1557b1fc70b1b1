// Package config loads the LLM gateway credentials and output preferences for qa2md.
package config

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/irahardianto/qa2md/internal/platform/logger"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported LLM providers.
const (
	ProviderAzure  = "azure"
	ProviderGemini = "gemini"
)

// DefaultDotEnvPath is the settings file read from the working directory.
const DefaultDotEnvPath = ".env"

// Environment variable names. Real environment values win over .env values.
const (
	EnvAzureAPIKey     = "AZURE_OPENAI_API_KEY"
	EnvAzureEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvAzureDeployment = "AZURE_OPENAI_DEPLOYMENT_NAME"
	EnvAzureAPIVersion = "AZURE_OPENAI_API_VERSION"
	EnvProvider        = "QA2MD_PROVIDER"
	EnvGeminiKey       = "QA2MD_GEMINI_KEY"
	EnvGeminiModel     = "QA2MD_GEMINI_MODEL"
	EnvNoColor         = "QA2MD_NO_COLOR"
)

// SecretString is a string that is redacted when printed or logged.
type SecretString string

func (s SecretString) String() string {
	return "[REDACTED]"
}

// LogValue keeps the secret out of slog output.
func (s SecretString) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

func (s SecretString) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// IsEmpty returns true if the secret string is empty.
func (s SecretString) IsEmpty() bool {
	return string(s) == ""
}

// Settings is the process-wide configuration. It is loaded once at startup
// and must not be mutated afterwards.
type Settings struct {
	Provider    string         `yaml:"provider"`
	Azure       AzureSettings  `yaml:"azure"`
	Gemini      GeminiSettings `yaml:"gemini"`
	OutputColor bool           `yaml:"-"` // derived from Output.Color
	Output      OutputSettings `yaml:"output"`
}

// AzureSettings addresses an Azure OpenAI chat-completion deployment.
type AzureSettings struct {
	Endpoint   string       `yaml:"endpoint"`
	APIKey     SecretString `yaml:"api_key"`
	Deployment string       `yaml:"deployment"`
	APIVersion string       `yaml:"api_version"`
}

// GeminiSettings addresses the Gemini API.
type GeminiSettings struct {
	APIKey SecretString `yaml:"api_key"`
	Model  string       `yaml:"model"`
}

// OutputSettings holds output-related user preferences.
type OutputSettings struct {
	Color *bool `yaml:"color"`
}

// MissingCredentials lists the environment variables that still need a value
// for the selected provider. An empty result means the gateway can be built.
func (s *Settings) MissingCredentials() []string {
	var missing []string
	switch s.Provider {
	case ProviderGemini:
		if s.Gemini.APIKey.IsEmpty() {
			missing = append(missing, EnvGeminiKey)
		}
	default:
		if s.Azure.APIKey.IsEmpty() {
			missing = append(missing, EnvAzureAPIKey)
		}
		if s.Azure.Endpoint == "" {
			missing = append(missing, EnvAzureEndpoint)
		}
		if s.Azure.Deployment == "" {
			missing = append(missing, EnvAzureDeployment)
		}
		if s.Azure.APIVersion == "" {
			missing = append(missing, EnvAzureAPIVersion)
		}
	}
	return missing
}

// Loader handles loading settings from the file system and environment.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a new Loader with the given file system.
// Uses os.Getenv for environment variable lookups by default.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv}
}

// NewLoaderWithEnv creates a Loader with a custom getenv function for testability.
func NewLoaderWithEnv(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

// DefaultSettingsPath returns ~/.config/qa2md/config.yaml.
func (l *Loader) DefaultSettingsPath() (string, error) {
	home, err := l.fs.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qa2md", "config.yaml"), nil
}

// Load builds Settings from defaults, the YAML file at settingsPath, the
// dotenv file at dotenvPath and finally the process environment.
// An empty settingsPath means DefaultSettingsPath. Missing files are not errors.
func (l *Loader) Load(ctx context.Context, settingsPath, dotenvPath string) (*Settings, error) {
	log := logger.FromContext(ctx)
	cfg := defaultSettings()

	if settingsPath == "" {
		p, err := l.DefaultSettingsPath()
		if err != nil {
			log.Debug("cannot resolve home directory, skipping settings file", "error", err)
		}
		settingsPath = p
	}

	if settingsPath != "" {
		if err := l.readYAML(ctx, filepath.Clean(settingsPath), cfg); err != nil {
			return nil, err
		}
	}

	dotenv, err := l.readDotEnv(ctx, dotenvPath)
	if err != nil {
		return nil, err
	}

	lookup := func(key string) string {
		if v := l.getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	applyEnvOverrides(cfg, lookup)

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderAzure
	}

	log.Debug("settings loaded",
		"provider", cfg.Provider,
		"endpoint", cfg.Azure.Endpoint,
		"deployment", cfg.Azure.Deployment,
		"api_key", cfg.Azure.APIKey,
	)
	return cfg, nil
}

func (l *Loader) readYAML(ctx context.Context, path string, cfg *Settings) error {
	log := logger.FromContext(ctx)
	log.Debug("loading settings file", "path", path)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if l.fs.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing settings file: %w", err)
	}
	if cfg.Output.Color != nil {
		cfg.OutputColor = *cfg.Output.Color
	}
	return nil
}

func (l *Loader) readDotEnv(ctx context.Context, path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	path = filepath.Clean(path)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if l.fs.IsNotExist(err) {
			logger.FromContext(ctx).Debug("no dotenv file, using process environment", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading dotenv file: %w", err)
	}

	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing dotenv file %s: %w", path, err)
	}
	return values, nil
}

// LoadSettings reads settings using the real file system.
func LoadSettings(ctx context.Context, settingsPath, dotenvPath string) (*Settings, error) {
	return NewLoader(&RealFileSystem{}).Load(ctx, settingsPath, dotenvPath)
}

func defaultSettings() *Settings {
	return &Settings{
		Provider:    ProviderAzure,
		OutputColor: true,
	}
}

// applyEnvOverrides copies non-empty environment values into cfg.
func applyEnvOverrides(cfg *Settings, lookup func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			*dst = v
		}
	}

	set(&cfg.Provider, EnvProvider)
	set(&cfg.Azure.Endpoint, EnvAzureEndpoint)
	set(&cfg.Azure.Deployment, EnvAzureDeployment)
	set(&cfg.Azure.APIVersion, EnvAzureAPIVersion)
	set(&cfg.Gemini.Model, EnvGeminiModel)

	if key := strings.TrimSpace(lookup(EnvAzureAPIKey)); key != "" {
		cfg.Azure.APIKey = SecretString(key)
	}
	if key := strings.TrimSpace(lookup(EnvGeminiKey)); key != "" {
		cfg.Gemini.APIKey = SecretString(key)
	}

	if noColor := strings.ToLower(lookup(EnvNoColor)); noColor != "" {
		if noColor == "1" || noColor == "true" || noColor == "yes" {
			cfg.OutputColor = false
		}
	}
}
