package config

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_YAMLFile(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files["/settings.yaml"] = []byte(`
provider: azure
azure:
  endpoint: "https://example.openai.azure.com/"
  api_key: "file-key"
  deployment: "gpt-4o"
  api_version: "2024-06-01"
output:
  color: false
`)

	loader := NewLoaderWithEnv(mockFS, envMap(nil))
	cfg, err := loader.Load(context.Background(), "/settings.yaml", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Azure.Endpoint != "https://example.openai.azure.com/" {
		t.Errorf("unexpected endpoint %q", cfg.Azure.Endpoint)
	}
	if string(cfg.Azure.APIKey) != "file-key" {
		t.Errorf("expected api key from file, got %q", string(cfg.Azure.APIKey))
	}
	if cfg.Azure.Deployment != "gpt-4o" || cfg.Azure.APIVersion != "2024-06-01" {
		t.Errorf("unexpected deployment/version %q/%q", cfg.Azure.Deployment, cfg.Azure.APIVersion)
	}
	if cfg.OutputColor {
		t.Error("expected OutputColor false")
	}
	if missing := cfg.MissingCredentials(); len(missing) != 0 {
		t.Errorf("expected no missing credentials, got %v", missing)
	}
}

func TestLoad_MissingFilesUseDefaults(t *testing.T) {
	loader := NewLoaderWithEnv(NewMockFileSystem(), envMap(nil))

	cfg, err := loader.Load(context.Background(), "/nonexistent/config.yaml", "/nonexistent/.env")
	if err != nil {
		t.Fatalf("missing files should not error, got: %v", err)
	}
	if cfg.Provider != ProviderAzure {
		t.Errorf("expected default provider %q, got %q", ProviderAzure, cfg.Provider)
	}
	if !cfg.OutputColor {
		t.Error("expected default OutputColor true")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files[".env"] = []byte(`# Azure OpenAI
AZURE_OPENAI_API_KEY=dotenv-key
AZURE_OPENAI_ENDPOINT="https://dotenv.openai.azure.com"
AZURE_OPENAI_DEPLOYMENT_NAME=qa-deploy
AZURE_OPENAI_API_VERSION=2024-02-15-preview
`)

	loader := NewLoaderWithEnv(mockFS, envMap(nil))
	cfg, err := loader.Load(context.Background(), "/none.yaml", ".env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(cfg.Azure.APIKey) != "dotenv-key" {
		t.Errorf("expected key from .env, got %q", string(cfg.Azure.APIKey))
	}
	if cfg.Azure.Endpoint != "https://dotenv.openai.azure.com" {
		t.Errorf("expected endpoint from .env, got %q", cfg.Azure.Endpoint)
	}
	if cfg.Azure.Deployment != "qa-deploy" {
		t.Errorf("expected deployment from .env, got %q", cfg.Azure.Deployment)
	}
	if cfg.Azure.APIVersion != "2024-02-15-preview" {
		t.Errorf("expected api version from .env, got %q", cfg.Azure.APIVersion)
	}
}

func TestLoad_EnvironmentWinsOverDotEnvAndFile(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files["/settings.yaml"] = []byte(`
azure:
  api_key: "file-key"
  deployment: "file-deploy"
`)
	mockFS.Files[".env"] = []byte("AZURE_OPENAI_API_KEY=dotenv-key\nAZURE_OPENAI_DEPLOYMENT_NAME=dotenv-deploy\n")

	loader := NewLoaderWithEnv(mockFS, envMap(map[string]string{
		EnvAzureAPIKey: "env-key",
	}))
	cfg, err := loader.Load(context.Background(), "/settings.yaml", ".env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(cfg.Azure.APIKey) != "env-key" {
		t.Errorf("expected env key to win, got %q", string(cfg.Azure.APIKey))
	}
	if cfg.Azure.Deployment != "dotenv-deploy" {
		t.Errorf("expected .env deployment to override file, got %q", cfg.Azure.Deployment)
	}
}

func TestLoad_GeminiProvider(t *testing.T) {
	loader := NewLoaderWithEnv(NewMockFileSystem(), envMap(map[string]string{
		EnvProvider:    " Gemini ",
		EnvGeminiKey:   "g-key",
		EnvGeminiModel: "gemini-2.5-flash",
	}))

	cfg, err := loader.Load(context.Background(), "/none.yaml", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderGemini {
		t.Errorf("expected provider %q, got %q", ProviderGemini, cfg.Provider)
	}
	if string(cfg.Gemini.APIKey) != "g-key" || cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected gemini settings %+v", cfg.Gemini)
	}
	if missing := cfg.MissingCredentials(); len(missing) != 0 {
		t.Errorf("expected no missing credentials, got %v", missing)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.Files["/settings.yaml"] = []byte("azure: [unclosed")

	loader := NewLoaderWithEnv(mockFS, envMap(nil))
	if _, err := loader.Load(context.Background(), "/settings.yaml", ""); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoad_ReadError(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.UserHome = "/home/test"
	mockFS.ReadErrors["/home/test/.config/qa2md/config.yaml"] = errors.New("disk error")

	loader := NewLoaderWithEnv(mockFS, envMap(nil))
	if _, err := loader.Load(context.Background(), "", ""); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestLoad_UserHomeDirError(t *testing.T) {
	mockFS := NewMockFileSystem()
	mockFS.UserHomeErr = errors.New("no home dir")

	loader := NewLoaderWithEnv(mockFS, envMap(nil))
	cfg, err := loader.Load(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected defaults when home is unknown, got: %v", err)
	}
	if cfg.Provider != ProviderAzure {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoad_NoColorVariants(t *testing.T) {
	tests := []struct {
		envValue string
		expected bool
	}{
		{"1", false},
		{"true", false},
		{"TRUE", false},
		{"yes", false},
		{"0", true},
		{"false", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(EnvNoColor+"="+tt.envValue, func(t *testing.T) {
			loader := NewLoaderWithEnv(NewMockFileSystem(), envMap(map[string]string{EnvNoColor: tt.envValue}))

			cfg, err := loader.Load(context.Background(), "/none.yaml", "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.OutputColor != tt.expected {
				t.Errorf("with %s=%q, expected OutputColor=%v, got %v", EnvNoColor, tt.envValue, tt.expected, cfg.OutputColor)
			}
		})
	}
}

func TestMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  Settings
		want []string
	}{
		{
			name: "azure empty",
			cfg:  Settings{Provider: ProviderAzure},
			want: []string{EnvAzureAPIKey, EnvAzureEndpoint, EnvAzureDeployment, EnvAzureAPIVersion},
		},
		{
			name: "azure key only",
			cfg:  Settings{Provider: ProviderAzure, Azure: AzureSettings{APIKey: "k"}},
			want: []string{EnvAzureEndpoint, EnvAzureDeployment, EnvAzureAPIVersion},
		},
		{
			name: "gemini without key",
			cfg:  Settings{Provider: ProviderGemini},
			want: []string{EnvGeminiKey},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.MissingCredentials(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSecretString_Redaction(t *testing.T) {
	s := SecretString("my-secret-key")
	if s.String() != "[REDACTED]" {
		t.Errorf("expected redacted string, got %q", s.String())
	}
	if s.LogValue().String() != "[REDACTED]" {
		t.Errorf("expected redacted log value, got %q", s.LogValue().String())
	}
}

func TestSecretString_MarshalYAML(t *testing.T) {
	s := SecretString("my-secret-key")
	val, err := s.MarshalYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "[REDACTED]" {
		t.Errorf("expected [REDACTED], got %q", val)
	}
}
