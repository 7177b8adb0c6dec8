package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Shield the test from ambient environment
	for _, key := range []string{"PORT", "PUBLIC_DIR", "CAPTION_PROVIDER", "OPENAI_MODEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.PublicDir != "public" {
		t.Errorf("PublicDir = %q, want public", cfg.PublicDir)
	}
	if cfg.Caption.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Caption.Provider)
	}
	if cfg.Caption.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want gpt-4o-mini", cfg.Caption.OpenAIModel)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickagent.yaml")
	data := []byte(`port: "9000"
public_dir: web
caption:
  provider: gemini
  gemini_model: gemini-custom
vision:
  credentials_file: /etc/quickagent/sa.json
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Writing config file returned error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Port)
	}
	if cfg.PublicDir != "web" {
		t.Errorf("PublicDir = %q, want web", cfg.PublicDir)
	}
	if cfg.Caption.Provider != "gemini" {
		t.Errorf("Provider = %q, want gemini", cfg.Caption.Provider)
	}
	if cfg.Caption.GeminiModel != "gemini-custom" {
		t.Errorf("GeminiModel = %q, want gemini-custom", cfg.Caption.GeminiModel)
	}
	if cfg.Vision.CredentialsFile != "/etc/quickagent/sa.json" {
		t.Errorf("CredentialsFile = %q", cfg.Vision.CredentialsFile)
	}
	// Fields absent from the file keep their defaults
	if cfg.Caption.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want default", cfg.Caption.OpenAIModel)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quickagent.yaml")
	if err := os.WriteFile(path, []byte(`port: "9000"`), 0644); err != nil {
		t.Fatalf("Writing config file returned error: %v", err)
	}

	t.Setenv("PORT", "7777")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7777" {
		t.Errorf("Port = %q, want env override 7777", cfg.Port)
	}
	if cfg.Caption.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q, want sk-test", cfg.Caption.OpenAIAPIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
