package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the QuickAgent server. Values are resolved
// in order: built-in defaults, then an optional YAML file, then environment
// variables.
type Config struct {
	Port      string        `yaml:"port"`
	PublicDir string        `yaml:"public_dir"`
	Caption   CaptionConfig `yaml:"caption"`
	Vision    VisionConfig  `yaml:"vision"`
}

// CaptionConfig selects and configures the text-generation provider used
// for caption generation.
type CaptionConfig struct {
	Provider     string `yaml:"provider"` // "openai", "gemini", or "ollama"
	OpenAIAPIKey string `yaml:"openai_api_key"`
	OpenAIModel  string `yaml:"openai_model"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`
	OllamaURL    string `yaml:"ollama_url"`
	OllamaModel  string `yaml:"ollama_model"`
}

// VisionConfig configures the Google Cloud Vision client. When
// CredentialsFile is empty the client falls back to Application Default
// Credentials.
type VisionConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
}

// Load builds a Config from defaults, the YAML file at path (if non-empty),
// and environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port:      "8080",
		PublicDir: "public",
		Caption: CaptionConfig{
			Provider:    "openai",
			OpenAIModel: "gpt-4o-mini",
			GeminiModel: "gemini-2.5-flash",
			OllamaURL:   "http://localhost:11434",
			OllamaModel: "mistral-small3.2:24b",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Port, "PORT")
	setFromEnv(&cfg.PublicDir, "PUBLIC_DIR")
	setFromEnv(&cfg.Caption.Provider, "CAPTION_PROVIDER")
	setFromEnv(&cfg.Caption.OpenAIAPIKey, "OPENAI_API_KEY")
	setFromEnv(&cfg.Caption.OpenAIModel, "OPENAI_MODEL")
	setFromEnv(&cfg.Caption.GeminiAPIKey, "GEMINI_API_KEY")
	setFromEnv(&cfg.Caption.GeminiModel, "GEMINI_MODEL")
	setFromEnv(&cfg.Caption.OllamaURL, "OLLAMA_URL")
	setFromEnv(&cfg.Caption.OllamaModel, "OLLAMA_MODEL")
	setFromEnv(&cfg.Vision.CredentialsFile, "VISION_CREDENTIALS_FILE")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
