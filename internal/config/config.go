package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	DefaultProvider string `json:"default_provider"`
	DefaultModel    string `json:"default_model,omitempty"`

	// API keys; environment variables win when set.
	AnthropicAPIKey string `json:"anthropic_api_key,omitempty"`
	GeminiAPIKey    string `json:"gemini_api_key,omitempty"`

	// Ollama config
	OllamaBaseURL string `json:"ollama_base_url,omitempty"`
	OllamaModel   string `json:"ollama_model,omitempty"`

	// Default author filter for reports. Falls back to the global git
	// user.name when empty.
	UserName string `json:"user_name,omitempty"`

	// Overrides the conventional <workspace>/notes lookup when set.
	NotesDir string `json:"notes_dir,omitempty"`
}

var configPath string

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		configPath = ".standup/config.json"
		return
	}
	configPath = filepath.Join(homeDir, ".standup", "config.json")
}

func GetConfigPath() string {
	return configPath
}

func Load() (*Config, error) {
	cfg := &Config{
		DefaultProvider: "ollama",
		OllamaBaseURL:   "http://localhost:11434",
		OllamaModel:     "llama3.2",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) GetAPIKey(provider string) string {
	switch provider {
	case "anthropic":
		if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
			return key
		}
		return c.AnthropicAPIKey
	case "gemini":
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			return key
		}
		return c.GeminiAPIKey
	default:
		return ""
	}
}
