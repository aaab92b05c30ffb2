package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/standup-cli/standup/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		titleColor := color.New(color.FgHiCyan, color.Bold)
		titleColor.Println("Configuration")
		fmt.Printf("  Path:             %s\n", config.GetConfigPath())
		fmt.Printf("  Default provider: %s\n", cfg.DefaultProvider)
		if cfg.DefaultModel != "" {
			fmt.Printf("  Default model:    %s\n", cfg.DefaultModel)
		}
		if cfg.OllamaBaseURL != "" {
			fmt.Printf("  Ollama URL:       %s\n", cfg.OllamaBaseURL)
		}
		if cfg.UserName != "" {
			fmt.Printf("  Author:           %s\n", cfg.UserName)
		}
		if cfg.NotesDir != "" {
			fmt.Printf("  Notes dir:        %s\n", cfg.NotesDir)
		}
		fmt.Printf("  Anthropic key:    %s\n", maskKey(cfg.GetAPIKey("anthropic")))
		fmt.Printf("  Gemini key:       %s\n", maskKey(cfg.GetAPIKey("gemini")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
