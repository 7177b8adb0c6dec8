package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickagent",
		Short: "Marketplace seller backend for visual product search and caption generation",
		Long: `QuickAgent is a backend for marketplace sellers in Uganda.

It scans product photos with Google Cloud Vision web detection to find
matching listings across the web, and generates marketing captions for
Facebook Marketplace using an LLM provider (OpenAI, Gemini, or Ollama).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())

	return cmd
}
