// Package cli provides the command-line interface for contactbot.
package cli

import (
	"github.com/raphaelgruber/contactbot-go/internal/client"
	"github.com/raphaelgruber/contactbot-go/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config and API client
	cfg       config.Config
	apiClient *client.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "contactbot",
	Short: "Conversational contact directory",
	Long: `Contactbot is a chat-driven contact directory. Manage contacts, phone
numbers, emails, notes and tags through structured chat commands; anything
else is answered by the configured assistant.

Run 'contactbot chat' for the interactive session, or use the subcommands
for direct one-shot access to the directory.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		apiClient = client.NewWithTimeout(cfg.ServerURL, cfg.ClientTimeout)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
