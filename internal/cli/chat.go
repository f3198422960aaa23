package cli

import (
	"log/slog"
	"os"

	"github.com/raphaelgruber/contactbot-go/internal/chat"
	"github.com/raphaelgruber/contactbot-go/internal/tui"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start the interactive chat UI. Type 'help' inside the session for the
list of commands; 'exit', 'close' or 'bye' ends the session.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go to the file only.
	logger := fileLogger()

	router := chat.NewRouter(apiClient, apiClient, logger)
	ctrl := chat.NewController(router, logger,
		chat.WithTypingDelay(cfg.TypingDelay, cfg.TypingJitter))

	return tui.Run(ctrl)
}

// fileLogger builds a JSON logger writing to the configured log file. Falls
// back to a discard-level stderr logger when the file cannot be opened.
func fileLogger() *slog.Logger {
	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
	}
	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
}
