package cmd

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/codeveda/codeveda/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "codeveda",
	Short: "Chat with the CodeVeda AI assistant from your terminal",
	Long: `CodeVeda is a terminal AI chat client with locally persisted history.

Conversations are stored as named sessions in a local database, so you can
pick up where you left off, browse old chats, and export them.

Features:
  • Interactive chat and one-shot messages
  • Replies translated into your language (--lang)
  • Image generation turns (--image)
  • Multiple named sessions with local persistence
  • Export in multiple formats (JSONL, Markdown, YAML, JSON)

Quick Start:
  codeveda chat                     # Start chatting
  codeveda send "hello there"       # One-shot message
  codeveda list                     # List saved sessions
  codeveda show <session-id>        # View a session

Set OPENAI_API_KEY in your environment before chatting.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom storage location (path to the session database file)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// openStore opens the session database and wraps it in a SessionStore.
// The caller owns closing the returned database.
func openStore() (*sql.DB, *internal.SessionStore, error) {
	path, err := internal.ResolveStoragePath(storagePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve storage path: %w", err)
	}
	db, err := internal.OpenDatabase(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	internal.LogDebug("Using storage at %s", path)
	store := internal.NewSessionStore(db, internal.ToastNotifier{})
	return db, store, nil
}

// newAssistant builds the remote assistant from the environment.
func newAssistant() (internal.Assistant, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return internal.NewOpenAIAssistant(key), nil
}
