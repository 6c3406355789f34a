package cmd

import (
	"fmt"
	"strings"

	"github.com/codeveda/codeveda/internal"
	"github.com/spf13/cobra"
)

var showLimit int

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show messages for a specific session",
	Long: `Display the messages of a saved chat session.

The id may be abbreviated to any unique prefix (the list command prints
the first eight characters).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		sessions, err := store.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		session, err := findSession(sessions, args[0])
		if err != nil {
			return err
		}

		header := headerStyle.Render("💬 " + session.Title)
		fmt.Println(header)
		meta := fmt.Sprintf("ID: %s • Messages: %d • Last modified: %s",
			session.ID, len(session.Messages), formatRelativeTime(session.LastModified))
		fmt.Println(dateStyle.Render(meta))
		fmt.Println()

		messages := session.WithoutTyping()
		total := len(messages)
		if showLimit > 0 && showLimit < total {
			messages = messages[total-showLimit:]
		}

		for _, msg := range messages {
			displayMessage(msg)
		}

		if shown := len(messages); shown < total {
			fmt.Println(idStyle.Render(fmt.Sprintf("... (%d earlier message(s) hidden)", total-shown)))
		}
		return nil
	},
}

// findSession resolves an id or unique id prefix against the collection.
func findSession(sessions []*internal.ChatSession, id string) (*internal.ChatSession, error) {
	var matches []*internal.ChatSession
	for _, session := range sessions {
		if session.ID == id {
			return session, nil
		}
		if strings.HasPrefix(session.ID, id) {
			matches = append(matches, session)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("session not found: %s (use 'codeveda list' to see available sessions)", id)
	default:
		return nil, fmt.Errorf("ambiguous session id prefix: %s matches %d sessions", id, len(matches))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "Show only the last N messages")
}
