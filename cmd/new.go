package cmd

import (
	"fmt"

	"github.com/codeveda/codeveda/internal"
	"github.com/spf13/cobra"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new chat session",
	Long: `Create a new chat session and make it the active one.

If the current session is still just the welcome message, it is reused
instead of piling up empty sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		// The remote assistant is not needed to manage sessions.
		controller := internal.NewConversationController(store, nil, internal.ToastNotifier{})
		if _, err := controller.Activate(""); err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		session, err := controller.StartNewSession()
		if err != nil {
			return fmt.Errorf("failed to start new session: %w", err)
		}

		fmt.Println(headerStyle.Render("💬 New chat started"))
		fmt.Println(dateStyle.Render("ID: " + session.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
