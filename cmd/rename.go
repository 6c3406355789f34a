package cmd

import (
	"fmt"
	"strings"

	"github.com/codeveda/codeveda/internal"
	"github.com/spf13/cobra"
)

// renameCmd represents the rename command
var renameCmd = &cobra.Command{
	Use:   "rename <session-id> <new-title>",
	Short: "Rename a session",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args[1:], " ")

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		controller := internal.NewConversationController(store, nil, internal.ToastNotifier{})
		if _, err := controller.Activate(""); err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		session, err := findSession(controller.Sessions(), args[0])
		if err != nil {
			return err
		}

		if err := controller.RenameSession(session.ID, title); err != nil {
			return err
		}

		fmt.Println(headerStyle.Render("✏️  Session renamed"))
		fmt.Println(dateStyle.Render(shortID(session.ID) + " → " + title))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
