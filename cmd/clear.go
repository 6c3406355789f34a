package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/codeveda/codeveda/internal"
	"github.com/spf13/cobra"
)

var clearForce bool

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all sessions and start fresh",
	Long:  `Delete every saved session and start over with a single fresh chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearForce {
			fmt.Print("Delete all saved sessions? This cannot be undone. [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		controller := internal.NewConversationController(store, nil, internal.ToastNotifier{})
		if _, err := controller.Activate(""); err != nil {
			return fmt.Errorf("failed to load sessions: %w", err)
		}

		if _, err := controller.ClearAll(); err != nil {
			return fmt.Errorf("failed to clear sessions: %w", err)
		}

		fmt.Println(headerStyle.Render("🧹 History cleared, new chat started"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip the confirmation prompt")
}
