package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/codeveda/codeveda/internal"
	"github.com/spf13/cobra"
)

var (
	chatLanguage  string
	chatSessionID string
)

var promptStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively with the assistant",
	Long: `Start an interactive chat session.

Every turn is persisted as it happens. Input is read line by line; a turn
must finish before the next line is sent, so requests never overlap.

Commands inside the chat:
  /image <description>   Generate an image instead of a text reply
  /new                   Start a new session
  /quit                  Leave the chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if chatLanguage != "" && !internal.IsSupportedLanguage(chatLanguage) {
			return fmt.Errorf("unsupported language: %s", chatLanguage)
		}

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		assistant, err := newAssistant()
		if err != nil {
			return err
		}

		controller := internal.NewConversationController(store, assistant, internal.ToastNotifier{})
		session, err := controller.Activate(chatSessionID)
		if err != nil {
			return fmt.Errorf("failed to activate session: %w", err)
		}

		fmt.Println(headerStyle.Render("💬 " + session.Title))
		for _, msg := range session.WithoutTyping() {
			displayMessage(msg)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(promptStyle.Render("You ❯ "))
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())

			imageMode := false
			switch {
			case line == "/quit" || line == "/exit":
				return scanner.Err()
			case line == "/new":
				session, err = controller.StartNewSession()
				if err != nil {
					return fmt.Errorf("failed to start new session: %w", err)
				}
				fmt.Println(headerStyle.Render("💬 " + session.Title))
				displayMessage(session.Messages[0])
				continue
			case strings.HasPrefix(line, "/image "):
				imageMode = true
				line = strings.TrimSpace(strings.TrimPrefix(line, "/image "))
			case strings.HasPrefix(line, "/"):
				fmt.Println(dateStyle.Render("Unknown command: " + line))
				continue
			}

			before := len(controller.ActiveSession().WithoutTyping())
			if err := controller.SendUserText(cmd.Context(), line, imageMode, chatLanguage); err != nil {
				return err
			}

			messages := controller.ActiveSession().WithoutTyping()
			if len(messages) == before {
				continue
			}
			last := messages[len(messages)-1]
			displayMessage(last)

			if last.ImageURL != "" {
				if path, err := saveImage(last); err != nil {
					internal.LogWarn("Failed to save image: %v", err)
				} else {
					fmt.Println(dateStyle.Render("Image saved to " + path))
				}
			}
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVar(&chatLanguage, "lang", "", "Translate replies into this language code (e.g. es, fr)")
	chatCmd.Flags().StringVar(&chatSessionID, "session", "", "Resume a specific session id")
}
