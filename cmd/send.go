package cmd

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codeveda/codeveda/internal"
	"github.com/spf13/cobra"
)

var (
	sendImageMode bool
	sendLanguage  string
	sendSessionID string
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send [text]",
	Short: "Send one message and print the reply",
	Long: `Send a single message to the assistant and print the reply.

The turn is appended to the most recently used session (or the session
given with --session) and persisted. With --image, the text is treated as
an image description: the assistant generates an image prompt, renders the
image, and the file is saved locally.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if sendLanguage != "" && !internal.IsSupportedLanguage(sendLanguage) {
			return fmt.Errorf("unsupported language: %s", sendLanguage)
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
		if _, err := controller.Activate(sendSessionID); err != nil {
			return fmt.Errorf("failed to activate session: %w", err)
		}

		before := len(controller.ActiveSession().WithoutTyping())
		if err := controller.SendUserText(cmd.Context(), text, sendImageMode, sendLanguage); err != nil {
			return err
		}

		session := controller.ActiveSession()
		messages := session.WithoutTyping()
		if len(messages) == before {
			// Blank input with no image mode is a silent no-op.
			return nil
		}

		last := messages[len(messages)-1]
		displayMessage(last)

		if last.ImageURL != "" {
			path, err := saveImage(last)
			if err != nil {
				internal.LogWarn("Failed to save image: %v", err)
			} else {
				fmt.Println(dateStyle.Render("Image saved to " + path))
			}
		}
		return nil
	},
}

// saveImage decodes a data-URI image payload into
// ~/.codeveda/images/<message-id>.png and returns the path.
func saveImage(msg internal.Message) (string, error) {
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(msg.ImageURL, prefix) {
		return "", fmt.Errorf("unexpected image payload")
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(msg.ImageURL, prefix))
	if err != nil {
		return "", fmt.Errorf("failed to decode image data: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".codeveda", "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	path := filepath.Join(dir, msg.ID+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().BoolVar(&sendImageMode, "image", false, "Treat the text as an image description and generate an image")
	sendCmd.Flags().StringVar(&sendLanguage, "lang", "", "Translate the reply into this language code (e.g. es, fr)")
	sendCmd.Flags().StringVar(&sendSessionID, "session", "", "Send into a specific session id")
}
