package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codeveda/codeveda/internal"
	"github.com/codeveda/codeveda/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
	sessionID string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to file",
	Long: `Export chat sessions to various formats (jsonl, md, yaml, json).

You can export all sessions or a specific session by ID.
Use 'codeveda list' to see available session IDs.`,
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

		// Filter by session ID if specified
		if sessionID != "" {
			session, err := findSession(sessions, sessionID)
			if err != nil {
				return err
			}
			sessions = []*internal.ChatSession{session}
		}

		// Create exporter
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		// Ensure output directory exists
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		exported := 0
		for _, session := range sessions {
			if session == nil {
				internal.LogWarn("Skipping nil session")
				continue
			}
			filename := fmt.Sprintf("session_%s.%s", session.ID, exporter.Extension())
			filepath := filepath.Join(outputDir, filename)

			file, err := os.Create(filepath)
			if err != nil {
				internal.LogError("Failed to create file %s: %v", filepath, err)
				continue
			}

			if err := exporter.Export(session, file); err != nil {
				_ = file.Close()
				internal.LogError("Failed to export session %s: %v", session.ID, err)
				continue
			}

			if err := file.Close(); err != nil {
				internal.LogWarn("Failed to close file %s: %v", filepath, err)
			}
			exported++
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("📦 Export complete: %d session(s) exported to %s", exported, outputDir)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format (jsonl, md, yaml, json)")
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "./exports", "Output directory")
	exportCmd.Flags().StringVar(&sessionID, "session-id", "", "Export a specific session by ID")
}
