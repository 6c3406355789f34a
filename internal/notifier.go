package internal

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Notifier is the non-blocking notification channel for recoverable
// conditions (the toast equivalent). Implementations must not block and
// must never fail the operation that raised the notification.
type Notifier interface {
	// Notify reports an informational event.
	Notify(title, detail string)
	// NotifyError reports a recoverable failure.
	NotifyError(title, detail string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(title, detail string)      {}
func (NopNotifier) NotifyError(title, detail string) {}

var (
	toastTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	toastErrorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196"))

	toastDetailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243"))
)

// ToastNotifier renders notifications to stderr so they never mix with
// command output.
type ToastNotifier struct{}

func (ToastNotifier) Notify(title, detail string) {
	fmt.Fprintln(os.Stderr, toastTitleStyle.Render(title)+" "+toastDetailStyle.Render(detail))
}

func (ToastNotifier) NotifyError(title, detail string) {
	fmt.Fprintln(os.Stderr, toastErrorTitleStyle.Render(title)+" "+toastDetailStyle.Render(detail))
}
