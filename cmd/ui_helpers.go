package cmd

import (
	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
)

// startSpinner starts a pterm spinner with the terminal cursor hidden.
// The returned function stops the spinner, removes its line and restores the
// cursor; it is safe to call on both success and failure paths.
func startSpinner(text string) func() {
	cursor.Hide()
	sp, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		cursor.Show()
		return func() {}
	}
	return func() {
		_ = sp.Stop()
		cursor.Show()
	}
}

// formatDate reduces an ISO-8601 timestamp to its date part for table cells.
func formatDate(iso string) string {
	if len(iso) >= 10 {
		return iso[:10]
	}
	return iso
}
