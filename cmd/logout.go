// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the stored token and user record from the OS keychain. Safe to
// run when already logged out.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session from this machine",
	Long: `The logout command clears the stored admin session: the bearer token and
the cached user record are removed from the OS keychain. The server-side
token lifetime is unaffected; the server remains responsible for expiry.

Running logout while already logged out is harmless.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.session.Logout(); err != nil {
			return err
		}

		pterm.Println("✅ Session cleared. See you next time!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
