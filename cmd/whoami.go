package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying current
// authentication state. The stored session is adopted as-is without a server
// round-trip; a revoked token only surfaces on the next API call.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays the admin account of the stored session, if one
exists. It restores the session from the OS keychain without contacting the
API, so it also works offline.

If no valid session exists, it will indicate that you are not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if !a.session.CheckAuthStatus() {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'datahive-admin login' to get started.")
			return nil
		}

		u := a.session.User()
		fmt.Printf("👤 Current user: %s <%s>\n", u.Name, u.Email)
		if u.Role != "" {
			fmt.Printf("   Role: %s\n", u.Role)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
