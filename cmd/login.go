// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	errs "datahive/admincli/internal/errors"
	"datahive/admincli/internal/httperrors"
	"datahive/admincli/internal/terminal"
)

// maxLoginAttempts bounds the interactive retry loop on bad credentials.
const maxLoginAttempts = 3

// loginCmd represents the login command for email/password authentication.
// It prompts for admin credentials, exchanges them for a bearer token at the
// API and stores the resulting session pair in the OS keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to the DataHive admin API",
	Long: `The login command prompts for your admin email and password and exchanges
them for a bearer token. The token and your user record are stored securely
in the OS keychain, so subsequent commands run without signing in again.

If already logged in with stored credentials, the command short-circuits.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		// If a stored session exists, short-circuit
		if a.session.CheckAuthStatus() {
			u := a.session.User()
			pterm.Printf("Already logged in as %s\n", u.Email)
			return nil
		}

		return promptLogin(cmd.Context(), a)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

// promptLogin runs the interactive credential flow: prompt for email and
// password, call the login endpoint, and adopt the returned session. Bad
// credentials keep the prompt open for another attempt, up to
// maxLoginAttempts; the failed attempt changes no session state.
func promptLogin(ctx context.Context, a *app) error {
	for attempt := 1; ; attempt++ {
		email, password, err := readCredentials()
		if err != nil {
			return err
		}

		stop := startSpinner("Signing in")
		user, token, err := a.api.Login(ctx, email, password)
		stop()

		if err == nil {
			if err := a.session.Login(user, token); err != nil {
				return errs.Wrap(errs.StorageUnavailable, "saving session to OS keychain", err)
			}
			name := user.Name
			if name == "" {
				name = user.Email
			}
			pterm.Printf("✅ Logged in as %s\n", name)
			return nil
		}

		if errs.IsKind(err, errs.LoginFailed) {
			pterm.Printf("❌ Login failed: %s\n", loginFailureMessage(err))
			if attempt < maxLoginAttempts {
				pterm.Println("   Please try again.")
				continue
			}
			return err
		}

		// Network-level failure: explain and bail out
		return httperrors.FormatNetworkError(err, "signing in")
	}
}

// readCredentials prompts for email and password on the terminal. The
// password is read without echo; its prompt line is cleared afterwards so no
// trace of the entry remains on screen.
func readCredentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", "", errors.New("email is required")
	}

	passPrompt := "Password: "
	fmt.Print(passPrompt)
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", err
	}
	terminal.ClearPreviousLines(len(passPrompt))

	password := strings.TrimSpace(string(passBytes))
	if password == "" {
		return "", "", errors.New("password is required")
	}

	return email, password, nil
}

// loginFailureMessage strips the machine-readable kind prefix for display.
func loginFailureMessage(err error) string {
	var e *errs.E
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
