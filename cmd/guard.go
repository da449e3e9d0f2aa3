// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"github.com/pterm/pterm"

	"datahive/admincli/internal/auth"
	errs "datahive/admincli/internal/errors"
)

// ensureSession validates the stored session before a protected command runs.
// authenticated is the result of the caller's single CheckAuthStatus read, so
// the credential store is consulted once per gate. When no valid session
// exists, loginFlow is run and the session re-checked. Because the calling
// command's body only runs after this returns, a login triggered here resumes
// the originally requested action rather than dumping the user at a default
// landing screen.
func ensureSession(ctx context.Context, sess *auth.Manager, authenticated bool, loginFlow func(context.Context) error) error {
	if authenticated {
		return nil
	}
	if loginFlow == nil {
		return errs.New(errs.Unauthorized, "not logged in")
	}
	if err := loginFlow(ctx); err != nil {
		return err
	}
	if !sess.CheckAuthStatus() {
		return errs.New(errs.Unauthorized, "login did not produce a session")
	}
	return nil
}

// requireAuth is the gate every protected command passes through. The check
// happens on every protected command, so credentials cleared out-of-band
// (another terminal, keychain edits) are caught at the next use.
func (a *app) requireAuth(ctx context.Context) error {
	stop := startSpinner("Checking session")
	ok := a.session.CheckAuthStatus()
	stop()
	if ok {
		return nil
	}

	pterm.Println("🔒 You're not logged in yet — let's sign you in first.")
	return ensureSession(ctx, a.session, ok, func(ctx context.Context) error {
		return promptLogin(ctx, a)
	})
}
