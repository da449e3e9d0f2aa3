// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"

	"datahive/admincli/internal/auth"
	"datahive/admincli/internal/backend"
	"datahive/admincli/internal/config"
	errs "datahive/admincli/internal/errors"
)

// app bundles the runtime pieces every command needs: configuration, the
// session manager over the OS keychain, and the API client wired to it.
type app struct {
	cfg     config.Config
	session *auth.Manager
	api     *backend.Client
}

// newApp wires the session manager and the API transport together. The
// transport reports authorization failures to the session manager, and the
// shell (this layer) owns what the user sees when that happens — the
// transport itself knows nothing about presentation.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := auth.KeychainStore()
	if err != nil {
		return nil, errs.Wrap(errs.StorageUnavailable, "opening OS keychain", err)
	}

	sess := auth.NewManager(store)
	sess.SetInvalidationHandler(func() {
		pterm.Println()
		pterm.Println("🔒 Your session has expired or was revoked.")
		pterm.Println("   Please run 'datahive-admin login' to sign in again.")
	})

	api := backend.New(cfg.APIBaseURL, sess.Token)
	api.OnSessionInvalidated(sess.Invalidate)

	return &app{cfg: cfg, session: sess, api: api}, nil
}
