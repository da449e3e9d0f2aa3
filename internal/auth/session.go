// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"datahive/admincli/internal/backend"
)

// Status describes the session state machine.
type Status int

const (
	// StatusUnknown is the initial state before the first CheckAuthStatus.
	StatusUnknown Status = iota
	// StatusAuthenticated means a complete (token, user) pair is in memory.
	StatusAuthenticated
	// StatusUnauthenticated means no session is held.
	StatusUnauthenticated
)

// Manager owns the in-memory session and is the sole writer of the credential
// store. Consumers read the session through Status/User/Token and drive it
// through Login, Logout and CheckAuthStatus.
//
// Invariant: the manager is Authenticated exactly when both token and user
// are set, and the two are always written and cleared together.
type Manager struct {
	store Store

	status Status
	user   backend.User
	token  string

	onInvalidated func()
}

// NewManager creates a session manager over the given store.
// The session starts in StatusUnknown until the first CheckAuthStatus.
func NewManager(store Store) *Manager {
	return &Manager{store: store, status: StatusUnknown}
}

// Status returns the current session state.
func (m *Manager) Status() Status { return m.status }

// Authenticated reports whether a complete session is held.
func (m *Manager) Authenticated() bool { return m.status == StatusAuthenticated }

// User returns the current user. Zero value when not authenticated.
func (m *Manager) User() backend.User { return m.user }

// Token returns the bearer token snapshot current at call time.
// Empty when not authenticated.
func (m *Manager) Token() string { return m.token }

// Login adopts a freshly validated session and writes it through to the
// credential store. Any prior session is overwritten. The store write happens
// first so a persistence failure never leaves memory and storage disagreeing.
func (m *Manager) Login(user backend.User, token string) error {
	if err := saveCredentials(m.store, user, token); err != nil {
		return err
	}
	m.user = user
	m.token = token
	m.status = StatusAuthenticated
	return nil
}

// Logout clears the in-memory session and the credential store.
// Safe to call from any state, including before the first CheckAuthStatus.
func (m *Manager) Logout() error {
	m.user = backend.User{}
	m.token = ""
	m.status = StatusUnauthenticated
	return clearCredentials(m.store)
}

// CheckAuthStatus restores the session from the credential store. A complete
// stored pair is adopted verbatim with no server round-trip; a revoked token
// is only discovered on the first API call that rejects it. An empty or
// partial pair resolves to Unauthenticated.
//
// Called before every protected command, not only at startup, so a session
// cleared out-of-band is noticed on the next use.
func (m *Manager) CheckAuthStatus() bool {
	user, token, ok := loadCredentials(m.store)
	if !ok {
		m.user = backend.User{}
		m.token = ""
		m.status = StatusUnauthenticated
		return false
	}
	m.user = user
	m.token = token
	m.status = StatusAuthenticated
	return true
}

// SetInvalidationHandler registers the callback fired when the transport
// reports the session was rejected by the API. The command shell owns the
// handler so the transport stays free of presentation concerns.
func (m *Manager) SetInvalidationHandler(fn func()) {
	m.onInvalidated = fn
}

// Invalidate drops the session in response to an authorization failure and
// notifies the registered handler.
func (m *Manager) Invalidate() {
	_ = m.Logout()
	if m.onInvalidated != nil {
		m.onInvalidated()
	}
}
