// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for
// the DataHive admin CLI. It manages all interactions with the OS
// keychain/credential store and holds the persisted admin session pair:
// the bearer token and the serialized user record.
//
// The package supports macOS Keychain and Windows Credential Manager, with a
// native `security` command backend on macOS and the keyring library as
// fallback.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "datahive-admin"

// Keys used for storing the session pair in the OS keychain.
// Two entries mirror the two records the admin web client kept: the opaque
// bearer token and the JSON-encoded user.
const (
	KeyAdminToken = "admin_token"
	KeyAdminUser  = "admin_user"
)

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}

	return &Manager{
		ring: ring,
	}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only.
// Forces use of macOS Keychain or Windows Credential Manager - no file fallback.
func openRing() (keyring.Keyring, error) {
	if runtime.GOOS != "darwin" && runtime.GOOS != "windows" {
		return nil, errors.New("secure storage not supported on this OS (macOS/Windows only)")
	}

	var allowedBackends []keyring.BackendType
	if runtime.GOOS == "darwin" {
		// Try macOS Keychain first, then pass (password store) as fallback
		// Pass requires 'pass' utility installed: brew install pass
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
		}
	} else if runtime.GOOS == "windows" {
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}

	// Hint prefixes where supported to minimize namespace collisions
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, err
	}

	return ring, nil
}

// SaveCredentials stores the bearer token and the serialized user record in
// the OS keychain. Both entries are written under one lock so other callers
// never observe a half-written pair.
// This method is thread-safe.
func (m *Manager) SaveCredentials(token string, user []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		if err := m.backend.Set(KeyAdminToken, token); err != nil {
			return err
		}
		return m.backend.Set(KeyAdminUser, string(user))
	}

	if err := m.ring.Set(keyring.Item{Key: KeyAdminToken, Data: []byte(token)}); err != nil {
		return err
	}
	return m.ring.Set(keyring.Item{Key: KeyAdminUser, Data: user})
}

// LoadToken retrieves the bearer token from the keychain.
// This method is thread-safe.
func (m *Manager) LoadToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		token, err := m.backend.Get(KeyAdminToken)
		if err != nil {
			return "", err
		}
		if token == "" {
			return "", errors.New("empty token")
		}
		return token, nil
	}

	it, err := m.ring.Get(KeyAdminToken)
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", errors.New("empty token")
	}
	return string(it.Data), nil
}

// LoadUser retrieves the serialized user record from the keychain.
// This method is thread-safe.
func (m *Manager) LoadUser() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		data, err := m.backend.Get(KeyAdminUser)
		if err != nil {
			return nil, err
		}
		return []byte(data), nil
	}

	it, err := m.ring.Get(KeyAdminUser)
	if err != nil {
		return nil, err
	}
	return it.Data, nil
}

// ClearCredentials removes the session pair from the keychain. Missing
// entries are not an error, so clearing an already-empty keychain is safe.
// This method is thread-safe.
func (m *Manager) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		_ = m.backend.Delete(KeyAdminToken)
		_ = m.backend.Delete(KeyAdminUser)
		return nil
	}

	_ = m.ring.Remove(KeyAdminToken)
	_ = m.ring.Remove(KeyAdminUser)
	return nil
}
