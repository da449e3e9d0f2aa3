// Copyright (c) 2025 DataHive
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements session state management for the admin CLI.
//
// This file handles persistence of the credential pair (bearer token plus
// serialized user record) in the OS keychain via internal/keychain.
package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"datahive/admincli/internal/backend"
	"datahive/admincli/internal/keychain"
)

var verboseAuth = os.Getenv("DATAHIVE_VERBOSE") == "1"

// Store abstracts the persistent credential storage. The OS keychain manager
// implements it in production; tests substitute an in-memory store.
type Store interface {
	SaveCredentials(token string, user []byte) error
	LoadToken() (string, error)
	LoadUser() ([]byte, error)
	ClearCredentials() error
}

// KeychainStore returns the OS keychain as a credential Store.
func KeychainStore() (Store, error) {
	return keychain.GetManager()
}

// loadCredentials reads the session pair from the store. It returns ok=false
// for an empty store, a partial pair, or an unparseable user record, so a
// broken session always reads as absent rather than erroring.
func loadCredentials(st Store) (backend.User, string, bool) {
	var user backend.User

	token, err := st.LoadToken()
	if err != nil || token == "" {
		if verboseAuth {
			fmt.Printf("[DEBUG] auth: no stored token (%v)\n", err)
		}
		return user, "", false
	}

	data, err := st.LoadUser()
	if err != nil || len(data) == 0 {
		if verboseAuth {
			fmt.Printf("[DEBUG] auth: token present but no user record (%v)\n", err)
		}
		return user, "", false
	}

	if err := json.Unmarshal(data, &user); err != nil {
		if verboseAuth {
			fmt.Printf("[DEBUG] auth: stored user record unparseable: %v\n", err)
		}
		return user, "", false
	}

	return user, token, true
}

// saveCredentials writes the session pair to the store.
func saveCredentials(st Store, user backend.User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return st.SaveCredentials(token, data)
}

// clearCredentials removes the session pair. Safe to call when already empty.
func clearCredentials(st Store) error {
	return st.ClearCredentials()
}
