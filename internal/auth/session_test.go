package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datahive/admincli/internal/backend"
)

// memStore is an in-memory credential store for tests. Token and user are
// tracked independently so partial-pair states can be staged.
type memStore struct {
	token    string
	user     []byte
	hasToken bool
	hasUser  bool
}

func (s *memStore) SaveCredentials(token string, user []byte) error {
	s.token, s.hasToken = token, true
	s.user, s.hasUser = user, true
	return nil
}

func (s *memStore) LoadToken() (string, error) {
	if !s.hasToken {
		return "", errors.New("key not found")
	}
	return s.token, nil
}

func (s *memStore) LoadUser() ([]byte, error) {
	if !s.hasUser {
		return nil, errors.New("key not found")
	}
	return s.user, nil
}

func (s *memStore) ClearCredentials() error {
	s.token, s.hasToken = "", false
	s.user, s.hasUser = nil, false
	return nil
}

func testUser() backend.User {
	return backend.User{ID: "u1", Name: "Admin", Email: "admin@datahive.co.in", Role: "admin"}
}

func TestLoginThenCheckAuthStatusRestoresPair(t *testing.T) {
	store := &memStore{}
	m := NewManager(store)

	require.NoError(t, m.Login(testUser(), "tok-123"))

	// A fresh manager over the same store simulates a new process start.
	restored := NewManager(store)
	assert.Equal(t, StatusUnknown, restored.Status())
	require.True(t, restored.CheckAuthStatus())
	assert.Equal(t, testUser(), restored.User())
	assert.Equal(t, "tok-123", restored.Token())
	assert.Equal(t, StatusAuthenticated, restored.Status())
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := &memStore{}
	m := NewManager(store)
	require.NoError(t, m.Login(testUser(), "tok"))

	require.NoError(t, m.Logout())
	require.NoError(t, m.Logout())

	assert.Equal(t, StatusUnauthenticated, m.Status())
	assert.Empty(t, m.Token())
	assert.Equal(t, backend.User{}, m.User())
	assert.False(t, store.hasToken)
	assert.False(t, store.hasUser)
}

func TestLogoutSafeFromUnknownState(t *testing.T) {
	m := NewManager(&memStore{})
	require.NoError(t, m.Logout())
	assert.Equal(t, StatusUnauthenticated, m.Status())
}

func TestAuthenticatedIffPairPresent(t *testing.T) {
	store := &memStore{}
	m := NewManager(store)

	assert.False(t, m.Authenticated())

	require.NoError(t, m.Login(testUser(), "tok"))
	assert.True(t, m.Authenticated())
	assert.NotEmpty(t, m.Token())
	assert.NotEmpty(t, m.User().ID)

	require.NoError(t, m.Logout())
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())
	assert.Empty(t, m.User().ID)
}

func TestPartialStoredPairResolvesUnauthenticated(t *testing.T) {
	cases := []struct {
		name  string
		store *memStore
	}{
		{"token without user", &memStore{token: "tok", hasToken: true}},
		{"user without token", &memStore{user: []byte(`{"id":"u1"}`), hasUser: true}},
		{"malformed user record", &memStore{token: "tok", hasToken: true, user: []byte("{not json"), hasUser: true}},
		{"empty token entry", &memStore{hasToken: true, user: []byte(`{"id":"u1"}`), hasUser: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager(tc.store)
			assert.False(t, m.CheckAuthStatus())
			assert.Equal(t, StatusUnauthenticated, m.Status())
			assert.Empty(t, m.Token())
		})
	}
}

func TestCheckAuthStatusDetectsOutOfBandClear(t *testing.T) {
	store := &memStore{}
	m := NewManager(store)
	require.NoError(t, m.Login(testUser(), "tok"))
	require.True(t, m.CheckAuthStatus())

	// Another process wipes the keychain between commands.
	require.NoError(t, store.ClearCredentials())

	assert.False(t, m.CheckAuthStatus())
	assert.Equal(t, StatusUnauthenticated, m.Status())
}

func TestInvalidateClearsSessionAndNotifiesOnce(t *testing.T) {
	store := &memStore{}
	m := NewManager(store)
	require.NoError(t, m.Login(testUser(), "tok"))

	notified := 0
	m.SetInvalidationHandler(func() { notified++ })

	m.Invalidate()

	assert.Equal(t, 1, notified)
	assert.Equal(t, StatusUnauthenticated, m.Status())
	assert.False(t, store.hasToken)
}

func TestLoginOverwritesPriorSession(t *testing.T) {
	store := &memStore{}
	m := NewManager(store)
	require.NoError(t, m.Login(testUser(), "tok-old"))

	other := backend.User{ID: "u2", Name: "Other", Email: "other@datahive.co.in", Role: "admin"}
	require.NoError(t, m.Login(other, "tok-new"))

	restored := NewManager(store)
	require.True(t, restored.CheckAuthStatus())
	assert.Equal(t, other, restored.User())
	assert.Equal(t, "tok-new", restored.Token())
}
