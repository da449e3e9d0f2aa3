package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datahive/admincli/internal/auth"
	"datahive/admincli/internal/backend"
	errs "datahive/admincli/internal/errors"
)

// fakeStore is an in-memory credential store for guard tests. loads counts
// token reads so tests can pin how often the store is consulted.
type fakeStore struct {
	token string
	user  []byte
	loads int
}

func (s *fakeStore) SaveCredentials(token string, user []byte) error {
	s.token, s.user = token, user
	return nil
}

func (s *fakeStore) LoadToken() (string, error) {
	s.loads++
	if s.token == "" {
		return "", errors.New("key not found")
	}
	return s.token, nil
}

func (s *fakeStore) LoadUser() ([]byte, error) {
	if len(s.user) == 0 {
		return nil, errors.New("key not found")
	}
	return s.user, nil
}

func (s *fakeStore) ClearCredentials() error {
	s.token, s.user = "", nil
	return nil
}

func TestEnsureSessionWithStoredCredentials(t *testing.T) {
	store := &fakeStore{token: "tok", user: []byte(`{"id":"u1"}`)}
	sess := auth.NewManager(store)

	loginCalled := false
	err := ensureSession(context.Background(), sess, sess.CheckAuthStatus(), func(context.Context) error {
		loginCalled = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, loginCalled, "a valid stored session must not trigger the login flow")
	assert.True(t, sess.Authenticated())
	assert.Equal(t, 1, store.loads, "the gate must read the credential store exactly once")
}

func TestEnsureSessionRunsLoginThenResumes(t *testing.T) {
	sess := auth.NewManager(&fakeStore{})

	// The login flow establishes a session, standing in for the interactive
	// prompt. ensureSession returning nil is what lets the originally
	// requested command proceed.
	err := ensureSession(context.Background(), sess, sess.CheckAuthStatus(), func(context.Context) error {
		return sess.Login(backend.User{ID: "u1", Email: "admin@datahive.co.in"}, "tok-fresh")
	})

	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok-fresh", sess.Token())
}

func TestEnsureSessionPropagatesLoginFailure(t *testing.T) {
	sess := auth.NewManager(&fakeStore{})

	wantErr := errs.New(errs.LoginFailed, "invalid credentials")
	err := ensureSession(context.Background(), sess, sess.CheckAuthStatus(), func(context.Context) error {
		return wantErr
	})

	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.LoginFailed))
	assert.False(t, sess.Authenticated())
}

func TestEnsureSessionRejectsLoginWithoutSession(t *testing.T) {
	sess := auth.NewManager(&fakeStore{})

	// Login flow "succeeds" but never establishes credentials.
	err := ensureSession(context.Background(), sess, sess.CheckAuthStatus(), func(context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.Unauthorized))
}

func TestEnsureSessionWithoutLoginFlow(t *testing.T) {
	sess := auth.NewManager(&fakeStore{})

	err := ensureSession(context.Background(), sess, sess.CheckAuthStatus(), nil)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.Unauthorized))
}
