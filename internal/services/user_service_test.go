package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskman/internal/errors"
)

func setupUserService(t *testing.T) (UserService, *mockRepository) {
	t.Helper()
	repo := newMockRepository()
	repo.creds = map[string]string{"admin": "password", "alice": "a1"}

	svc := NewUserService(repo)
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo
}

func TestUserService_Load(t *testing.T) {
	t.Run("loads the persisted mapping", func(t *testing.T) {
		svc, _ := setupUserService(t)
		assert.Len(t, svc.Credentials(), 2)
	})

	t.Run("nil mapping becomes empty", func(t *testing.T) {
		repo := newMockRepository()
		repo.creds = nil
		svc := NewUserService(repo)

		require.NoError(t, svc.Load(context.Background()))
		assert.NotNil(t, svc.Credentials())
		assert.Empty(t, svc.Credentials())
	})

	t.Run("load failure is returned", func(t *testing.T) {
		repo := newMockRepository()
		repo.loadCredsErr = errors.NewStorageError("read users file", fmt.Errorf("boom"))
		svc := NewUserService(repo)

		assert.Error(t, svc.Load(context.Background()))
	})
}

func TestUserService_Credentials_ReturnsCopy(t *testing.T) {
	svc, _ := setupUserService(t)

	view := svc.Credentials()
	view["intruder"] = "x"

	assert.False(t, svc.Exists("intruder"))
}

func TestUserService_Usernames_Sorted(t *testing.T) {
	svc, _ := setupUserService(t)
	require.NoError(t, svc.Register(context.Background(), "zed", "z1"))
	require.NoError(t, svc.Register(context.Background(), "bob", "b2"))

	assert.Equal(t, []string{"admin", "alice", "bob", "zed"}, svc.Usernames())
}

func TestUserService_Exists(t *testing.T) {
	svc, _ := setupUserService(t)

	assert.True(t, svc.Exists("admin"))
	assert.False(t, svc.Exists("carol"))
}

func TestUserService_Authenticate(t *testing.T) {
	svc, _ := setupUserService(t)

	t.Run("valid credentials", func(t *testing.T) {
		assert.NoError(t, svc.Authenticate("admin", "password"))
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.Authenticate("carol", "whatever")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("wrong password", func(t *testing.T) {
		err := svc.Authenticate("admin", "wrong")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("adds and persists a new entry", func(t *testing.T) {
		svc, repo := setupUserService(t)

		require.NoError(t, svc.Register(ctx, "bob", "b2"))

		assert.True(t, svc.Exists("bob"))
		assert.Equal(t, "b2", repo.creds["bob"])
	})

	t.Run("trims the username", func(t *testing.T) {
		svc, _ := setupUserService(t)

		require.NoError(t, svc.Register(ctx, "  bob  ", "b2"))
		assert.True(t, svc.Exists("bob"))
	})

	t.Run("existing username conflicts and is never overwritten", func(t *testing.T) {
		svc, repo := setupUserService(t)

		err := svc.Register(ctx, "alice", "newpass")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
		assert.Equal(t, "a1", repo.creds["alice"])
		assert.NoError(t, svc.Authenticate("alice", "a1"))
	})

	t.Run("invalid username rejected", func(t *testing.T) {
		svc, _ := setupUserService(t)

		err := svc.Register(ctx, "bad name", "pw")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("empty password rejected", func(t *testing.T) {
		svc, _ := setupUserService(t)

		err := svc.Register(ctx, "bob", "")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("save failure keeps the entry in memory", func(t *testing.T) {
		svc, repo := setupUserService(t)
		repo.saveCredsErr = errors.NewStorageError("write users file", fmt.Errorf("disk full"))

		err := svc.Register(ctx, "bob", "b2")

		assert.Error(t, err)
		assert.True(t, svc.Exists("bob"), "the mutation is retained despite the failed save")
		assert.NotContains(t, repo.creds, "bob")
	})
}
