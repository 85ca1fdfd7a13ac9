package main

import (
	"BoltPass/internal/crypto"
	"BoltPass/internal/model"
	"BoltPass/internal/repo"
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	// держим соединение открытым, чтобы in-memory БД пережила вызовы run
	db, err := repo.InitDB(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(db) })

	h := crypto.NewHasher()
	oldHash, err := h.Hash("old")
	require.NoError(t, err)
	_, err = repo.NewUserRepository(db).CreateUser(context.Background(), &model.User{Login: "alice", PasswordHash: oldHash})
	require.NoError(t, err)

	t.Run("usage", func(t *testing.T) {
		var out, errOut bytes.Buffer
		assert.Equal(t, 2, run(dsn, []string{"alice"}, &out, &errOut))
		assert.Contains(t, errOut.String(), "usage")
	})

	t.Run("unknown user lists known", func(t *testing.T) {
		var out, errOut bytes.Buffer
		assert.Equal(t, 1, run(dsn, []string{"ghost", "n3w"}, &out, &errOut))
		assert.Contains(t, errOut.String(), "not found")
		assert.Contains(t, errOut.String(), "alice")
	})

	t.Run("ok", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.Equal(t, 0, run(dsn, []string{"alice", "n3w"}, &out, &errOut), errOut.String())
		assert.NotContains(t, out.String(), "n3w")

		u, err := repo.NewUserRepository(db).GetUserByLogin(context.Background(), "alice")
		require.NoError(t, err)
		assert.True(t, h.Verify("n3w", u.PasswordHash))
		assert.False(t, h.Verify("old", u.PasswordHash))
	})
}
