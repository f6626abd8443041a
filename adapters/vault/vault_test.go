package vault_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitwing/splitwing/adapters/vault"
	"github.com/splitwing/splitwing/core"
	"github.com/splitwing/splitwing/ports"
)

const sampleToken = "header.payload.signature"

func testVaultRoundTrip(t *testing.T, v ports.TokenVault) {
	t.Helper()
	ctx := context.Background()

	_, err := v.Load(ctx)
	assert.ErrorIs(t, err, core.ErrNoToken)

	require.NoError(t, v.Store(ctx, sampleToken))

	got, err := v.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleToken, got)

	require.NoError(t, v.Clear(ctx))

	_, err = v.Load(ctx)
	assert.ErrorIs(t, err, core.ErrNoToken)

	// Clearing an empty slot is not an error
	require.NoError(t, v.Clear(ctx))
}

func TestMemoryVault(t *testing.T) {
	testVaultRoundTrip(t, vault.NewMemoryVault())
}

func TestFileVault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "splitwing", vault.TokenFileName)
	testVaultRoundTrip(t, vault.NewFileVault(path))
}

func TestFileVaultPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), vault.TokenFileName)
	v := vault.NewFileVault(path)

	require.NoError(t, v.Store(context.Background(), sampleToken))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileVaultEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), vault.TokenFileName)
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := vault.NewFileVault(path).Load(context.Background())
	assert.ErrorIs(t, err, core.ErrNoToken)
}

func TestRedisVault(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	testVaultRoundTrip(t, vault.NewRedisVault(client))
}

func TestRedisVaultOverwrite(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	v := vault.NewRedisVault(client)
	ctx := context.Background()

	require.NoError(t, v.Store(ctx, "a.b.c"))
	require.NoError(t, v.Store(ctx, sampleToken))

	got, err := v.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleToken, got)
}
