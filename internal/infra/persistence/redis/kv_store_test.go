package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, namespace string) (*miniredis.Miniredis, *kvStore) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return srv, NewKVStore(client, namespace).(*kvStore)
}

func TestKVStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	srv, store := newTestStore(t, "fieldops")

	_, ok, err := store.Get(ctx, "goals")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "goals", []byte(`[]`)))
	assert.True(t, srv.Exists("fieldops:goals"))

	got, ok, err := store.Get(ctx, "goals")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, store.Clear(ctx, "goals"))
	assert.False(t, srv.Exists("fieldops:goals"))
}

func TestKVStore_NoNamespace(t *testing.T) {
	ctx := context.Background()
	srv, store := newTestStore(t, "")

	require.NoError(t, store.Set(ctx, "session/abc", []byte("x")))
	assert.True(t, srv.Exists("session/abc"))
}

func TestKVStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	srv, store := newTestStore(t, "")
	srv.Close()

	_, _, err := store.Get(ctx, "goals")
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, "goals", []byte("x")))
}
