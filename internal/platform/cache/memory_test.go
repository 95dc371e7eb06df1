package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	_, found, err := c.Get(ctx, "access:perm:u1:system_admin")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "access:perm:u1:system_admin", []byte("1"), time.Minute))
	value, found, err := c.Get(ctx, "access:perm:u1:system_admin")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("1"), value)

	require.NoError(t, c.Remove(ctx, "access:perm:u1:system_admin", "missing"))
	exists, err := c.Exists(ctx, "access:perm:u1:system_admin")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemory(WithClock(func() time.Time { return now }))

	require.NoError(t, c.Set(ctx, "short", []byte("x"), time.Second))
	require.NoError(t, c.Set(ctx, "forever", []byte("y"), 0))

	now = now.Add(2 * time.Second)

	exists, err := c.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists, "entry should expire after its ttl")

	exists, err = c.Exists(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, exists, "zero ttl never expires")
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	in := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", in, 0))
	in[0] = 'z'

	out, _, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}
