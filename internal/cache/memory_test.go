package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connecta/identity-service/internal/cache"
	"github.com/connecta/identity-service/internal/domain/entity"
)

func ident(id, name string) *entity.Identity {
	return &entity.Identity{ID: id, Name: name, Email: name + "@x.com", Active: true}
}

func TestMemory_SetGetInvalidate(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewMemory(4, 0)
	require.NoError(t, err)

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)

	c.Set(ctx, ident("a", "Ana"))
	got, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "Ana", got.Name)

	c.Invalidate(ctx, "a")
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewMemory(4, 0)
	require.NoError(t, err)

	c.Set(ctx, ident("a", "Ana"))
	first, ok := c.Get(ctx, "a")
	require.True(t, ok)
	first.Name = "mutated"

	second, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "Ana", second.Name)
}

func TestMemory_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewMemory(2, 0)
	require.NoError(t, err)

	c.Set(ctx, ident("a", "Ana"))
	c.Set(ctx, ident("b", "Bia"))

	// Touch "a" so "b" is the least recently used entry.
	_, ok := c.Get(ctx, "a")
	require.True(t, ok)

	c.Set(ctx, ident("c", "Caio"))

	_, ok = c.Get(ctx, "b")
	assert.False(t, ok)
	_, ok = c.Get(ctx, "a")
	assert.True(t, ok)
	_, ok = c.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestMemory_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewMemory(4, 20*time.Millisecond)
	require.NoError(t, err)

	c.Set(ctx, ident("a", "Ana"))
	_, ok := c.Get(ctx, "a")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)
}
