package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New(true, 0, nil)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	etag := c.Set("balance:7", []byte(`{"seed":7}`), time.Minute)
	require.Equal(t, ComputeETag([]byte(`{"seed":7}`)), etag)

	data, got, ok := c.Get("balance:7")
	require.True(t, ok)
	require.Equal(t, etag, got)
	require.JSONEq(t, `{"seed":7}`, string(data))

	now = now.Add(2 * time.Minute)
	_, _, ok = c.Get("balance:7")
	require.False(t, ok, "entry should expire")

	stats := c.Stats()
	require.Equal(t, 1, stats["total_keys"])
	require.Equal(t, 1, stats["expired_keys"])

	c.evict()
	require.Equal(t, 0, c.Stats()["total_keys"])
}

func TestCache_Disabled(t *testing.T) {
	c := New(false, time.Minute, nil)
	etag := c.Set("k", []byte("v"), time.Minute)
	require.NotEmpty(t, etag)
	_, _, ok := c.Get("k")
	require.False(t, ok)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("x"))
	require.False(t, CheckETagMatch("", etag))
	require.True(t, CheckETagMatch("*", etag))
	require.True(t, CheckETagMatch(etag, etag))
	require.False(t, CheckETagMatch(`W/"other"`, etag))
}

func TestCache_Purge(t *testing.T) {
	c := New(true, 0, nil)
	c.Set("roster:summary", []byte(`{}`), time.Minute)
	c.Set("balance:1:1:true", []byte(`{}`), time.Minute)

	require.Equal(t, 2, c.Purge())
	_, _, ok := c.Get("roster:summary")
	require.False(t, ok)
	require.Equal(t, 0, c.Purge())
}
