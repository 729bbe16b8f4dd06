package tmdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetSet(t *testing.T) {
	c := newCache(time.Hour)

	_, ok := c.get("/3/movie/550?language=es-MX")
	assert.False(t, ok, "empty cache should miss")

	c.set("/3/movie/550?language=es-MX", []byte(`{"id":550}`))

	got, ok := c.get("/3/movie/550?language=es-MX")
	require.True(t, ok, "should hit after set")
	assert.JSONEq(t, `{"id":550}`, string(got))

	_, ok = c.get("/3/movie/550?language=en-US")
	assert.False(t, ok, "different language should miss")
}

func TestCache_Expiry(t *testing.T) {
	c := newCache(10 * time.Millisecond)

	c.set("k", []byte("v"))
	_, ok := c.get("k")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = c.get("k")
	assert.False(t, ok, "should miss after TTL")
	assert.Equal(t, 1, c.prune())
	assert.Equal(t, 0, c.prune())
}
