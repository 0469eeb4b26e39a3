package driver

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addcheck/internal/diag"
)

func TestDiskCacheRoundtrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	text := "1 + 1 )"
	key := sha256.Sum256([]byte(text))
	in := &CachePayload{
		Schema:  cacheSchemaVersion,
		Text:    text,
		OK:      false,
		Code:    uint16(diag.RecTrailingInput),
		Index:   3,
		Token:   ")",
		InRange: true,
		Message: "unconsumed tokens after expression at token 3 (\")\")",
	}
	require.NoError(t, cache.Put(key, in))

	var out CachePayload
	hit, err := cache.Get(key, text, &out)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, *in, out)
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	var out CachePayload
	hit, err := cache.Get(sha256.Sum256([]byte("never stored")), "never stored", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDiskCacheTextMismatchIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	key := sha256.Sum256([]byte("1 + 2"))
	require.NoError(t, cache.Put(key, &CachePayload{Schema: cacheSchemaVersion, Text: "1 + 2", OK: true}))

	var out CachePayload
	hit, err := cache.Get(key, "3 + 4", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCheckCached(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)

	// Cold: validates and stores
	first, err := CheckCached(cache, "expr#1", "( 1 )", 100)
	require.NoError(t, err)
	require.False(t, first.OK)
	require.Equal(t, 1, first.Bag.Len())

	// Warm: served from the cache with the same verdict and position
	second, err := CheckCached(cache, "expr#1", "( 1 )", 100)
	require.NoError(t, err)
	require.False(t, second.OK)
	require.Equal(t, 1, second.Bag.Len())

	d1, d2 := first.Bag.Items()[0], second.Bag.Items()[0]
	assert.Equal(t, d1.Code, d2.Code)
	assert.Equal(t, d1.Primary.Start, d2.Primary.Start)
	assert.Equal(t, d1.Primary.End, d2.Primary.End)
	assert.Equal(t, d1.Message, d2.Message)

	// Accepted expressions cache too
	ok1, err := CheckCached(cache, "expr#2", "1 + 2", 100)
	require.NoError(t, err)
	ok2, err := CheckCached(cache, "expr#2", "1 + 2", 100)
	require.NoError(t, err)
	assert.True(t, ok1.OK)
	assert.True(t, ok2.OK)
	assert.Equal(t, 0, ok2.Bag.Len())
}

func TestCheckCachedNilCache(t *testing.T) {
	result, err := CheckCached(nil, "e", "1 + 2", 100)
	require.NoError(t, err)
	assert.True(t, result.OK)
}
