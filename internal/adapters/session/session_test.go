package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI-Driven-Document-Analysis-System/document-analyzer-sub000/internal/core/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	s := NewStore(path)

	assert.Empty(t, s.Token(), "no session file yet")

	require.NoError(t, s.SetToken("tok-1"))
	assert.Equal(t, "tok-1", s.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	require.NoError(t, s.Clear(), "second clear is a no-op")
}

func TestStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s := NewStore(path)
	assert.Empty(t, s.Token())
}

func TestInspectToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user@example.com",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := InspectToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.WithinDuration(t, exp, claims.ExpiresAt, time.Second)
}

func TestInspectTokenGarbage(t *testing.T) {
	_, err := InspectToken("not-a-jwt")
	require.Error(t, err)
}

func TestCacheTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documents.json")
	c := NewCache(path, 10*time.Minute)

	clock := time.Now()
	c.now = func() time.Time { return clock }

	_, ok := c.Get()
	assert.False(t, ok, "empty cache misses")

	docs := []domain.Document{{ID: "d1", Filename: "a.pdf"}}
	require.NoError(t, c.Put(docs))

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, docs, got)

	clock = clock.Add(11 * time.Minute)
	_, ok = c.Get()
	assert.False(t, ok, "expired entry misses")
}

func TestCacheInvalidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "documents.json")
	c := NewCache(path, time.Minute)

	require.NoError(t, c.Put([]domain.Document{{ID: "d1"}}))
	require.NoError(t, c.Invalidate())

	_, ok := c.Get()
	assert.False(t, ok)
	require.NoError(t, c.Invalidate(), "invalidate is idempotent")
}

func TestCacheDisabled(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "x.json"), 0)
	require.NoError(t, c.Put([]domain.Document{{ID: "d1"}}))
	_, ok := c.Get()
	assert.False(t, ok)
}
