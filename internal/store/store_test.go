package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGet(t *testing.T) {
	s := New(time.Minute, 10)

	t.Run("get returns what was put", func(t *testing.T) {
		s.Put(KindWorkspace, 1, "Acme")

		v, ok := s.Get(KindWorkspace, 1)
		require.True(t, ok)
		assert.Equal(t, "Acme", v)
	})

	t.Run("absent key misses", func(t *testing.T) {
		_, ok := s.Get(KindWorkspace, 999)
		assert.False(t, ok)
	})

	t.Run("kinds do not collide", func(t *testing.T) {
		s.Put(KindProject, 1, "Website")

		v, ok := s.Get(KindWorkspace, 1)
		require.True(t, ok)
		assert.Equal(t, "Acme", v)

		v, ok = s.Get(KindProject, 1)
		require.True(t, ok)
		assert.Equal(t, "Website", v)
	})

	t.Run("put refreshes value without growing", func(t *testing.T) {
		before := s.Len()
		s.Put(KindWorkspace, 1, "Acme Corp")

		assert.Equal(t, before, s.Len())
		v, ok := s.Get(KindWorkspace, 1)
		require.True(t, ok)
		assert.Equal(t, "Acme Corp", v)
	})
}

func TestStoreTTLExpiration(t *testing.T) {
	s := New(50*time.Millisecond, 10)
	s.Put(KindProject, 10, "Website")

	_, ok := s.Get(KindProject, 10)
	require.True(t, ok, "expected hit before expiry")

	time.Sleep(60 * time.Millisecond)

	// Expired entries still count toward Len until touched.
	assert.Equal(t, 1, s.Len())

	_, ok = s.Get(KindProject, 10)
	assert.False(t, ok, "expected miss after expiry")
	assert.Equal(t, 0, s.Len(), "expired entry should be removed once touched")
}

func TestStoreLRUEviction(t *testing.T) {
	s := New(time.Minute, 3)

	s.Put(KindWorkspace, 1, "a")
	s.Put(KindProject, 2, "b")
	s.Put(KindClient, 3, "c")

	// Touch the oldest entry so it becomes most recently used.
	_, ok := s.Get(KindWorkspace, 1)
	require.True(t, ok)

	// Inserting a fourth entry evicts exactly one entry: the LRU one,
	// which is now (project, 2).
	s.Put(KindProject, 4, "d")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, int64(1), s.Evictions())

	_, ok = s.Get(KindProject, 2)
	assert.False(t, ok, "least-recently-used entry should have been evicted")

	_, ok = s.Get(KindWorkspace, 1)
	assert.True(t, ok, "most recently accessed entry must survive eviction")
	_, ok = s.Get(KindClient, 3)
	assert.True(t, ok)
	_, ok = s.Get(KindProject, 4)
	assert.True(t, ok)
}

func TestStoreInvalidate(t *testing.T) {
	s := New(time.Minute, 10)

	s.Put(KindProject, 10, "Website")
	s.Put(KindProject, 11, "App")
	s.Put(KindClient, 5, "Initech")

	t.Run("single entry", func(t *testing.T) {
		s.Invalidate(KindProject, 10)

		_, ok := s.Get(KindProject, 10)
		assert.False(t, ok)
		_, ok = s.Get(KindProject, 11)
		assert.True(t, ok)
	})

	t.Run("whole kind", func(t *testing.T) {
		s.InvalidateKind(KindProject)

		_, ok := s.Get(KindProject, 11)
		assert.False(t, ok)
		_, ok = s.Get(KindClient, 5)
		assert.True(t, ok, "other kinds must be untouched")
	})

	t.Run("everything", func(t *testing.T) {
		s.InvalidateAll()

		assert.Equal(t, 0, s.Len())
		_, ok := s.Get(KindClient, 5)
		assert.False(t, ok)
	})
}

func TestStoreInvalidateAllResetsEvictions(t *testing.T) {
	s := New(time.Minute, 1)

	s.Put(KindWorkspace, 1, "a")
	s.Put(KindWorkspace, 2, "b")
	require.Equal(t, int64(1), s.Evictions())

	s.InvalidateAll()
	assert.Equal(t, int64(0), s.Evictions())
}
