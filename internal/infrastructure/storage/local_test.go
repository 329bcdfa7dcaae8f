package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_WriteAndURL(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.EnsureFolder("articles"))
	require.NoError(t, s.WriteFile("articles", "pic.webp", []byte("image-bytes")))

	data, err := os.ReadFile(filepath.Join(s.FolderPath("articles"), "pic.webp"))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	assert.Equal(t, "/uploads/articles/pic.webp", s.PublicURL("articles", "pic.webp"))
}

func TestLocalStorage_EnsureFolderIdempotent(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.EnsureFolder("general"))
	require.NoError(t, s.EnsureFolder("general"))
}

func TestLocalStorage_ConcurrentWritesDoNotCollide(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.EnsureFolder("general"))

	const n = 16
	names := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		names[i] = uuid.New().String() + ".bin"
		wg.Add(1)
		go func(name string, payload byte) {
			defer wg.Done()
			assert.NoError(t, s.WriteFile("general", name, []byte{payload}))
		}(names[i], byte(i))
	}
	wg.Wait()

	// Every file exists with its own content: no overwrites.
	seen := map[string]bool{}
	for i, name := range names {
		require.False(t, seen[name], "uuid collision")
		seen[name] = true

		data, err := os.ReadFile(filepath.Join(s.FolderPath("general"), name))
		require.NoError(t, err)
		assert.Equal(t, []byte{byte(i)}, data)
	}
}
