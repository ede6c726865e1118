package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	_, err := New(root, "/uploads")
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveRoundTrip(t *testing.T) {
	store, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	content := []byte("fake jpeg bytes")
	name, err := store.Save(7, "IMG 0001.JPG", bytes.NewReader(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "7_"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	got, err := os.ReadFile(filepath.Join(store.Root(), name))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSaveGeneratesDistinctNames(t *testing.T) {
	store, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := store.Save(1, "photo.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(1, "photo.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveSanitizesHostileNames(t *testing.T) {
	root := t.TempDir()
	store, err := New(root, "/uploads")
	require.NoError(t, err)

	for _, hostile := range []string{
		"../../etc/passwd",
		"..\\..\\boot.ini",
		"a/b/../c.png",
		"",
	} {
		name, err := store.Save(3, hostile, strings.NewReader("x"))
		require.NoError(t, err, hostile)

		assert.NotContains(t, name, "/", hostile)
		assert.NotContains(t, name, "\\", hostile)
		assert.NotContains(t, name, "..", hostile)

		// The file must land inside the root, nowhere else.
		_, err = os.Stat(filepath.Join(root, name))
		assert.NoError(t, err, hostile)
	}
}

func TestURLFor(t *testing.T) {
	store, err := New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/1_abc_photo.jpg", store.URLFor("1_abc_photo.jpg"))
}
