package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUploads(t *testing.T, maxBytes int64) *Uploads {
	t.Helper()
	u, err := NewUploads(t.TempDir(), maxBytes)
	require.NoError(t, err)
	return u
}

func TestUploads_SaveImage(t *testing.T) {
	u := newTestUploads(t, 0)

	t.Run("writes the file", func(t *testing.T) {
		require.NoError(t, u.SaveImage([]byte("png-bytes"), "thumb.png"))

		data, err := os.ReadFile(filepath.Join(u.folderPath, "thumb.png"))
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		err := u.SaveImage([]byte("other"), "thumb.png")
		assert.True(t, errors.Is(err, ErrFileExists))
	})

	t.Run("rejects empty data", func(t *testing.T) {
		assert.True(t, errors.Is(u.SaveImage(nil, "x.png"), ErrInvalidImage))
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		err := u.SaveImage([]byte("data"), "../escape.png")
		assert.True(t, errors.Is(err, ErrInvalidFileName))
	})

	t.Run("rejects unknown extension", func(t *testing.T) {
		err := u.SaveImage([]byte("data"), "payload.exe")
		assert.True(t, errors.Is(err, ErrInvalidFileName))
	})
}

func TestUploads_SizeLimit(t *testing.T) {
	u := newTestUploads(t, 4)

	err := u.SaveImage([]byte("12345"), "big.png")
	assert.True(t, errors.Is(err, ErrImageTooLarge))

	require.NoError(t, u.SaveImage([]byte("1234"), "ok.png"))

	u.SetMaxBytes(2)
	err = u.SaveImage([]byte("123"), "later.png")
	assert.True(t, errors.Is(err, ErrImageTooLarge))
}

func TestUploads_DeleteImage(t *testing.T) {
	u := newTestUploads(t, 0)

	require.NoError(t, u.SaveImage([]byte("data"), "gone.png"))
	require.NoError(t, u.DeleteImage("gone.png"))

	err := u.DeleteImage("gone.png")
	assert.True(t, errors.Is(err, ErrFileNotExists))
}

func TestUploads_ReplaceImage(t *testing.T) {
	u := newTestUploads(t, 0)

	require.NoError(t, u.SaveImage([]byte("old"), "old.png"))
	require.NoError(t, u.ReplaceImage([]byte("new"), "old.png", "new.png"))

	_, err := os.Stat(filepath.Join(u.folderPath, "old.png"))
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(u.folderPath, "new.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)

	// Replacing a missing original still writes the new file.
	require.NoError(t, u.ReplaceImage([]byte("again"), "never-there.png", "again.png"))
}
