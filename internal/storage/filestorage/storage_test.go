package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	storage "nordlys_studio/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T) *storage.LocalFileStorage {
	t.Helper()

	fs, err := storage.NewLocalFileStorage(t.TempDir(), "http://studio.local/uploads")
	require.NoError(t, err)

	return fs
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful save", func(t *testing.T) {
		testFile := createTestFile(t, "wedding.jpg", "image bytes")

		filePath, size, err := fs.Save(ctx, testFile, filepath.Join("projects", "anna-erik"))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("projects", "anna-erik", "wedding.jpg"), filePath)
		assert.Equal(t, int64(len("image bytes")), size)

		data, err := os.ReadFile(fs.GetFullPath(filePath))
		require.NoError(t, err)
		assert.Equal(t, "image bytes", string(data))
	})

	t.Run("save with empty subpath", func(t *testing.T) {
		testFile := createTestFile(t, "cover.jpg", "data")

		filePath, _, err := fs.Save(ctx, testFile, "")
		require.NoError(t, err)
		assert.Equal(t, "cover.jpg", filePath)
	})

	t.Run("save with cancelled context", func(t *testing.T) {
		testFile := createTestFile(t, "late.jpg", "data")

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := fs.Save(ctx, testFile, "projects")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		testFile := createTestFile(t, "to_delete.jpg", "data")

		filePath, _, err := fs.Save(ctx, testFile, "")
		require.NoError(t, err)

		require.NoError(t, fs.Delete(ctx, filePath))

		_, err = os.Stat(fs.GetFullPath(filePath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		err := fs.Delete(ctx, "nonexistent.jpg")
		assert.Error(t, err)
	})
}

func TestLocalFileStorage_PublicURL(t *testing.T) {
	fs := setupFileStorage(t)

	url := fs.PublicURL(filepath.Join("projects", "anna-erik", "wedding.jpg"))
	assert.Equal(t, "http://studio.local/uploads/projects/anna-erik/wedding.jpg", url)
}

func TestNewLocalFileStorage(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		fs, err := storage.NewLocalFileStorage(t.TempDir(), "http://studio.local")
		require.NoError(t, err)
		assert.NotNil(t, fs)
	})

	t.Run("invalid directory", func(t *testing.T) {
		_, err := storage.NewLocalFileStorage("/proc/invalid/path", "http://studio.local")
		assert.Error(t, err)
	})
}
