package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader from an in-memory upload.
func fileHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File[field][0]
}

func TestSaveImageEmptyIsNoOp(t *testing.T) {
	s := NewSaver(t.TempDir())

	url, err := s.SaveImage(nil)
	require.NoError(t, err)
	assert.Empty(t, url)

	url, err = s.SaveImage(fileHeader(t, "imageFile", "empty.png", nil))
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSaveImageWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	s := NewSaver(dir)

	url, err := s.SaveImage(fileHeader(t, "imageFile", "Shot.PNG", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, PublicPrefix))
	assert.True(t, strings.HasSuffix(url, ".png"), "extension lowercased, got %s", url)

	stored := filepath.Join(dir, strings.TrimPrefix(url, PublicPrefix))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveImageDefaultsExtension(t *testing.T) {
	s := NewSaver(t.TempDir())

	url, err := s.SaveImage(fileHeader(t, "imageFile", "noext", []byte("x")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".jpg"))
}
