package filestorage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storage, err := NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)

	fh := multipartFile(t, "student_image", "photo.jpg", "jpeg-bytes")
	ref, err := storage.Save(ctx, fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))

	require.NoError(t, storage.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(ref)))
	assert.True(t, os.IsNotExist(err))

	// Deleting a reference that is already gone is not an error.
	assert.NoError(t, storage.Delete(ctx, ref))
}

func TestLocalStorageNilFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	ref, err := storage.Save(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{
			name: "versioned delivery url",
			ref:  "https://res.cloudinary.com/demo/image/upload/v1712345678/student-info/abc123.jpg",
			want: "student-info/abc123",
		},
		{
			name: "no version segment",
			ref:  "https://res.cloudinary.com/demo/image/upload/student-info/abc123.png",
			want: "student-info/abc123",
		},
		{
			name:    "not a cloudinary url",
			ref:     "https://example.com/files/abc123.png",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := publicIDFromURL(tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
