package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

// LocalStorage saves files under a directory on the server and returns
// references of the form /uploads/<name>, served statically by the router.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed. baseURL is the URL prefix under which the directory is
// served, typically "/uploads".
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("local upload directory ready")

	return &LocalStorage{basePath: basePath, baseURL: baseURL}, nil
}

// Save writes the uploaded file under a millisecond-timestamp name, keeping
// the original extension.
func (ls *LocalStorage) Save(_ context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(ls.basePath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("creating destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("writing file content: %w", err)
	}

	ref := path.Join("/", ls.baseURL, name)
	logger.Info().Str("filename", fileHeader.Filename).Str("ref", ref).Msg("file stored locally")
	return ref, nil
}

// Delete removes the file a reference points at. A reference to a file that
// no longer exists deletes cleanly.
func (ls *LocalStorage) Delete(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	name := path.Base(ref)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid file reference: %s", ref)
	}

	physical := filepath.Join(ls.basePath, name)
	if err := os.Remove(physical); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// BasePath returns the directory files are stored in, for static serving.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
