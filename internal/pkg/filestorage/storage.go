// Package filestorage stores uploaded images and hands back the reference
// string that gets persisted on the owning record (student photo,
// announcement image). The backing store is chosen by configuration.
package filestorage

import (
	"context"
	"mime/multipart"
)

// Storage is the upload adapter. Save persists one file and returns the
// reference to store alongside the owning row. Delete removes a previously
// stored object; callers replacing a reference treat Delete failures as
// best-effort (logged, never surfaced).
type Storage interface {
	Save(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, ref string) error
}
