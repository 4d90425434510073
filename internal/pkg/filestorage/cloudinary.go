package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
)

// CloudinaryStorage stores uploads in a Cloudinary folder. The reference kept
// on the owning record is the delivery URL.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage builds a CloudinaryStorage from account credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("configuring cloudinary: %w", err)
	}
	if folder == "" {
		folder = "student-info"
	}
	return &CloudinaryStorage{cld: cld, folder: folder}, nil
}

// Save uploads the file into the configured folder and returns its secure URL.
func (cs *CloudinaryStorage) Save(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	resp, err := cs.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:   cs.folder,
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return "", fmt.Errorf("uploading to cloudinary: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("public_id", resp.PublicID).Msg("file stored in cloudinary")
	return resp.SecureURL, nil
}

// Delete destroys the object a delivery URL points at.
func (cs *CloudinaryStorage) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	publicID, err := publicIDFromURL(ref)
	if err != nil {
		return err
	}

	if _, err := cs.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("destroying cloudinary object %s: %w", publicID, err)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// publicIDFromURL recovers the public id from a Cloudinary delivery URL:
// everything after the upload/ segment, minus the version segment and the
// file extension.
func publicIDFromURL(ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid cloudinary reference %q: %w", ref, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	uploadIdx := -1
	for i, seg := range segments {
		if seg == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx == len(segments)-1 {
		return "", fmt.Errorf("invalid cloudinary reference %q: no upload segment", ref)
	}

	rest := segments[uploadIdx+1:]
	if len(rest) > 1 && versionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}

	publicID := strings.Join(rest, "/")
	if ext := strings.LastIndex(publicID, "."); ext > 0 {
		publicID = publicID[:ext]
	}
	if publicID == "" {
		return "", fmt.Errorf("invalid cloudinary reference %q: empty public id", ref)
	}
	return publicID, nil
}
