package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

//go:generate mockgen -source=blob.go -destination=../mocks/storage_mocks.go -package=mocks

// FlightPhotoDir is the sub-directory of the media root holding flight photos
const FlightPhotoDir = "flights"

// BlobStore persists uploaded photos and hands back a reference to store on the flight
type BlobStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
}

// LocalBlobStore keeps blobs on a filesystem rooted at the media root
type LocalBlobStore struct {
	fs      afero.Fs
	baseURL string
}

// NewLocalBlobStore creates a blob store writing under root on the OS filesystem.
// Returned references are prefixed with baseURL.
func NewLocalBlobStore(root, baseURL string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(filepath.Join(root, FlightPhotoDir), 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return NewBlobStoreOnFs(afero.NewBasePathFs(afero.NewOsFs(), root), baseURL), nil
}

// NewBlobStoreOnFs creates a blob store on an arbitrary afero filesystem
func NewBlobStoreOnFs(fs afero.Fs, baseURL string) *LocalBlobStore {
	return &LocalBlobStore{fs: fs, baseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes data under a fresh name. The extension follows the detected
// content type; the client's filename is only logged. Data that does not sniff
// as an image is refused with ErrInvalidImage.
// The returned reference is "<baseURL>/flights/<name>".
func (s *LocalBlobStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", apperrors.ErrInvalidImage
	}
	name := uuid.NewString() + mime.Extension()
	rel := path.Join(FlightPhotoDir, name)

	if err := s.fs.MkdirAll(FlightPhotoDir, 0o755); err != nil {
		return "", fmt.Errorf("create photo directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, rel, data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"blob":   rel,
		"upload": filename,
	}).Debug("Stored flight photo")
	return s.baseURL + "/" + rel, nil
}

// Delete removes the blob behind ref. Unknown references yield ErrBlobNotFound.
func (s *LocalBlobStore) Delete(ctx context.Context, ref string) error {
	rel, ok := s.relative(ref)
	if !ok {
		return apperrors.ErrBlobNotFound
	}

	if err := s.fs.Remove(rel); err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrBlobNotFound
		}
		return fmt.Errorf("remove photo: %w", err)
	}

	logger.WithContext(ctx).WithField("blob", rel).Debug("Removed flight photo")
	return nil
}

// relative maps a reference back to its path below the root, rejecting anything
// outside the photo directory.
func (s *LocalBlobStore) relative(ref string) (string, bool) {
	rel := strings.TrimPrefix(ref, s.baseURL+"/")
	if rel == ref && s.baseURL != "" {
		return "", false
	}
	rel = path.Clean(rel)
	if path.Dir(rel) != FlightPhotoDir {
		return "", false
	}
	return rel, true
}
