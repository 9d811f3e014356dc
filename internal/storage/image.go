package storage

import (
	"bytes"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"strings"

	apperrors "balloon-flights-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

// DetectImage checks that data is a readable image and returns its MIME type.
// Content sniffing alone is not enough: the header must also decode.
func DetectImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", apperrors.ErrInvalidImage
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", apperrors.ErrInvalidImage
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", apperrors.ErrInvalidImage
	}

	return mime.String(), nil
}
