package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	apperrors "balloon-flights-backend/internal/errors"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// blobExists reports whether the blob behind ref is present on the store's filesystem
func blobExists(store *LocalBlobStore, ref string) bool {
	rel, ok := store.relative(ref)
	if !ok {
		return false
	}
	found, err := afero.Exists(store.fs, rel)
	return err == nil && found
}

func TestDetectImage(t *testing.T) {
	t.Run("valid png", func(t *testing.T) {
		mime, err := DetectImage(pngBytes(t))
		require.NoError(t, err)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := DetectImage(nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
	})

	t.Run("text file", func(t *testing.T) {
		_, err := DetectImage([]byte("definitely not a picture"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
	})

	t.Run("truncated png header", func(t *testing.T) {
		data := pngBytes(t)[:12]
		_, err := DetectImage(data)
		assert.ErrorIs(t, err, apperrors.ErrInvalidImage)
	})
}

func TestLocalBlobStore(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := NewBlobStoreOnFs(fs, "/media/")

	ref, err := store.Save(ctx, "Holiday.PNG", pngBytes(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/media/flights/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.True(t, blobExists(store, ref))

	other, err := store.Save(ctx, "Holiday.PNG", pngBytes(t))
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)

	require.NoError(t, store.Delete(ctx, ref))
	assert.False(t, blobExists(store, ref))
	assert.True(t, blobExists(store, other))

	assert.ErrorIs(t, store.Delete(ctx, ref), apperrors.ErrBlobNotFound)
}

func TestLocalBlobStoreRejectsForeignRefs(t *testing.T) {
	store := NewBlobStoreOnFs(afero.NewMemMapFs(), "/media")

	assert.ErrorIs(t, store.Delete(context.Background(), "/elsewhere/flights/x.png"), apperrors.ErrBlobNotFound)
	assert.ErrorIs(t, store.Delete(context.Background(), "/media/flights/../../etc/passwd"), apperrors.ErrBlobNotFound)
	assert.False(t, blobExists(store, "/media/other/x.png"))
}

func TestLocalBlobStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBlobStoreOnFs(afero.NewMemMapFs(), "/media").Save(ctx, "a.png", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalBlobStoreIgnoresClientExtension(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := NewBlobStoreOnFs(fs, "/media")

	t.Run("markup behind a gif header is stored as gif", func(t *testing.T) {
		data := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00<script>alert(1)</script>")

		ref, err := store.Save(ctx, "evil.html", data)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(ref, ".gif"), ref)
		assert.False(t, strings.Contains(ref, ".html"))
		assert.True(t, blobExists(store, ref))
	})

	t.Run("png named as jpeg keeps png extension", func(t *testing.T) {
		ref, err := store.Save(ctx, "photo.jpeg", pngBytes(t))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(ref, ".png"), ref)
	})

	t.Run("non image content is refused", func(t *testing.T) {
		_, err := store.Save(ctx, "photo.png", []byte("<html><body>hi</body></html>"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidImage)

		entries, err := afero.ReadDir(fs, FlightPhotoDir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.False(t, strings.HasSuffix(e.Name(), ".html"), e.Name())
		}
	})
}

func TestNewLocalBlobStore(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalBlobStore(root, "/media")
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "a.gif", []byte("GIF89a"))
	require.NoError(t, err)
	assert.True(t, blobExists(store, ref))
}
