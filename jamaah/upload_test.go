package jamaah

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"sync"
	"testing"
	"time"

	"github.com/samira-travel/backoffice/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingFileStore struct {
	mu        sync.Mutex
	content   []byte
	key       string
	mediaType string
}

func (f *capturingFileStore) PresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	return "https://files.test/" + key, nil
}

func (f *capturingFileStore) Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content = content
	f.key = key
	f.mediaType = mediaType
	return "https://files.test/" + key, nil
}

func testPng(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadDocumentDownscalesWideImage(t *testing.T) {
	files := &capturingFileStore{}
	srvc := NewService(newInMemSubmStore(), files, nil)

	content := testPng(t, 1200, 900)
	url, err := srvc.UploadDocument(context.Background(), "subm-1", "ktp", "ktp.png", content)
	require.NoError(t, err)
	assert.Equal(t, "https://files.test/documents/subm-1/ktp.png", url)
	assert.Equal(t, "image/jpeg", files.mediaType)

	stored, err := jpeg.Decode(bytes.NewReader(files.content))
	require.NoError(t, err)
	assert.Equal(t, maxDocumentImageWidth, stored.Bounds().Dx())
}

func TestUploadDocumentKeepsSmallImageWidth(t *testing.T) {
	files := &capturingFileStore{}
	srvc := NewService(newInMemSubmStore(), files, nil)

	content := testPng(t, 300, 200)
	_, err := srvc.UploadDocument(context.Background(), "subm-1", "foto", "foto.png", content)
	require.NoError(t, err)

	stored, err := jpeg.Decode(bytes.NewReader(files.content))
	require.NoError(t, err)
	assert.Equal(t, 300, stored.Bounds().Dx())
}

func TestUploadDocumentStoresNonImageAsIs(t *testing.T) {
	files := &capturingFileStore{}
	srvc := NewService(newInMemSubmStore(), files, nil)

	content := []byte("%PDF-1.4 fake scan")
	_, err := srvc.UploadDocument(context.Background(), "subm-1", "suratVaksin", "vaksin.pdf", content)
	require.NoError(t, err)
	assert.Equal(t, content, files.content)
	assert.Equal(t, "application/pdf", files.mediaType)
}

func TestUploadDocumentRejectsUnknownField(t *testing.T) {
	srvc := NewService(newInMemSubmStore(), &capturingFileStore{}, nil)

	_, err := srvc.UploadDocument(context.Background(), "subm-1", "selfie", "selfie.png", testPng(t, 10, 10))
	require.Error(t, err)

	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	assert.Equal(t, ErrCodeUnknownDocumentField, srvcErr.ErrorCode())
}
