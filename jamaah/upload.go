package jamaah

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/wailsapp/mimetype"
)

// Document scans arrive as phone photos; anything wider gets downscaled
// before hitting the bucket.
const maxDocumentImageWidth = 600

// UploadDocument stores a document scan for one of the submission's
// document fields and returns its object URL. JPEG and PNG content
// wider than maxDocumentImageWidth is downscaled and re-encoded first;
// other media types are stored as-is. No screen invokes this yet.
func (s *Service) UploadDocument(ctx context.Context, submId string, field string, filename string, content []byte) (string, error) {
	if !knownDocumentField(field) {
		return "", newErrUnknownDocumentField(field)
	}
	storagePath := fmt.Sprintf("documents/%s/%s%s", submId, field, filepath.Ext(filename))

	mType := mime.TypeByExtension(filepath.Ext(storagePath))
	if mType == "" {
		detected := mimetype.Detect(content)
		if detected == nil {
			return "", fmt.Errorf("failed to detect file type for %s", storagePath)
		}
		mType = detected.String()
	}

	if mType == "image/jpeg" || mType == "image/png" {
		compressed, err := downscaleImage(content, maxDocumentImageWidth)
		if err != nil {
			return "", fmt.Errorf("failed to compress document image: %w", err)
		}
		content = compressed
		mType = "image/jpeg"
	}

	url, err := s.files.Upload(ctx, content, storagePath, mType)
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return url, nil
}

func knownDocumentField(field string) bool {
	for _, f := range DocumentFields {
		if f == field {
			return true
		}
	}
	return false
}

// downscaleImage resizes the image to at most maxWidth, keeping aspect
// ratio, and re-encodes it as JPEG.
func downscaleImage(imgContent []byte, maxWidth uint) ([]byte, error) {
	mType := mimetype.Detect(imgContent)
	if mType == nil {
		return nil, fmt.Errorf("unknown image type")
	}

	var img image.Image
	var err error

	switch mType.String() {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(imgContent))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(imgContent))
	default:
		return nil, fmt.Errorf("unsupported image format: %s", mType.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width := uint(img.Bounds().Dx())
	if width > maxWidth {
		width = maxWidth
	}
	resized := resize.Resize(width, 0, img, resize.Lanczos3)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode image to JPEG: %w", err)
	}

	return out.Bytes(), nil
}
