package document

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/EastonHans/transcriptkit/ocr"
)

// ImageSource wraps a bare image upload as a single-page document with no
// text layer.
type ImageSource struct {
	data   []byte
	format ocr.ImageFormat

	// Dimensions from the decoded header, kept for logging.
	Width  int
	Height int
}

// NewImageSource sniffs the image format and validates the header. A payload
// that fails to decode is rejected here so the extractor can report an
// unreadable document instead of feeding garbage to the recognizer.
func NewImageSource(data []byte) (*ImageSource, error) {
	format, ok := DetectImageFormat(data)
	if !ok {
		return nil, fmt.Errorf("image: unsupported format")
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image: decode header: %w", err)
	}
	return &ImageSource{data: data, format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

func (s *ImageSource) Kind() Kind     { return KindImage }
func (s *ImageSource) PageCount() int { return 1 }

func (s *ImageSource) NativeText(pageNr int) (string, error) { return "", nil }

func (s *ImageSource) Images(pageNr int) ([]PageImage, error) {
	if pageNr != 1 {
		return nil, fmt.Errorf("image: page %d out of range", pageNr)
	}
	return []PageImage{{Data: s.data, Format: s.format}}, nil
}

// Format reports the sniffed image format.
func (s *ImageSource) Format() ocr.ImageFormat { return s.format }

// DetectImageFormat sniffs magic bytes for the supported raster formats.
func DetectImageFormat(data []byte) (ocr.ImageFormat, bool) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return ocr.ImageFormatPNG, true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return ocr.ImageFormatJPEG, true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return ocr.ImageFormatTIFF, true
	case bytes.HasPrefix(data, []byte("BM")):
		return ocr.ImageFormatBMP, true
	}
	return "", false
}
