package ocr

import "context"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatTIFF ImageFormat = "image/tiff"
	ImageFormatBMP  ImageFormat = "image/bmp"
)

// Input encapsulates a single image submitted for recognition.
type Input struct {
	// ID is an optional caller-provided identifier that is echoed back in the
	// corresponding Result.
	ID string
	// Image is the encoded image payload in the format specified by Format.
	Image []byte
	// Format declares the image content type (e.g., image/png).
	Format ImageFormat
	// PageIndex links the input back to the zero-based page index where the
	// image originated.
	PageIndex int
	// DPI carries the effective dots-per-inch for the image. Providers such as
	// Tesseract use this for scaling and layout heuristics; zero means unknown.
	DPI int
	// Languages is a list of language hints (e.g., "eng") that providers can
	// use to select trained data.
	Languages []string
	// Metadata allows callers to pass through engine-specific knobs (e.g.,
	// "tessedit_pageseg_mode" for Tesseract) without hard-coding them into the
	// API surface.
	Metadata map[string]string
}

// Word is a single recognized token with its own confidence.
type Word struct {
	Text       string
	Confidence float64
}

// Result captures recognition output for a single input image. Confidence is
// normalized to [0,1] regardless of the provider's native scale.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string
	// Text contains the linearized text recognized from the image.
	Text string
	// Confidence is the mean per-word confidence in [0,1]; zero when the
	// provider recognized nothing.
	Confidence float64
	// Words carries per-token confidences when the provider reports them.
	Words []Word
}

// Engine is the recognition provider contract: one image in, one result out.
// Implementations own any expensive model state; if the underlying engine is
// not reentrant they must serialize concurrent calls themselves.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}
