// Package document turns uploaded transcript files into raw text. It reads the
// native text layer when the format carries one and falls back to image
// recognition, accumulating per-page failures without aborting the document.
package document

import (
	"bytes"
	"fmt"

	"github.com/EastonHans/transcriptkit/ocr"
)

// Method identifies which extraction path produced the returned text.
type Method string

const (
	// MethodNative means the text came from the document's embedded text layer.
	MethodNative Method = "native"
	// MethodRendered means page images were passed through a recognition engine.
	MethodRendered Method = "rendered-recognition"
	// MethodDirect means the input was a bare image recognized as-is.
	MethodDirect Method = "direct-recognition"
)

// Kind distinguishes paged containers from bare images.
type Kind int

const (
	KindPaged Kind = iota
	KindImage
)

// Result is the outcome of extracting one document. Errors collects non-fatal
// per-page failures; a populated Errors with Confidence 0 means the document
// could not be read at all.
type Result struct {
	Text       string   `json:"text"`
	Method     Method   `json:"method"`
	Confidence float64  `json:"confidence"`
	PageCount  int      `json:"pageCount"`
	Errors     []string `json:"errors,omitempty"`
}

// PageImage is one rasterizable image belonging to a page.
type PageImage struct {
	Data   []byte
	Format ocr.ImageFormat
}

// Source is a loaded document: a page count plus, per page, an optional
// embedded text layer and zero or more rasterizable images. Pages are
// 1-based.
type Source interface {
	Kind() Kind
	PageCount() int
	// NativeText returns the embedded text of a page, "" when the format
	// has no text layer.
	NativeText(pageNr int) (string, error)
	// Images returns the rasterizable images of a page.
	Images(pageNr int) ([]PageImage, error)
}

var pdfMagic = []byte("%PDF")

// FromBytes sniffs the payload and builds the matching Source: PDFs become a
// paged source, anything else is treated as a bare image.
func FromBytes(data []byte) (Source, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("document: empty payload")
	}
	if bytes.HasPrefix(data, pdfMagic) {
		return NewPDFSource(data)
	}
	return NewImageSource(data)
}
