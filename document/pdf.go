package document

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/EastonHans/transcriptkit/ocr"
)

// PDFSource reads a PDF's embedded text layer and its page images via pdfcpu.
type PDFSource struct {
	ctx *model.Context
}

// NewPDFSource parses and validates a PDF payload.
func NewPDFSource(data []byte) (*PDFSource, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return &PDFSource{ctx: ctx}, nil
}

func (s *PDFSource) Kind() Kind     { return KindPaged }
func (s *PDFSource) PageCount() int { return s.ctx.PageCount }

// NativeText pulls the text-showing operators out of a page's content stream.
func (s *PDFSource) NativeText(pageNr int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(s.ctx, pageNr)
	if err != nil {
		return "", fmt.Errorf("page %d content: %w", pageNr, err)
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("page %d content: %w", pageNr, err)
	}
	return textFromContentStream(data), nil
}

// Images returns the embedded image XObjects of a page, used for the
// recognition fallback when the text layer is empty or meaningless.
func (s *PDFSource) Images(pageNr int) ([]PageImage, error) {
	mm, err := pdfcpu.ExtractPageImages(s.ctx, pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("page %d images: %w", pageNr, err)
	}
	var images []PageImage
	for _, img := range mm {
		data, err := io.ReadAll(img)
		if err != nil || len(data) == 0 {
			continue
		}
		images = append(images, PageImage{Data: data, Format: imageFormat(img.FileType)})
	}
	return images, nil
}

func imageFormat(fileType string) ocr.ImageFormat {
	switch strings.ToLower(fileType) {
	case "jpg", "jpeg":
		return ocr.ImageFormatJPEG
	case "tif", "tiff":
		return ocr.ImageFormatTIFF
	case "bmp":
		return ocr.ImageFormatBMP
	default:
		return ocr.ImageFormatPNG
	}
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream walks text-showing operators (Tj, TJ, ') and the
// positioning operators (Td, TD, T*) that imply line breaks. Line structure
// is preserved because downstream field extraction scans line by line.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				sb.WriteByte('\n')
				sb.WriteString(decodePDFString(m[1]))
			}
		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")),
			bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return tidyPageText(sb.String())
}

// decodePDFString handles the basic PDF escape sequences, including octal
// escapes like \040.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] >= '0' && raw[i] <= '7' {
				val := int(raw[i] - '0')
				for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
					i++
					val = val*8 + int(raw[i]-'0')
				}
				sb.WriteByte(byte(val))
			} else {
				sb.WriteByte(raw[i])
			}
		}
	}
	return sb.String()
}

// tidyPageText collapses horizontal whitespace within lines and drops blank
// lines, keeping the newline structure intact.
func tidyPageText(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		var sb strings.Builder
		prevSpace := false
		for _, r := range line {
			if unicode.IsSpace(r) {
				if !prevSpace && sb.Len() > 0 {
					sb.WriteByte(' ')
					prevSpace = true
				}
			} else if unicode.IsPrint(r) {
				sb.WriteRune(r)
				prevSpace = false
			}
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}
