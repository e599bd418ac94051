package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/EastonHans/transcriptkit/observability"
	"github.com/EastonHans/transcriptkit/ocr"
)

// Config bounds the extraction paths. The page caps double as the cost
// control: there is no separate timeout inside the extractor.
type Config struct {
	// NativePageCap limits how many pages of the text layer are read.
	NativePageCap int
	// RenderPageCap limits how many pages go through recognition.
	RenderPageCap int
	// NativeMinChars is the minimum text-layer length accepted as native.
	NativeMinChars int
	// MinVocabHits is the minimum count of academic vocabulary occurrences
	// required for the text layer to count as meaningful.
	MinVocabHits int
	// NativeConfidence is reported when the native path succeeds.
	NativeConfidence float64
	// RenderDPI is the DPI hint passed to the recognition engine.
	RenderDPI int
	// Languages are the recognition language hints.
	Languages []string
}

// DefaultConfig returns the caps tuned for single-student transcripts.
func DefaultConfig() Config {
	return Config{
		NativePageCap:    20,
		RenderPageCap:    10,
		NativeMinChars:   100,
		MinVocabHits:     3,
		NativeConfidence: 0.95,
		RenderDPI:        144,
		Languages:        []string{"eng"},
	}
}

// withDefaults fills every zero field from DefaultConfig, so a caller tuning
// one cap keeps the defaults for the rest.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.NativePageCap == 0 {
		c.NativePageCap = d.NativePageCap
	}
	if c.RenderPageCap == 0 {
		c.RenderPageCap = d.RenderPageCap
	}
	if c.NativeMinChars == 0 {
		c.NativeMinChars = d.NativeMinChars
	}
	if c.MinVocabHits == 0 {
		c.MinVocabHits = d.MinVocabHits
	}
	if c.NativeConfidence == 0 {
		c.NativeConfidence = d.NativeConfidence
	}
	if c.RenderDPI == 0 {
		c.RenderDPI = d.RenderDPI
	}
	if len(c.Languages) == 0 {
		c.Languages = d.Languages
	}
	return c
}

// academicVocab is the vocabulary whose presence marks a text layer as a
// real transcript rather than scanner boilerplate.
var academicVocab = []string{
	"student", "name", "course", "unit", "grade", "semester",
	"year", "credit", "program", "transcript", "university", "college",
}

// Extractor runs the native-text / recognition state machine over a Source.
// The engine handle is shared across calls; the extractor itself holds no
// per-document state.
type Extractor struct {
	engine ocr.Engine
	logger observability.Logger
	cfg    Config
}

// NewExtractor builds an extractor around a recognition engine. A nil logger
// disables logging.
func NewExtractor(engine ocr.Engine, logger observability.Logger, cfg Config) *Extractor {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return &Extractor{engine: engine, logger: logger, cfg: cfg.withDefaults()}
}

// Extract never returns an error: a document that cannot be read in any way
// yields a zero-confidence Result with the failures listed in Errors.
func (e *Extractor) Extract(ctx context.Context, src Source) Result {
	start := time.Now()
	res := e.extract(ctx, src)
	e.logger.Info("document extracted",
		observability.String("method", string(res.Method)),
		observability.Float64(observability.MetricOCRConfidence, res.Confidence),
		observability.Int("pages", res.PageCount),
		observability.Int("errors", len(res.Errors)),
		observability.String(observability.MetricExtractTime, time.Since(start).String()),
	)
	return res
}

func (e *Extractor) extract(ctx context.Context, src Source) Result {
	if src == nil {
		return Result{Method: MethodNative, Errors: []string{"no document source"}}
	}

	res := Result{PageCount: src.PageCount()}

	if src.Kind() == KindImage {
		res.Method = MethodDirect
		e.recognizePages(ctx, src, &res)
		return res
	}

	res.Method = MethodNative
	native := e.nativeText(src, &res)
	if meaningful(native, e.cfg.NativeMinChars, e.cfg.MinVocabHits) {
		res.Text = native
		res.Confidence = e.cfg.NativeConfidence
		return res
	}
	e.logger.Debug("text layer not meaningful, falling back to recognition",
		observability.Int("chars", len(native)))

	res.Method = MethodRendered
	e.recognizePages(ctx, src, &res)
	return res
}

// nativeText concatenates the text layer of the first NativePageCap pages.
func (e *Extractor) nativeText(src Source, res *Result) string {
	var sb strings.Builder
	pages := src.PageCount()
	if pages > e.cfg.NativePageCap {
		pages = e.cfg.NativePageCap
	}
	for p := 1; p <= pages; p++ {
		text, err := src.NativeText(p)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("page %d: text layer: %v", p, err))
			continue
		}
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}
	return sb.String()
}

// recognizePages runs the engine over each page's images sequentially, one
// page in memory at a time. A failed page is recorded and skipped.
func (e *Extractor) recognizePages(ctx context.Context, src Source, res *Result) {
	if e.engine == nil {
		res.Errors = append(res.Errors, "no recognition engine configured")
		return
	}

	pages := src.PageCount()
	if pages > e.cfg.RenderPageCap {
		pages = e.cfg.RenderPageCap
	}

	var sb strings.Builder
	var confSum float64
	recognized := 0

	for p := 1; p <= pages; p++ {
		images, err := src.Images(p)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("page %d: %v", p, err))
			continue
		}
		if len(images) == 0 {
			res.Errors = append(res.Errors, fmt.Sprintf("page %d: no rasterizable image", p))
			continue
		}
		for i, img := range images {
			in := ocr.NewInput(
				fmt.Sprintf("page-%d-%d", p, i),
				img.Data,
				img.Format,
				p-1,
				ocr.WithDPI(e.cfg.RenderDPI),
				ocr.WithLanguages(e.cfg.Languages...),
			)
			out, err := e.engine.Recognize(ctx, in)
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("page %d: recognize: %v", p, err))
				continue
			}
			if out.Text == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(out.Text)
			confSum += out.Confidence
			recognized++
		}
	}

	res.Text = sb.String()
	if recognized > 0 {
		res.Confidence = confSum / float64(recognized)
	}
	e.logger.Debug("recognition pass done",
		observability.Int(observability.MetricOCRPages, recognized),
		observability.Float64(observability.MetricOCRConfidence, res.Confidence))
}

// meaningful reports whether the text layer looks like a transcript: long
// enough and mentioning academic vocabulary often enough.
func meaningful(text string, minChars, minHits int) bool {
	if len(text) <= minChars {
		return false
	}
	lower := strings.ToLower(text)
	hits := 0
	for _, w := range academicVocab {
		hits += strings.Count(lower, w)
		if hits >= minHits {
			return true
		}
	}
	return false
}
