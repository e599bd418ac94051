// Package tesseract provides the gosseract-backed implementation of
// ocr.Engine. One Tesseract client is created lazily and reused for the
// process lifetime; Tesseract itself is not reentrant, so all recognition
// calls are serialized on the engine.
package tesseract

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/EastonHans/transcriptkit/ocr"
)

// defaultLanguage is applied when an input carries no language hint, and
// re-applied between calls so one document's hint never leaks into the next.
const defaultLanguage = "eng"

// Engine implements ocr.Engine using the gosseract client. The zero value is
// not usable; construct with NewEngine. Safe for concurrent use.
type Engine struct {
	mu            sync.Mutex
	client        *gosseract.Client
	clientFactory func() *gosseract.Client
	closed        bool

	// appliedVars remembers every Tesseract variable set so far so stale
	// per-call knobs can be cleared before the next recognition.
	appliedVars map[string]bool
}

// NewEngine constructs a Tesseract-backed OCR engine. The underlying client
// (and its language models) is initialized on first use.
func NewEngine() *Engine {
	return &Engine{
		clientFactory: gosseract.NewClient,
		appliedVars:   make(map[string]bool),
	}
}

func (e *Engine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image input. Calls are serialized; the
// shared client is acquired for the duration of one recognition and released,
// not destroyed, afterward.
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if err := ctx.Err(); err != nil {
		return ocr.Result{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ocr.Result{}, fmt.Errorf("recognize %s: engine closed", in.ID)
	}
	if e.client == nil {
		e.client = e.clientFactory()
	}
	return e.recognizeLocked(in)
}

// Close tears down the shared client. Intended for process shutdown; the
// engine cannot be reused afterwards.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	return err
}

func (e *Engine) recognizeLocked(in ocr.Input) (ocr.Result, error) {
	c := e.client
	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}

	langs := in.Languages
	if len(langs) == 0 {
		langs = []string{defaultLanguage}
	}
	if err := c.SetLanguage(langs...); err != nil {
		return ocr.Result{}, fmt.Errorf("set languages: %w", err)
	}

	if err := e.applyVariables(in); err != nil {
		return ocr.Result{}, err
	}

	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}

	words, avgConf := extractWords(c)
	return ocr.Result{
		InputID:    in.ID,
		Text:       strings.TrimSpace(text),
		Confidence: avgConf,
		Words:      words,
	}, nil
}

// applyVariables sets the per-call Tesseract knobs and clears any variable a
// previous call set that this call does not, keeping the shared handle free
// of per-document state.
func (e *Engine) applyVariables(in ocr.Input) error {
	vars := make(map[string]string, len(in.Metadata)+1)
	for k, v := range in.Metadata {
		vars[k] = v
	}
	if in.DPI > 0 {
		vars["user_defined_dpi"] = fmt.Sprint(in.DPI)
	}
	for k := range e.appliedVars {
		if _, ok := vars[k]; !ok {
			vars[k] = ""
		}
	}
	for k, v := range vars {
		if err := e.client.SetVariable(gosseract.SettableVariable(k), v); err != nil {
			return fmt.Errorf("set variable %s: %w", k, err)
		}
		e.appliedVars[k] = v != ""
	}
	return nil
}

func extractWords(c *gosseract.Client) ([]ocr.Word, float64) {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return nil, 0
	}
	words := make([]ocr.Word, 0, len(boxes))
	var sum float64
	for _, b := range boxes {
		conf := b.Confidence / 100.0
		sum += conf
		words = append(words, ocr.Word{Text: b.Word, Confidence: conf})
	}
	return words, sum / float64(len(words))
}
