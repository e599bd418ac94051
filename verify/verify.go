// Package verify composes the full document-verification chain: text
// extraction, field extraction, name matching, and the eligibility policy.
// It is the single entry point an application layer calls per uploaded
// transcript.
package verify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EastonHans/transcriptkit/document"
	"github.com/EastonHans/transcriptkit/eligibility"
	"github.com/EastonHans/transcriptkit/namematch"
	"github.com/EastonHans/transcriptkit/observability"
	"github.com/EastonHans/transcriptkit/ocr"
	"github.com/EastonHans/transcriptkit/transcript"
)

// ErrDocumentUnreadable reports that no usable text came out of a document
// after every extraction fallback. It is the one hard failure of the chain:
// the caller should ask for a rescan instead of showing a negative verdict.
var ErrDocumentUnreadable = errors.New("document unreadable, please resubmit")

// Config bounds the chain. Zero fields fall back to the defaults
// individually, so tuning one extractor cap keeps the rest. Matcher
// overrides should start from namematch.DefaultConfig so every weight
// stays set.
type Config struct {
	// MinTextLength is the minimum extracted-text length below which the
	// document counts as unreadable.
	MinTextLength int
	Extractor     document.Config
	Matcher       namematch.Config
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() Config {
	return Config{
		MinTextLength: 50,
		Extractor:     document.DefaultConfig(),
		Matcher:       namematch.DefaultConfig(),
	}
}

// Result is the composed verdict for one document.
type Result struct {
	Eligible             bool     `json:"eligible"`
	MeetsYearRequirement bool     `json:"meetsYearRequirement"`
	MeetsUnitRequirement bool     `json:"meetsUnitRequirement"`
	HasIncompleteUnits   bool     `json:"hasIncompleteUnits"`
	NameMatched          bool     `json:"nameMatched"`
	CompletedUnits       int      `json:"completedUnits"`
	RequiredUnits        int      `json:"requiredUnits"`
	NameInTranscript     string   `json:"nameInTranscript"`
	NameProvided         string   `json:"nameProvided"`
	Reasons              []string `json:"reasons,omitempty"`

	ExtractionDetails transcript.Record `json:"extractionDetails"`
	OCRConfidence     float64           `json:"ocrConfidence"`
	OCRMethod         document.Method   `json:"ocrMethod"`
	Errors            []string          `json:"errors,omitempty"`
}

// Verifier owns the extraction chain. The recognition engine handle is
// shared across calls; everything else is per-call state.
type Verifier struct {
	extractor *document.Extractor
	matcher   namematch.Matcher
	logger    observability.Logger
	cfg       Config
}

// New builds a Verifier around a recognition engine. A nil logger disables
// logging.
func New(engine ocr.Engine, logger observability.Logger, cfg Config) *Verifier {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	if cfg.MinTextLength == 0 {
		cfg.MinTextLength = DefaultConfig().MinTextLength
	}
	return &Verifier{
		extractor: document.NewExtractor(engine, logger, cfg.Extractor),
		matcher:   namematch.NewMatcher(cfg.Matcher),
		logger:    logger,
		cfg:       cfg,
	}
}

// VerifyDocument runs the full chain over one uploaded file. The returned
// error is non-nil only for an unreadable document; a readable document that
// fails the policy yields a nil error and an itemized negative Result.
func (v *Verifier) VerifyDocument(ctx context.Context, file []byte, registeredName, program string, yearOfStudy, semester int) (Result, error) {
	start := time.Now()

	src, err := document.FromBytes(file)
	if err != nil {
		v.logger.Warn("document rejected",
			observability.Error("error", err),
			observability.Int(observability.MetricDocumentsFailed, 1))
		return Result{NameProvided: registeredName, Errors: []string{err.Error()}},
			fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	ext := v.extractor.Extract(ctx, src)
	res := Result{
		NameProvided:  registeredName,
		OCRConfidence: ext.Confidence,
		OCRMethod:     ext.Method,
		Errors:        ext.Errors,
	}

	if len(ext.Text) < v.cfg.MinTextLength {
		v.logger.Warn("insufficient text extracted",
			observability.Int("chars", len(ext.Text)),
			observability.Int(observability.MetricDocumentsFailed, 1))
		return res, ErrDocumentUnreadable
	}

	rec := transcript.Extract(ext.Text)
	res.ExtractionDetails = rec
	res.NameInTranscript = rec.StudentName

	verdict := eligibility.EvaluateWith(v.matcher, rec, registeredName, program, yearOfStudy, semester)
	res.Eligible = verdict.Eligible
	res.MeetsYearRequirement = verdict.MeetsYearRequirement
	res.MeetsUnitRequirement = verdict.MeetsUnitRequirement
	res.HasIncompleteUnits = verdict.HasIncompleteUnits
	res.NameMatched = verdict.NameMatched
	res.CompletedUnits = verdict.CompletedUnits
	res.RequiredUnits = verdict.RequiredUnits
	res.Reasons = verdict.Reasons

	v.logger.Info("document verified",
		observability.Bool("eligible", res.Eligible),
		observability.Int(observability.MetricCoursesFound, len(rec.Courses)),
		observability.Float64(observability.MetricNameConfidence, verdict.NameMatchConfidence),
		observability.String("method", string(res.OCRMethod)),
		observability.String(observability.MetricVerifyTime, time.Since(start).String()),
	)
	return res, nil
}

// MatchNames exposes the name matcher standalone, with this verifier's
// matcher configuration.
func (v *Verifier) MatchNames(registered, extracted string) namematch.Result {
	return v.matcher.Match(registered, extracted)
}
