// Package namematch decides whether two personal names refer to the same
// person. OCR output corrupts names unpredictably (character substitution,
// token reordering, dropped diacritics), so no single metric is robust: the
// matcher fuses cheap exact/substring shortcuts with edit-distance and
// phonetic fallbacks into one confidence score.
package namematch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/EastonHans/transcriptkit/similarity"
)

// Method identifies the strongest signal behind a match decision.
type Method string

const (
	MethodExact        Method = "exact"
	MethodSubstring    Method = "substring"
	MethodJaroWinkler  Method = "jaro_winkler"
	MethodLevenshtein  Method = "levenshtein"
	MethodInitials     Method = "initials"
	MethodPhonetic     Method = "phonetic"
	MethodComposite    Method = "composite"
	MethodInvalidInput Method = "invalid_input"
)

// Scores carries the per-algorithm signals that fed a match decision.
type Scores struct {
	Exact       bool    `json:"exact"`
	Substring   bool    `json:"substring"`
	JaroWinkler float64 `json:"jaro_winkler"`
	Levenshtein float64 `json:"levenshtein"`
	Initials    bool    `json:"initials"`
	Phonetic    bool    `json:"phonetic"`
}

// Result is the outcome of comparing a registered name against an extracted
// name. It is computed fresh per comparison and holds no shared state.
type Result struct {
	IsMatch              bool    `json:"is_match"`
	Confidence           float64 `json:"confidence"`
	Method               Method  `json:"method"`
	Details              Scores  `json:"details"`
	NormalizedRegistered string  `json:"normalized_registered"`
	NormalizedExtracted  string  `json:"normalized_extracted"`
	Explanation          string  `json:"explanation"`
}

// Config names every weight and threshold in the aggregation so they can be
// tuned and tested independently of the algorithm structure.
type Config struct {
	// MatchThreshold is the minimum confidence for IsMatch.
	MatchThreshold float64

	// Per-signal weights.
	ExactWeight       float64
	SubstringWeight   float64
	JaroWinklerWeight float64
	LevenshteinWeight float64
	InitialsWeight    float64
	PhoneticWeight    float64

	// Fixed contribution values for the boolean signals.
	SubstringValue float64
	InitialsValue  float64
	PhoneticValue  float64

	// EditSignalFloor is the minimum Jaro-Winkler/Levenshtein score that
	// contributes value; weaker scores still weigh the denominator down.
	EditSignalFloor float64

	// StrongSignal promotes an edit-distance score to the reported method.
	StrongSignal float64
}

// DefaultConfig returns the tuned production weights.
func DefaultConfig() Config {
	return Config{
		MatchThreshold:    0.7,
		ExactWeight:       0.4,
		SubstringWeight:   0.25,
		JaroWinklerWeight: 0.2,
		LevenshteinWeight: 0.1,
		InitialsWeight:    0.05,
		PhoneticWeight:    0.05,
		SubstringValue:    0.9,
		InitialsValue:     0.7,
		PhoneticValue:     0.6,
		EditSignalFloor:   0.6,
		StrongSignal:      0.9,
	}
}

// Matcher compares names under a fixed Config. The zero value is not usable;
// construct with NewMatcher.
type Matcher struct {
	cfg Config
}

// NewMatcher builds a Matcher with the given configuration. A zero Config
// means DefaultConfig; partial overrides should start from DefaultConfig so
// every weight stays set.
func NewMatcher(cfg Config) Matcher {
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	return Matcher{cfg: cfg}
}

// Match compares two names under the default configuration.
func Match(registered, extracted string) Result {
	return NewMatcher(DefaultConfig()).Match(registered, extracted)
}

// Match never fails: empty input after normalization yields a non-match with
// method invalid_input rather than an error.
func (m Matcher) Match(registered, extracted string) Result {
	normReg := Normalize(registered)
	normExt := Normalize(extracted)
	if normReg == "" || normExt == "" {
		return Result{
			Method:               MethodInvalidInput,
			NormalizedRegistered: normReg,
			NormalizedExtracted:  normExt,
			Explanation:          "one or both names are empty after normalization",
		}
	}

	scores := Scores{
		Exact:       normReg == normExt,
		Substring:   tokenSubstring(normReg, normExt),
		JaroWinkler: similarity.JaroWinkler(normReg, normExt),
		Levenshtein: similarity.LevenshteinSimilarity(normReg, normExt),
		Initials:    similarity.InitialsMatch(normReg, normExt),
		Phonetic:    similarity.PhoneticMatch(normReg, normExt),
	}

	confidence := m.aggregate(scores)
	res := Result{
		IsMatch:              confidence >= m.cfg.MatchThreshold,
		Confidence:           confidence,
		Method:               m.method(scores),
		Details:              scores,
		NormalizedRegistered: normReg,
		NormalizedExtracted:  normExt,
	}
	res.Explanation = m.explain(res)
	return res
}

// Normalize prepares a name for comparison: lower-case, letters only,
// single-character tokens dropped, tokens sorted alphabetically so token
// order never affects the outcome ("Jane Doe" == "Doe Jane").
func Normalize(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			sb.WriteByte(' ')
		}
	}
	tokens := strings.Fields(sb.String())
	kept := tokens[:0]
	for _, tok := range tokens {
		if len(tok) > 1 {
			kept = append(kept, tok)
		}
	}
	sort.Strings(kept)
	return strings.Join(kept, " ")
}

// tokenSubstring reports whether every token of the name with fewer tokens
// appears as a substring of some token of the other name.
func tokenSubstring(a, b string) bool {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	return allContained(ta, tb) || allContained(tb, ta)
}

func allContained(needles, haystack []string) bool {
	if len(needles) == 0 || len(needles) > len(haystack) {
		return false
	}
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if strings.Contains(h, n) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// aggregate folds the six signals into one confidence. An exact match is
// definitional and short-circuits to 1.0. Otherwise each fired signal
// contributes weight*value; the edit-distance signals always count toward
// the weight total but contribute value only above EditSignalFloor, so two
// weak string scores cannot masquerade as a confident match.
func (m Matcher) aggregate(s Scores) float64 {
	if s.Exact {
		return 1
	}
	var sum, weights float64
	if s.Substring {
		sum += m.cfg.SubstringWeight * m.cfg.SubstringValue
		weights += m.cfg.SubstringWeight
	}
	weights += m.cfg.JaroWinklerWeight
	if s.JaroWinkler >= m.cfg.EditSignalFloor {
		sum += m.cfg.JaroWinklerWeight * s.JaroWinkler
	}
	weights += m.cfg.LevenshteinWeight
	if s.Levenshtein >= m.cfg.EditSignalFloor {
		sum += m.cfg.LevenshteinWeight * s.Levenshtein
	}
	if s.Initials {
		sum += m.cfg.InitialsWeight * m.cfg.InitialsValue
		weights += m.cfg.InitialsWeight
	}
	if s.Phonetic {
		sum += m.cfg.PhoneticWeight * m.cfg.PhoneticValue
		weights += m.cfg.PhoneticWeight
	}
	return sum / weights
}

func (m Matcher) method(s Scores) Method {
	switch {
	case s.Exact:
		return MethodExact
	case s.Substring:
		return MethodSubstring
	case s.JaroWinkler >= m.cfg.StrongSignal:
		return MethodJaroWinkler
	case s.Levenshtein >= m.cfg.StrongSignal:
		return MethodLevenshtein
	case s.Initials:
		return MethodInitials
	case s.Phonetic:
		return MethodPhonetic
	default:
		return MethodComposite
	}
}

func (m Matcher) explain(r Result) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("compared %q against %q", r.NormalizedRegistered, r.NormalizedExtracted))
	if r.Details.Exact {
		lines = append(lines, "exact match after normalization")
	}
	if r.Details.Substring {
		lines = append(lines, "every token of the shorter name is contained in the longer")
	}
	lines = append(lines, fmt.Sprintf("jaro-winkler %.2f, levenshtein %.2f", r.Details.JaroWinkler, r.Details.Levenshtein))
	if r.Details.Initials {
		lines = append(lines, "initials agree")
	}
	if r.Details.Phonetic {
		lines = append(lines, "names sound alike")
	}
	lines = append(lines, fmt.Sprintf("confidence %.2f (%s)", r.Confidence, confidenceTier(r.Confidence)))
	return strings.Join(lines, "\n")
}

func confidenceTier(c float64) string {
	switch {
	case c >= 0.8:
		return "high"
	case c >= 0.7:
		return "good"
	case c >= 0.5:
		return "low"
	default:
		return "very low"
	}
}
