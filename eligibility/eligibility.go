// Package eligibility applies the attachment-eligibility policy to an
// extracted transcript record. The policy is deterministic: unit thresholds,
// an academic-term gate, an incomplete-grade gate, and an identity check.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/EastonHans/transcriptkit/namematch"
	"github.com/EastonHans/transcriptkit/transcript"
)

// Unit thresholds by program kind.
const (
	DegreeRequiredUnits    = 39
	NonDegreeRequiredUnits = 20
)

// Verdict itemizes every sub-condition so callers can render per-condition
// failure reasons instead of a bare boolean.
type Verdict struct {
	Eligible             bool    `json:"eligible"`
	MeetsYearRequirement bool    `json:"meetsYearRequirement"`
	MeetsUnitRequirement bool    `json:"meetsUnitRequirement"`
	HasIncompleteUnits   bool    `json:"hasIncompleteUnits"`
	NameMatched          bool    `json:"nameMatched"`
	NameMatchConfidence  float64 `json:"nameMatchConfidence"`
	// NameMatchLenient is set when no name could be extracted and the match
	// was waived rather than verified.
	NameMatchLenient bool     `json:"nameMatchLenient"`
	CompletedUnits   int      `json:"completedUnits"`
	RequiredUnits    int      `json:"requiredUnits"`
	Reasons          []string `json:"reasons,omitempty"`
}

// lenientNameConfidence tags a waived name check so it is distinguishable
// from a real match.
const lenientNameConfidence = 0.5

// Evaluate applies the policy to one record using the default name matcher.
func Evaluate(rec transcript.Record, registeredName, program string, yearOfStudy, semester int) Verdict {
	return EvaluateWith(namematch.NewMatcher(namematch.DefaultConfig()), rec, registeredName, program, yearOfStudy, semester)
}

// EvaluateWith applies the policy to one record, checking identity with the
// caller's matcher.
func EvaluateWith(m namematch.Matcher, rec transcript.Record, registeredName, program string, yearOfStudy, semester int) Verdict {
	degree := isDegreeProgram(program)

	v := Verdict{
		CompletedUnits: rec.CompletedUnits,
		RequiredUnits:  NonDegreeRequiredUnits,
	}
	if degree {
		v.RequiredUnits = DegreeRequiredUnits
	}

	v.MeetsYearRequirement = meetsYear(degree, yearOfStudy, semester)
	v.MeetsUnitRequirement = rec.CompletedUnits >= v.RequiredUnits
	v.HasIncompleteUnits = rec.HasIncomplete()

	if rec.StudentName == "" {
		// No extracted name is an OCR miss, not an identity mismatch.
		v.NameMatched = true
		v.NameMatchLenient = true
		v.NameMatchConfidence = lenientNameConfidence
	} else {
		res := m.Match(registeredName, rec.StudentName)
		v.NameMatched = res.IsMatch
		v.NameMatchConfidence = res.Confidence
	}

	v.Eligible = v.MeetsYearRequirement && v.MeetsUnitRequirement &&
		!v.HasIncompleteUnits && v.NameMatched
	v.Reasons = reasons(v, degree, yearOfStudy, semester)
	return v
}

// isDegreeProgram treats both the word "degree" and a "bachelor" title as
// degree programs, matching how programs are written on transcripts.
func isDegreeProgram(program string) bool {
	p := strings.ToLower(program)
	return strings.Contains(p, "degree") || strings.Contains(p, "bachelor")
}

// meetsYear gates on the academic term: degree students qualify from year 3
// semester 2, others from year 2 semester 2.
func meetsYear(degree bool, year, semester int) bool {
	gate := 2
	if degree {
		gate = 3
	}
	return (year == gate && semester >= 2) || year > gate
}

func reasons(v Verdict, degree bool, year, semester int) []string {
	var rs []string
	if !v.MeetsYearRequirement {
		gate := 2
		if degree {
			gate = 3
		}
		rs = append(rs, fmt.Sprintf("year %d semester %d is before year %d semester 2", year, semester, gate))
	}
	if !v.MeetsUnitRequirement {
		rs = append(rs, fmt.Sprintf("completed %d of %d required units", v.CompletedUnits, v.RequiredUnits))
	}
	if v.HasIncompleteUnits {
		rs = append(rs, "transcript has incomplete units")
	}
	if !v.NameMatched {
		rs = append(rs, "registered name does not match transcript name")
	}
	return rs
}
