package transcript

import (
	"regexp"
	"strings"
)

// Candidate program patterns: explicit labels, degree-name prefixes,
// abbreviations, and a closed discipline list as last resort.
var programPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)programme?[:\s]+([^\n]{6,80})`),
	regexp.MustCompile(`(?i)(?:course|degree|study)[:\s]+([^\n]{6,80})`),
	regexp.MustCompile(`(?i)\b((?:bachelor|master|diploma|certificate) (?:of )?[A-Za-z][A-Za-z ]{3,60})`),
	regexp.MustCompile(`(?i)\b((?:bsc|ba|msc|ma|phd|btech|bcom)\.? [A-Za-z][A-Za-z ]{3,50})`),
	regexp.MustCompile(`(?i)\b(computer\s+science|information\s+technology|engineering|business|medicine|law|education)\b`),
}

var programKeywords = []string{
	"science", "technology", "engineering", "business", "computer",
	"information", "medicine", "law", "education", "arts", "commerce",
}

var degreeWords = []string{"bachelor", "master", "diploma", "certificate", "degree"}

var programAbbrevRe = regexp.MustCompile(`(?i)\b(bsc|ba|msc|ma|phd|btech|bcom)\b`)

// semesterHeaderRe rejects term headers like SEPT-DEC21 that the looser
// label patterns can swallow.
var semesterHeaderRe = regexp.MustCompile(`^(?i:SEPT-DEC|JAN-APR|MAY-AUG)\d{2}`)

// extractProgram scores every candidate and returns the winner with its
// confidence.
func extractProgram(text string) (string, float64) {
	best := ""
	bestScore := -1.0

	for _, re := range programPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := cleanProgram(m[1])
			if cand == "" || semesterHeaderRe.MatchString(cand) {
				continue
			}
			if s := scoreProgram(cand); s > bestScore {
				best, bestScore = cand, s
			}
		}
	}
	if bestScore < 0 {
		return "", 0
	}
	conf := bestScore
	if conf > 1 {
		conf = 1
	}
	return best, conf
}

func scoreProgram(cand string) float64 {
	lower := strings.ToLower(cand)
	var score float64
	for _, kw := range programKeywords {
		if strings.Contains(lower, kw) {
			score += 0.3
		}
	}
	for _, dw := range degreeWords {
		if strings.Contains(lower, dw) {
			score += 0.2
			break
		}
	}
	if programAbbrevRe.MatchString(cand) {
		score += 0.25
	}
	return score
}

func cleanProgram(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,:;|-")
	return strings.Join(strings.Fields(s), " ")
}
