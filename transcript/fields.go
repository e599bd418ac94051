package transcript

import (
	"regexp"
	"strconv"
)

// Student ID patterns, specific registrar layouts before generic ID shapes.
var studentIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:student\s+no|admission\s+number)[:\s]+(\d{6,8})`),
	regexp.MustCompile(`#(\d{6,8})\s+Page`),
	regexp.MustCompile(`(?i)(?:student\s+id|id\s+number|registration)[:\s]+([A-Z0-9]{6,15})`),
	regexp.MustCompile(`\b([A-Z]{2,3}\d{6,10})\b`),
}

// extractStudentID returns the first ID-like token, "" when none.
func extractStudentID(text string) string {
	for _, re := range studentIDPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

var (
	// Stage: Y4S2 encodes year and semester in one token.
	stageRe = regexp.MustCompile(`(?i)stage[:\s]*Y(\d)S(\d)`)

	yearPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)year[:\s]*(\d)`),
		regexp.MustCompile(`(?i)(?:level|class)[:\s]*(\d)`),
		regexp.MustCompile(`(?i)(\d)(?:st|nd|rd|th)\s+year`),
	}

	semesterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)semester[:\s]*(\d)`),
		regexp.MustCompile(`(?i)\bsem[:\s]*(\d)`),
		regexp.MustCompile(`(?i)\bterm[:\s]*(\d)`),
	}
)

// extractTerm scans year and semester independently: year keeps the maximum
// in 1..6, semester the maximum in 1..2 with a default of 2.
func extractTerm(text string) (year, semester int) {
	semester = 2

	if m := stageRe.FindStringSubmatch(text); m != nil {
		if y := atoiInRange(m[1], 1, 6); y > year {
			year = y
		}
		if s := atoiInRange(m[2], 1, 2); s > semester {
			semester = s
		}
	}
	for _, re := range yearPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if y := atoiInRange(m[1], 1, 6); y > year {
				year = y
			}
		}
	}
	for _, re := range semesterPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if s := atoiInRange(m[1], 1, 2); s > semester {
				semester = s
			}
		}
	}
	return year, semester
}

func atoiInRange(s string, lo, hi int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0
	}
	return n
}

var gpaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:gpa|cgpa)[:\s]*(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)grade\s+point\s+average[:\s]*(\d+\.?\d*)`),
}

// extractGPA returns the first plausible GPA in [0,4], 0 when absent.
func extractGPA(text string) float64 {
	for _, re := range gpaPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if g, err := strconv.ParseFloat(m[1], 64); err == nil && g >= 0 && g <= 4 {
				return g
			}
		}
	}
	return 0
}
