package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultUnits is assumed when a layout does not capture a credit count.
const defaultUnits = 3

// validGradeRe defines the accepted grade vocabulary. Anything else on a
// course line is discarded silently.
var validGradeRe = regexp.MustCompile(`^([A-F][+-]?|I|X|Z|PASS|FAIL)$`)

// ValidGrade reports whether a raw grade token is part of the accepted
// vocabulary.
func ValidGrade(grade string) bool {
	return validGradeRe.MatchString(strings.ToUpper(strings.TrimSpace(grade)))
}

// DeriveStatus classifies a valid grade: I/X/Z mark unfinished courses,
// F/FAIL failed ones, everything else counts as complete.
func DeriveStatus(grade string) Status {
	switch strings.ToUpper(strings.TrimSpace(grade)) {
	case "I", "X", "Z":
		return StatusIncomplete
	case "F", "FAIL":
		return StatusFailed
	default:
		return StatusComplete
	}
}

// coursePattern binds one layout family to its submatch interpretation, so
// each match carries explicit field positions instead of positional guessing.
type coursePattern struct {
	name  Pattern
	re    *regexp.Regexp
	code  int
	title int
	grade int
	units int // 0 when the layout has no credit column
}

// Layout families in order of specificity. The first family that matches a
// line claims it; later families do not re-parse the same line.
var coursePatterns = []coursePattern{
	// Registrar marks table: CMT 108 INTRO. TO WEB DEVELOPMENT 24 50 74 A 3
	{
		name: PatternMarksTable,
		re:   regexp.MustCompile(`([A-Z]{2,4}\s+\d{3,4}[A-Z]?)\s+([A-Z][A-Z\s.&/]{5,60}?)\s+\d+\s+\d+\s+\d+\s+([A-F][+-]?|[IXZ])\s+(\d+)\b`),
		code: 1, title: 2, grade: 3, units: 4,
	},
	// Dash separated: CIT 3105 - Machine Learning - A
	{
		name: PatternDash,
		re:   regexp.MustCompile(`([A-Z]{2,4}\s*\d{3,4}[A-Z]?)\s*[–—-]\s*([^–—-]+?)\s*[–—-]\s*([A-F][+-]?|[IXZ]|PASS|FAIL)(?:\s|$)`),
		code: 1, title: 2, grade: 3,
	},
	// Pipe table: CIT3105 | Machine Learning | 3 | A
	{
		name: PatternPipe,
		re:   regexp.MustCompile(`([A-Z]{2,4}\s*\d{3,4})\s*\|\s*([^|]+?)\s*\|\s*(\d+)\s*\|\s*([A-F][+-]?|[IXZ])(?:\s|$)`),
		code: 1, title: 2, units: 3, grade: 4,
	},
	// Parenthesized units: CIT 3105 Machine Learning (3) A
	{
		name: PatternParenUnits,
		re:   regexp.MustCompile(`([A-Z]{2,4}\s*\d{3,4})\s+([^()]+?)\s*\((\d+)\)\s*([A-F][+-]?|[IXZ])(?:\s|$)`),
		code: 1, title: 2, units: 3, grade: 4,
	},
	// Grade first: A CIT3105 Machine Learning
	{
		name: PatternGradeFirst,
		re:   regexp.MustCompile(`^([A-F][+-]?|[IXZ])\s+([A-Z]{2,4}\s*\d{3,4})\s+([A-Za-z][A-Za-z\s.&]{2,50})$`),
		grade: 1, code: 2, title: 3,
	},
	// Plain columnar: CIT3105 Machine Learning A
	{
		name: PatternColumnar,
		re:   regexp.MustCompile(`([A-Z]{2,4}\s*\d{3,4})\s+([A-Za-z][A-Za-z\s.&]{2,50}?)\s+([A-F][+-]?|[IXZ])\s*$`),
		code: 1, title: 2, grade: 3,
	},
}

// headerWords mark lines that look like table headers or registrar footers,
// never course rows.
var headerWords = []string{
	"UNIT CODE", "UNIT DESCRIPTION", "GRADE CREDIT", "PAGE", "PROGRESSIVE",
	"SIGNATURE", "ACADEMIC REGISTRAR", "KEY:", "MEAN", "BALANCE",
}

// extractCourses scans line by line against the layout families. One line
// yields at most the matches of its first successful family, which keeps a
// single course from being double-counted when layouts overlap.
func extractCourses(text string) []Course {
	var courses []Course
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 5 || isHeaderLine(line) {
			continue
		}
		for _, p := range coursePatterns {
			matches := p.re.FindAllStringSubmatch(line, -1)
			if len(matches) == 0 {
				continue
			}
			found := false
			for _, m := range matches {
				if c, ok := p.course(m); ok {
					courses = append(courses, c)
					found = true
				}
			}
			if found {
				break
			}
		}
	}
	return courses
}

func isHeaderLine(line string) bool {
	upper := strings.ToUpper(line)
	for _, w := range headerWords {
		if strings.Contains(upper, w) {
			return true
		}
	}
	return false
}

// course builds a Course from one submatch, rejecting invalid grades.
func (p coursePattern) course(m []string) (Course, bool) {
	grade := strings.ToUpper(strings.TrimSpace(m[p.grade]))
	if !ValidGrade(grade) {
		return Course{}, false
	}
	units := defaultUnits
	if p.units > 0 {
		if n, err := strconv.Atoi(m[p.units]); err == nil && n > 0 {
			units = n
		}
	}
	return Course{
		Code:    normalizeCode(m[p.code]),
		Title:   cleanTitle(m[p.title]),
		Grade:   grade,
		Units:   units,
		Status:  DeriveStatus(grade),
		Pattern: p.name,
	}, true
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), " "))
}

func cleanTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	return strings.Trim(title, " .-–—")
}
