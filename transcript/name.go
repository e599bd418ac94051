package transcript

import (
	"regexp"
	"strings"
	"unicode"
)

// Candidate name patterns, most specific first. Each capture group is a
// potential student name; every match becomes a scored candidate rather than
// an immediate winner.
// Token separators are literal single spaces: preprocessing collapses
// in-line whitespace, and \s here would let a candidate swallow words from
// the following line.
var namePatterns = []*regexp.Regexp{
	// Labeled fields.
	regexp.MustCompile(`(?i)student name[: ]+([A-Z][A-Za-z]+(?: [A-Za-z][A-Za-z]+){1,3})`),
	regexp.MustCompile(`(?i)(?:full )?name[: ]+([A-Z][A-Za-z]+(?: [A-Za-z][A-Za-z]+){1,3})`),
	// All-caps name run followed by an admission-number-like token or a
	// registry keyword, the common registrar layout.
	regexp.MustCompile(`([A-Z]{2,} [A-Z]{2,} [A-Z]{2,})\s*(?:\d{6,8}\b|Stage|Student|Programme|Program)`),
	// Proper-case run directly before an ID-like token.
	regexp.MustCompile(`([A-Z][a-z]+(?: [A-Z][a-z]+){1,3})\s*(?:\d{6,8}\b|#\d)`),
	// Title-prefixed name.
	regexp.MustCompile(`(?:MR|MS|MISS|MRS|DR|PROF)\.? ([A-Z][a-z]+(?: [A-Z][a-z]+){1,3})`),
	// Bare proper-case run, the weakest signal.
	regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+(?: [A-Z][a-z]+){0,2})\b`),
}

// nameDenylist rejects institution and table boilerplate that matches the
// shape of a person's name. Checked per token, case-insensitive.
var nameDenylist = map[string]bool{
	"university": true, "college": true, "catholic": true, "eastern": true,
	"africa": true, "bachelor": true, "master": true, "diploma": true,
	"science": true, "computer": true, "technology": true, "business": true,
	"course": true, "unit": true, "units": true, "grade": true, "grades": true,
	"credit": true, "semester": true, "transcript": true, "statement": true,
	"registrar": true, "academic": true, "development": true, "description": true,
	"page": true, "progressive": true, "signature": true, "balance": true,
	"total": true, "student": true, "name": true, "stage": true,
	"programme": true, "program": true, "admission": true, "number": true,
}

type nameCandidate struct {
	text  string
	score float64
}

// extractName scores every candidate produced by the pattern family and
// returns the winner with its confidence. Ties go to the earliest candidate:
// candidates are collected in match order and only a strictly higher score
// displaces the current best.
func extractName(text string) (string, float64) {
	var candidates []nameCandidate
	seen := map[string]bool{}

	for _, re := range namePatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			if len(loc) < 4 || loc[2] < 0 {
				continue
			}
			cand := trimBoilerplate(strings.TrimSpace(text[loc[2]:loc[3]]))
			if !validName(cand) || seen[cand] {
				continue
			}
			seen[cand] = true
			candidates = append(candidates, nameCandidate{
				text:  cand,
				score: scoreName(text, cand, loc[2]),
			})
		}
	}

	best := nameCandidate{score: -1}
	for _, c := range candidates {
		if c.score > best.score {
			best = c
		}
	}
	if best.score < 0 {
		return "", 0
	}
	conf := best.score
	if conf > 1 {
		conf = 1
	}
	return best.text, conf
}

// scoreName applies the candidate heuristics: label context boosts, a strict
// Title-Case boost, and a penalty for strings that recur like boilerplate.
func scoreName(text, cand string, start int) float64 {
	score := 0.5

	prefix := strings.ToLower(contextBefore(text, start, 20))
	if strings.Contains(prefix, "name") {
		score += 0.3
		if strings.Contains(prefix, "student name") {
			score += 0.2
		}
	}
	if titleCased(cand) {
		score += 0.2
	}
	if strings.Count(text, cand) > 3 {
		score -= 0.2
	}
	return score
}

func contextBefore(text string, start, n int) string {
	from := start - n
	if from < 0 {
		from = 0
	}
	return text[from:start]
}

// trimBoilerplate drops trailing denylisted tokens, so a greedy capture like
// "Jane Doe Programme" still yields the name in front of the label.
func trimBoilerplate(s string) string {
	tokens := strings.Fields(s)
	for len(tokens) > 0 && nameDenylist[strings.ToLower(tokens[len(tokens)-1])] {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

// validName accepts 2-4 capitalized alphabetic tokens of at least two
// characters each, none of which is known boilerplate.
func validName(s string) bool {
	tokens := strings.Fields(s)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	for _, tok := range tokens {
		runes := []rune(tok)
		if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		if nameDenylist[strings.ToLower(tok)] {
			return false
		}
	}
	return true
}

// titleCased reports whether every token is exactly Title-Case (one leading
// upper, rest lower) and there are at least two tokens.
func titleCased(s string) bool {
	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return false
	}
	for _, tok := range tokens {
		runes := []rune(tok)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return true
}
