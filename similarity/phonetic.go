package similarity

import (
	"strings"
	"unicode"
)

// phoneticCodeLen caps phonetic codes; four consonant classes are enough to
// discriminate short personal names.
const phoneticCodeLen = 4

// phoneticMatchRatio is the fraction of per-word codes of the shorter name
// that must appear in the other name's code set for PhoneticMatch to hold.
const phoneticMatchRatio = 0.6

// consonantFolds maps sound-alike consonants onto a canonical representative.
var consonantFolds = map[rune]rune{
	'c': 'k',
	'z': 's',
	'b': 'p',
	'd': 't',
	'j': 'g',
	'v': 'f',
}

// PhoneticCode reduces a single word to a compact sound-alike code:
// lower-cased, vowels stripped, look-alike consonants folded, immediate
// repeats collapsed, truncated to four characters.
func PhoneticCode(word string) string {
	var sb strings.Builder
	var last rune
	for _, r := range strings.ToLower(word) {
		if !unicode.IsLetter(r) {
			continue
		}
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			continue
		}
		if folded, ok := consonantFolds[r]; ok {
			r = folded
		}
		if r == last {
			continue
		}
		sb.WriteRune(r)
		last = r
		if sb.Len() >= phoneticCodeLen {
			break
		}
	}
	return sb.String()
}

// PhoneticMatch reports whether the two names sound alike: at least 60% of
// the per-word codes of the name with fewer words must appear among the
// other name's codes.
func PhoneticMatch(a, b string) bool {
	codesA := wordCodes(a)
	codesB := wordCodes(b)
	if len(codesA) == 0 || len(codesB) == 0 {
		return false
	}
	shorter, longer := codesA, codesB
	if len(codesB) < len(codesA) {
		shorter, longer = codesB, codesA
	}
	set := make(map[string]bool, len(longer))
	for _, c := range longer {
		set[c] = true
	}
	hits := 0
	for _, c := range shorter {
		if set[c] {
			hits++
		}
	}
	return float64(hits)/float64(len(shorter)) >= phoneticMatchRatio
}

// InitialsMatch reports whether the first letters of the whitespace-separated
// tokens of a and b form identical sequences of length at least two.
func InitialsMatch(a, b string) bool {
	ia := initials(a)
	ib := initials(b)
	return len(ia) >= 2 && ia == ib
}

func initials(name string) string {
	var sb strings.Builder
	for _, tok := range strings.Fields(name) {
		r := []rune(tok)[0]
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}

func wordCodes(name string) []string {
	var codes []string
	for _, tok := range strings.Fields(name) {
		if c := PhoneticCode(tok); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}
