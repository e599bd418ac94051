package transcript

import (
	"strings"
	"unicode"
)

// normalizeText prepares raw extractor output for pattern matching: line
// endings become \n, whitespace runs collapse within lines, and look-alike
// glyph fixes are applied only inside digit-dominant tokens so words keep
// their letters.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		for i, tok := range fields {
			fields[i] = foldGlyphs(tok)
		}
		out = append(out, strings.Join(fields, " "))
	}
	return strings.Join(out, "\n")
}

// glyphFolds maps letters commonly misread for digits.
var glyphFolds = map[rune]rune{
	'O': '0', 'o': '0',
	'l': '1', 'I': '1',
	'S': '5',
	'B': '8',
}

// foldGlyphs rewrites look-alike letters to digits, but only inside tokens
// that are plainly numeric: digits must outnumber letters and every letter
// must itself be a foldable glyph. Course codes like CIT3105 and ordinary
// words are left alone.
func foldGlyphs(token string) string {
	digits, letters := 0, 0
	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			if _, ok := glyphFolds[r]; !ok {
				return token
			}
			letters++
		}
	}
	if digits == 0 || letters == 0 || digits <= letters {
		return token
	}
	var sb strings.Builder
	for _, r := range token {
		if d, ok := glyphFolds[r]; ok {
			sb.WriteRune(d)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
