// Package feestatement parses outstanding balances out of fee-statement
// text. Statements list a running ledger; the balance of interest is the
// final one, and a bare trailing dash is the registrar's notation for a
// settled account.
package feestatement

import (
	"regexp"
	"strconv"
	"strings"
)

// tailWindow is how many trailing lines are scanned; the closing balance
// always sits at the bottom of the statement.
const tailWindow = 20

// Statement is the parsed outcome for one fee statement.
type Statement struct {
	// Balance is the outstanding amount, 0 for a settled account.
	Balance float64 `json:"balance"`
	// Settled is true when the statement shows no amount owing.
	Settled bool `json:"settled"`
	// Found distinguishes "balance is zero" from "no balance found".
	Found bool `json:"found"`
}

var (
	numberRe = regexp.MustCompile(`\d{1,6}\.?\d{0,2}`)

	// Explicit balance labels, checked after the positional heuristics.
	balancePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)outstanding\s+balance[:\s]*([+-]?[\d,]+\.?\d*|-)`),
		regexp.MustCompile(`(?i)balance[:\s]*([+-]?[\d,]+\.?\d*|-)`),
		regexp.MustCompile(`(?i)total[:\s]*([+-]?[\d,]+\.?\d*|-)`),
	}
)

// Parse extracts the closing balance from statement text. Detection runs in
// order: a trailing-dash line (settled account), then a ledger line ending
// in a final amount, then an explicit labeled balance.
func Parse(text string) Statement {
	lines := tail(strings.Split(text, "\n"), tailWindow)

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "-") {
			return Statement{Balance: 0, Settled: true, Found: true}
		}
	}

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		numbers := numberRe.FindAllString(line, -1)
		if len(numbers) < 2 || len(line) <= 20 {
			continue
		}
		if bal, err := strconv.ParseFloat(numbers[len(numbers)-1], 64); err == nil {
			return Statement{Balance: bal, Settled: bal == 0, Found: true}
		}
	}

	for _, re := range balancePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if m[1] == "-" {
			return Statement{Balance: 0, Settled: true, Found: true}
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		if bal, err := strconv.ParseFloat(raw, 64); err == nil {
			return Statement{Balance: bal, Settled: bal == 0, Found: true}
		}
	}

	return Statement{}
}

func tail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}
