package namematch

import (
	"strings"
	"testing"
)

func TestMatchExact(t *testing.T) {
	res := Match("Jane Doe", "Jane Doe")
	if !res.IsMatch {
		t.Fatalf("identical names must match")
	}
	if res.Confidence != 1.0 {
		t.Fatalf("exact match confidence = %v, want 1.0", res.Confidence)
	}
	if res.Method != MethodExact {
		t.Fatalf("method = %s, want exact", res.Method)
	}
}

func TestMatchReorderedTokens(t *testing.T) {
	res := Match("Jane Doe", "Doe Jane")
	if !res.IsMatch || res.Method != MethodExact || res.Confidence != 1.0 {
		t.Fatalf("token order must not matter: %+v", res)
	}
}

func TestMatchOrderIndependence(t *testing.T) {
	pairs := [][2]string{
		{"Easton Michura Ochieng", "Ochieng Easton Michura"},
		{"Jane Ann Doe", "Doe Ann Jane"},
	}
	for _, p := range pairs {
		a := Match(p[0], p[1])
		b := Match(p[1], p[0])
		if a.IsMatch != b.IsMatch || a.Confidence != b.Confidence {
			t.Fatalf("match is not symmetric for %q / %q", p[0], p[1])
		}
		if !a.IsMatch {
			t.Fatalf("permuted identical names must match: %+v", a)
		}
	}
}

func TestMatchOCRNoise(t *testing.T) {
	res := Match("Jane Doe", "Jaen D0e")
	if !res.IsMatch {
		t.Fatalf("ocr-corrupted name should still match: %+v", res)
	}
	if res.Confidence < 0.7 || res.Confidence > 0.9 {
		t.Fatalf("confidence = %v, want within [0.7, 0.9]", res.Confidence)
	}
}

func TestMatchUnrelatedNames(t *testing.T) {
	res := Match("Jane Doe", "Michael Johnson")
	if res.IsMatch {
		t.Fatalf("unrelated names must not match: %+v", res)
	}
	if res.Confidence >= 0.3 {
		t.Fatalf("confidence = %v, want < 0.3", res.Confidence)
	}
}

func TestMatchSubstring(t *testing.T) {
	res := Match("Jane Doe", "Jane Ann Doe")
	if !res.IsMatch {
		t.Fatalf("shorter name contained in longer should match: %+v", res)
	}
	if res.Method != MethodSubstring {
		t.Fatalf("method = %s, want substring", res.Method)
	}
}

func TestMatchMonotonicDegradation(t *testing.T) {
	base := Match("Easton Ochieng", "Easton Ochieng")
	garbled := Match("Easton Ochieng", "Uqzvxn Wkblyrg")
	if garbled.Confidence >= base.Confidence {
		t.Fatalf("heavy corruption must not raise confidence: %v >= %v",
			garbled.Confidence, base.Confidence)
	}
	if garbled.IsMatch {
		t.Fatalf("heavily corrupted name must not match")
	}
}

func TestMatchInvalidInput(t *testing.T) {
	for _, pair := range [][2]string{
		{"", "Jane Doe"},
		{"Jane Doe", ""},
		{"", ""},
		{"12345 #!", "Jane Doe"}, // empty after normalization
		{"J D", "Jane Doe"},      // single-letter tokens dropped
	} {
		res := Match(pair[0], pair[1])
		if res.IsMatch {
			t.Fatalf("invalid input %q/%q must not match", pair[0], pair[1])
		}
		if res.Confidence != 0 {
			t.Fatalf("invalid input confidence = %v, want 0", res.Confidence)
		}
		if res.Method != MethodInvalidInput {
			t.Fatalf("method = %s, want invalid_input", res.Method)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Jane Doe", "doe jane"},
		{"  DOE,   jane ", "doe jane"},
		{"Jane-Doe", "janedoe"},
		{"J. Doe", "doe"},
		{"Mwangi wa Thiong'o", "mwangi thiongo wa"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExplanationTiers(t *testing.T) {
	res := Match("Jane Doe", "Jane Doe")
	if !strings.Contains(res.Explanation, "high") {
		t.Fatalf("exact match should report a high tier: %q", res.Explanation)
	}
	res = Match("Jane Doe", "Michael Johnson")
	if !strings.Contains(res.Explanation, "very low") {
		t.Fatalf("unrelated names should report very low tier: %q", res.Explanation)
	}
}

func TestMatchConfigOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatchThreshold = 0.99
	m := NewMatcher(cfg)
	res := m.Match("Jane Doe", "Jaen D0e")
	if res.IsMatch {
		t.Fatalf("raised threshold should reject the noisy pair: %+v", res)
	}
}

func TestNewMatcherZeroConfig(t *testing.T) {
	m := NewMatcher(Config{})
	res := m.Match("Jane Doe", "Doe Jane")
	if !res.IsMatch || res.Confidence != 1 {
		t.Fatalf("zero config must mean defaults: %+v", res)
	}
}
