package similarity

import (
	"math"
	"testing"
)

func TestLevenshteinDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"jane", "jaen", 2},
		{"same", "same", 0},
	}
	for _, c := range cases {
		if got := LevenshteinDistance(c.a, c.b); got != c.want {
			t.Fatalf("LevenshteinDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLevenshteinDistanceSymmetric(t *testing.T) {
	if LevenshteinDistance("doe jane", "johnson michael") != LevenshteinDistance("johnson michael", "doe jane") {
		t.Fatalf("distance should be symmetric")
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	if got := LevenshteinSimilarity("", ""); got != 1 {
		t.Fatalf("empty strings should be identical, got %v", got)
	}
	if got := LevenshteinSimilarity("abcd", "abcd"); got != 1 {
		t.Fatalf("identical strings should score 1, got %v", got)
	}
	got := LevenshteinSimilarity("abcd", "abce")
	if math.Abs(got-0.75) > 1e-9 {
		t.Fatalf("one edit over four runes should score 0.75, got %v", got)
	}
	if got := LevenshteinSimilarity("abcd", ""); got != 0 {
		t.Fatalf("empty against non-empty should score 0, got %v", got)
	}
}

func TestJaroWinkler(t *testing.T) {
	if got := JaroWinkler("martha", "martha"); got != 1 {
		t.Fatalf("identical strings should score 1, got %v", got)
	}
	// Classic reference pair: jaro 0.944..., prefix 3 -> 0.9611...
	got := JaroWinkler("martha", "marhta")
	if math.Abs(got-0.9611) > 0.001 {
		t.Fatalf("JaroWinkler(martha, marhta) = %v, want ~0.9611", got)
	}
	if got := JaroWinkler("abc", ""); got != 0 {
		t.Fatalf("empty string should score 0, got %v", got)
	}
	if got := JaroWinkler("xyz", "abc"); got != 0 {
		t.Fatalf("disjoint strings should score 0, got %v", got)
	}
}

func TestJaroWinklerBounded(t *testing.T) {
	pairs := [][2]string{
		{"jane doe", "jaen doe"},
		{"a", "ab"},
		{"easton ochieng", "eastan ochieng"},
	}
	for _, p := range pairs {
		got := JaroWinkler(p[0], p[1])
		if got < 0 || got > 1 {
			t.Fatalf("JaroWinkler(%q, %q) = %v out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestPhoneticCode(t *testing.T) {
	cases := []struct {
		word, want string
	}{
		{"Jane", "gn"},
		{"Jaen", "gn"},
		{"Catherine", "kthr"},
		{"Katharine", "kthr"},
		{"Stephen", "stph"},
		{"Steven", "stfn"},
		{"", ""},
		{"aeiou", ""},
	}
	for _, c := range cases {
		if got := PhoneticCode(c.word); got != c.want {
			t.Fatalf("PhoneticCode(%q) = %q, want %q", c.word, got, c.want)
		}
	}
}

func TestPhoneticMatch(t *testing.T) {
	if !PhoneticMatch("Jane Doe", "Jaen Doe") {
		t.Fatalf("transposed vowels should still match phonetically")
	}
	if !PhoneticMatch("Catherine Smith", "Katharine Smith") {
		t.Fatalf("sound-alike spellings should match")
	}
	if PhoneticMatch("Jane Doe", "Michael Johnson") {
		t.Fatalf("unrelated names should not match")
	}
	if PhoneticMatch("", "Jane Doe") {
		t.Fatalf("empty name should not match")
	}
}

func TestInitialsMatch(t *testing.T) {
	if !InitialsMatch("Jane Doe", "Jaen Dow") {
		t.Fatalf("same initials should match")
	}
	if InitialsMatch("Jane", "Jaen") {
		t.Fatalf("single-token initials are too weak to count")
	}
	if InitialsMatch("Jane Doe", "Doe Jane") {
		t.Fatalf("initials are order-sensitive")
	}
	if InitialsMatch("", "") {
		t.Fatalf("empty names have no initials")
	}
}
