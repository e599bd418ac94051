package transcript

import "testing"

func TestExtractNameLabeledField(t *testing.T) {
	name, conf := extractName("Student Name: Jane Doe\nProgramme: BSc Computer Science")
	if name != "Jane Doe" {
		t.Fatalf("name = %q", name)
	}
	if conf != 1 {
		t.Fatalf("conf = %v, want capped 1.0", conf)
	}
}

func TestExtractNameAllCapsBeforeAdmission(t *testing.T) {
	name, conf := extractName("EASTON MICHURA OCHIENG\n1046098\nBachelor of Science")
	if name != "EASTON MICHURA OCHIENG" {
		t.Fatalf("name = %q", name)
	}
	if conf <= 0 {
		t.Fatalf("conf = %v", conf)
	}
}

func TestExtractNameLabelBeatsBareRun(t *testing.T) {
	text := "Kind Regards From Office\nName: Jane Doe"
	name, _ := extractName(text)
	if name != "Jane Doe" {
		t.Fatalf("name = %q, want labeled candidate to win", name)
	}
}

func TestExtractNameRecurrencePenalty(t *testing.T) {
	// "Jane Doe" labeled once; "Happy Valley" recurs like boilerplate.
	text := "Happy Valley\nHappy Valley\nHappy Valley\nHappy Valley\nName: Jane Doe"
	name, _ := extractName(text)
	if name != "Jane Doe" {
		t.Fatalf("name = %q", name)
	}
}

func TestExtractNameNoCandidate(t *testing.T) {
	name, conf := extractName("no capitalized words here at all")
	if name != "" || conf != 0 {
		t.Fatalf("got %q/%v, want empty with zero confidence", name, conf)
	}
}

func TestValidName(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"Jane Doe", true},
		{"EASTON MICHURA OCHIENG", true},
		{"Jane", false},                    // one token
		{"Jane A Doe", false},              // one-letter token
		{"Jane Doe Roe Moe Poe", false},    // five tokens
		{"Computer Science", false},        // denylisted
		{"Jane D0e", false},                // digit in token
		{"Academic Registrar", false},      // denylisted
	}
	for _, c := range cases {
		if got := validName(c.in); got != c.ok {
			t.Errorf("validName(%q) = %v, want %v", c.in, got, c.ok)
		}
	}
}

func TestTrimBoilerplate(t *testing.T) {
	if got := trimBoilerplate("EASTON MICHURA OCHIENG Stage"); got != "EASTON MICHURA OCHIENG" {
		t.Fatalf("got %q", got)
	}
	if got := trimBoilerplate("Jane Doe"); got != "Jane Doe" {
		t.Fatalf("got %q", got)
	}
}
