package transcript

import (
	"reflect"
	"testing"
)

const sampleTranscript = `THE CATHOLIC UNIVERSITY OF EASTERN AFRICA
PROGRESSIVE TRANSCRIPT
Name: EASTON MICHURA OCHIENG Stage: Y4S2
Student No: 1046098
Programme: Bachelor of Science in Computer Science
UNIT CODE UNIT DESCRIPTION CAT EXAM TOTAL GRADE CREDIT
CMT 108 INTRO. TO WEB DEVELOPMENT 24 50 74 A 3
MAT 111 CALCULUS I 20 45 65 B 3
CMT 200 DATA STRUCTURES 18 40 58 C 3
GS 100 GENERAL STUDIES 25 55 80 A 3
CGPA: 3.4
ACADEMIC REGISTRAR`

func TestExtractFullTranscript(t *testing.T) {
	rec := Extract(sampleTranscript)

	if rec.StudentName != "EASTON MICHURA OCHIENG" {
		t.Fatalf("name = %q", rec.StudentName)
	}
	if rec.StudentID != "1046098" {
		t.Fatalf("id = %q", rec.StudentID)
	}
	if rec.Program != "Bachelor of Science in Computer Science" {
		t.Fatalf("program = %q", rec.Program)
	}
	if rec.YearOfStudy != 4 || rec.Semester != 2 {
		t.Fatalf("term = Y%dS%d, want Y4S2", rec.YearOfStudy, rec.Semester)
	}
	if rec.GPA != 3.4 {
		t.Fatalf("gpa = %v", rec.GPA)
	}
	if len(rec.Courses) != 4 {
		t.Fatalf("courses = %d: %+v", len(rec.Courses), rec.Courses)
	}
	if rec.Courses[0].Code != "CMT 108" || rec.Courses[0].Grade != "A" || rec.Courses[0].Units != 3 {
		t.Fatalf("first course = %+v", rec.Courses[0])
	}
	if rec.Courses[0].Pattern != PatternMarksTable {
		t.Fatalf("pattern = %q", rec.Courses[0].Pattern)
	}
	if rec.TotalUnits != 12 || rec.CompletedUnits != 12 {
		t.Fatalf("units = %d/%d", rec.CompletedUnits, rec.TotalUnits)
	}
	if rec.Confidence.Name <= 0 || rec.Confidence.Overall <= 0 {
		t.Fatalf("confidence = %+v", rec.Confidence)
	}
}

func TestExtractEmptyText(t *testing.T) {
	rec := Extract("")
	if rec.StudentName != "" || rec.Program != "" || len(rec.Courses) != 0 {
		t.Fatalf("empty input must yield empty record: %+v", rec)
	}
	if rec.Confidence.Name != 0 || rec.Confidence.Units != 0 {
		t.Fatalf("confidence must be zero: %+v", rec.Confidence)
	}
	if rec.Semester != 2 {
		t.Fatalf("semester default = %d, want 2", rec.Semester)
	}
}

func TestExtractIdempotent(t *testing.T) {
	a := Extract(sampleTranscript)
	b := Extract(sampleTranscript)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical input must yield identical records")
	}
}

func TestUnitSumInvariant(t *testing.T) {
	text := `Student Name: Jane Doe
CIT 3105 - Machine Learning - A
CIT 3106 - Databases - I
CIT 3107 - Networks - F`
	rec := Extract(text)
	if len(rec.Courses) != 3 {
		t.Fatalf("courses = %+v", rec.Courses)
	}
	var total, completed int
	for _, c := range rec.Courses {
		total += c.Units
		if c.Status == StatusComplete {
			completed += c.Units
		}
	}
	if rec.TotalUnits != total || rec.CompletedUnits != completed {
		t.Fatalf("sums %d/%d, want %d/%d", rec.CompletedUnits, rec.TotalUnits, completed, total)
	}
	if rec.CompletedUnits != 3 || rec.TotalUnits != 9 {
		t.Fatalf("completed/total = %d/%d", rec.CompletedUnits, rec.TotalUnits)
	}
	if !rec.HasIncomplete() {
		t.Fatal("record with grade I must report an incomplete")
	}
}

func TestCoursePatternFamilies(t *testing.T) {
	cases := []struct {
		line    string
		pattern Pattern
		units   int
		grade   string
	}{
		{"CMT 108 INTRO. TO WEB DEVELOPMENT 24 50 74 A 3", PatternMarksTable, 3, "A"},
		{"CIT 3105 - Machine Learning - B+", PatternDash, 3, "B+"},
		{"CIT 3106 - Databases - C-", PatternDash, 3, "C-"},
		{"CIT3105 | Machine Learning | 4 | A", PatternPipe, 4, "A"},
		{"CIT3107 | Operating Systems | 4 | A-", PatternPipe, 4, "A-"},
		{"CIT 3105 Machine Learning (2) C", PatternParenUnits, 2, "C"},
		{"CIT 3108 Data Structures (2) B+", PatternParenUnits, 2, "B+"},
		{"A CIT3105 Machine Learning", PatternGradeFirst, 3, "A"},
		{"CIT3105 Machine Learning B", PatternColumnar, 3, "B"},
	}
	for _, c := range cases {
		courses := extractCourses(c.line)
		if len(courses) != 1 {
			t.Errorf("%q: got %d courses", c.line, len(courses))
			continue
		}
		got := courses[0]
		if got.Pattern != c.pattern || got.Units != c.units || got.Grade != c.grade {
			t.Errorf("%q: got %+v, want pattern=%s units=%d grade=%s", c.line, got, c.pattern, c.units, c.grade)
		}
	}
}

func TestFirstPatternPerLineWins(t *testing.T) {
	// Matches both the dash family and weaker families; only one course
	// must come out.
	courses := extractCourses("CIT 3105 - Machine Learning - A")
	if len(courses) != 1 {
		t.Fatalf("got %d courses, want 1", len(courses))
	}
}

func TestInvalidGradesDiscarded(t *testing.T) {
	courses := extractCourses("CIT 3105 - Machine Learning - G")
	if len(courses) != 0 {
		t.Fatalf("invalid grade must be discarded: %+v", courses)
	}
}

func TestHeaderLinesSkipped(t *testing.T) {
	courses := extractCourses("UNIT CODE UNIT DESCRIPTION GRADE CREDIT 24 50 74 A 3")
	if len(courses) != 0 {
		t.Fatalf("header line must be skipped: %+v", courses)
	}
}

func TestDeriveStatusTotality(t *testing.T) {
	cases := map[string]Status{
		"A": StatusComplete, "A+": StatusComplete, "B-": StatusComplete,
		"C": StatusComplete, "D": StatusComplete, "E": StatusComplete,
		"PASS": StatusComplete, "pass": StatusComplete,
		"I": StatusIncomplete, "X": StatusIncomplete, "Z": StatusIncomplete,
		"F": StatusFailed, "FAIL": StatusFailed, "fail": StatusFailed,
	}
	for grade, want := range cases {
		if got := DeriveStatus(grade); got != want {
			t.Errorf("DeriveStatus(%q) = %q, want %q", grade, got, want)
		}
	}
}

func TestValidGrade(t *testing.T) {
	for _, g := range []string{"A", "B+", "C-", "F", "I", "X", "Z", "PASS", "FAIL"} {
		if !ValidGrade(g) {
			t.Errorf("ValidGrade(%q) = false", g)
		}
	}
	for _, g := range []string{"G", "AA", "P+", "", "3"} {
		if ValidGrade(g) {
			t.Errorf("ValidGrade(%q) = true", g)
		}
	}
}
