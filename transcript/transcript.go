// Package transcript extracts structured fields from raw transcript text:
// student name, program, academic term, and the course table. Extraction is
// deterministic and never fails; an absent field is returned empty with a
// zero confidence for that field.
package transcript

// Status classifies a course by its grade.
type Status string

const (
	StatusComplete   Status = "complete"
	StatusIncomplete Status = "incomplete"
	StatusFailed     Status = "failed"
)

// Pattern names the layout family that matched a course line.
type Pattern string

const (
	PatternMarksTable Pattern = "marks-table"
	PatternDash       Pattern = "dash"
	PatternPipe       Pattern = "pipe-table"
	PatternParenUnits Pattern = "paren-units"
	PatternGradeFirst Pattern = "grade-first"
	PatternColumnar   Pattern = "columnar"
)

// Course is one extracted course row.
type Course struct {
	Code    string  `json:"code"`
	Title   string  `json:"title"`
	Grade   string  `json:"grade"`
	Units   int     `json:"units"`
	Status  Status  `json:"status"`
	Pattern Pattern `json:"pattern"`
}

// Confidence carries the per-field and combined extraction confidences.
type Confidence struct {
	Name    float64 `json:"name"`
	Program float64 `json:"program"`
	Units   float64 `json:"units"`
	Overall float64 `json:"overall"`
}

// Record is the structured result of extracting one transcript.
type Record struct {
	StudentName    string     `json:"studentName"`
	StudentID      string     `json:"studentId"`
	Program        string     `json:"program"`
	YearOfStudy    int        `json:"yearOfStudy"`
	Semester       int        `json:"semester"`
	GPA            float64    `json:"gpa"`
	Courses        []Course   `json:"courses"`
	TotalUnits     int        `json:"totalUnits"`
	CompletedUnits int        `json:"completedUnits"`
	Confidence     Confidence `json:"confidence"`
}

// HasIncomplete reports whether any course carries an incomplete grade.
func (r Record) HasIncomplete() bool {
	for _, c := range r.Courses {
		if c.Status == StatusIncomplete {
			return true
		}
	}
	return false
}

// Extract parses raw transcript text into a Record. Identical input yields
// an identical Record.
func Extract(text string) Record {
	text = normalizeText(text)

	var rec Record
	rec.StudentName, rec.Confidence.Name = extractName(text)
	rec.Program, rec.Confidence.Program = extractProgram(text)
	rec.StudentID = extractStudentID(text)
	rec.YearOfStudy, rec.Semester = extractTerm(text)
	rec.GPA = extractGPA(text)
	rec.Courses = extractCourses(text)

	for _, c := range rec.Courses {
		rec.TotalUnits += c.Units
		if c.Status == StatusComplete {
			rec.CompletedUnits += c.Units
		}
	}

	rec.Confidence.Units = unitsConfidence(len(rec.Courses))
	rec.Confidence.Overall = (rec.Confidence.Name + rec.Confidence.Program + rec.Confidence.Units) / 3

	return rec
}

// unitsConfidence trusts the table-parsing pass more the more courses it
// recovered.
func unitsConfidence(courseCount int) float64 {
	conf := float64(courseCount) / 10
	if conf > 1 {
		conf = 1
	}
	return conf
}
