package roster

import (
	"strings"
	"testing"
)

func TestCleanEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ajensen008@worldclass.regis.edu", "ajensen008@regis.edu"},
		{"ajensen008@regis.edu", "ajensen008@regis.edu"},
		{"ajensen008@gmail.com", "ajensen008@regis.edu"},
		{"  jdoe@worldclass.regis.edu  ", "jdoe@regis.edu"},
		{"", ""},
		{"not-an-email", "not-an-email"},
	}
	for _, tc := range cases {
		if got := CleanEmail(tc.in); got != tc.want {
			t.Fatalf("CleanEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanUsername(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"#jrivera008", "jrivera008"},
		{"JRivera008", "jrivera008"},
		{" jdoe ", "jdoe"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CleanUsername(tc.in); got != tc.want {
			t.Fatalf("CleanUsername(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsDemoAccount(t *testing.T) {
	if !IsDemoAccount("demo_student") || !IsDemoAccount("TestUser") {
		t.Fatalf("demo/test usernames should be flagged")
	}
	if IsDemoAccount("jrivera008") {
		t.Fatalf("regular username should not be flagged")
	}
}

func TestParseCourseCode(t *testing.T) {
	info := ParseCourseCode("2025_Summer_MSDS692.csv")
	if info.Year != "2025" || info.Semester != "summer" || info.Course != "msds692" {
		t.Fatalf("course info mismatch: %#v", info)
	}
	if info.FolderName != "2025_summer_msds692" {
		t.Fatalf("folder name mismatch: %q", info.FolderName)
	}
	if info.DisplayName != "MSDS692 - Summer 2025" {
		t.Fatalf("display name mismatch: %q", info.DisplayName)
	}
	if !info.IsPracticum1() {
		t.Fatalf("msds692 should be practicum I")
	}
	if info.CourseNumber() != "MSDS 692" || info.PracticumNumeral() != "I" {
		t.Fatalf("course labels mismatch: %q %q", info.CourseNumber(), info.PracticumNumeral())
	}
	if info.SemesterLabel() != "Summer 2025" {
		t.Fatalf("semester label mismatch: %q", info.SemesterLabel())
	}
	if info.GraduationLabel() != "May 2026" {
		t.Fatalf("graduation label mismatch: %q", info.GraduationLabel())
	}
}

func TestParseCourseCodePracticum2(t *testing.T) {
	info := ParseCourseCode("/exports/2025_Fall_MSDS696.csv")
	if info.IsPracticum1() {
		t.Fatalf("msds696 should be practicum II")
	}
	if info.CourseNumber() != "MSDS 696" || info.PracticumNumeral() != "II" {
		t.Fatalf("course labels mismatch: %q %q", info.CourseNumber(), info.PracticumNumeral())
	}
}

func TestParseCourseCodeFallback(t *testing.T) {
	info := ParseCourseCode("roster.csv")
	if info.Year != "2025" || info.Semester != "spring" || info.Course != "msds692" {
		t.Fatalf("fallback mismatch: %#v", info)
	}
	if info.FolderName != "roster" || info.DisplayName != "roster" {
		t.Fatalf("fallback names mismatch: %#v", info)
	}
}

const rosterCSV = `Student Name,Email,Username,Project Title,GitHub
Jordan Rivera,jrivera008@worldclass.regis.edu,#JRivera008,Customer Churn Prediction,https://github.com/jrivera
Sam Lee,slee@regis.edu,slee001,NLP Topic Explorer,
Demo Account,demo@regis.edu,demo_user,Demo Project,
,missing@regis.edu,mname,Missing Name Project,
`

func TestLoaderRead(t *testing.T) {
	loader := NewLoader(nil)
	course := ParseCourseCode("2025_Summer_MSDS692.csv")

	result, err := loader.Read(strings.NewReader(rosterCSV), course)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if len(result.Students) != 2 {
		t.Fatalf("expected 2 students, got %d: %#v", len(result.Students), result.Students)
	}

	first := result.Students[0]
	if first.Email != "jrivera008@regis.edu" {
		t.Fatalf("email not cleaned: %q", first.Email)
	}
	if first.Username != "jrivera008" {
		t.Fatalf("username not cleaned: %q", first.Username)
	}
	if first.FirstName != "Jordan" || first.LastName != "Rivera" {
		t.Fatalf("name split mismatch: %q %q", first.FirstName, first.LastName)
	}
	if first.GitHub != "https://github.com/jrivera" {
		t.Fatalf("optional column lost: %q", first.GitHub)
	}

	if result.Skipped != 1 {
		t.Fatalf("demo account should be skipped, got %d", result.Skipped)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 5 {
		t.Fatalf("missing-name row should be reported: %#v", result.Errors)
	}
}

func TestLoaderMissingColumn(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.Read(strings.NewReader("Student Name,Email\nA,B\n"), CourseInfo{})
	if err == nil || !strings.Contains(err.Error(), "Username") {
		t.Fatalf("expected missing-column error, got %v", err)
	}
}

func TestStudentValidate(t *testing.T) {
	valid := Student{Name: "A", Email: "a@regis.edu", Username: "a", ProjectTitle: "T"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid student rejected: %v", err)
	}

	invalid := Student{Name: "A", Email: "not-an-email", Username: "a", ProjectTitle: "T"}
	if err := invalid.Validate(); err == nil {
		t.Fatalf("bad email should be rejected")
	}
}
