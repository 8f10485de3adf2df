package roster

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Student is one roster row after cleaning. Optional link columns stay empty
// when the export does not carry them; downstream consumers substitute the
// placeholder URL.
type Student struct {
	Name         string
	FirstName    string
	LastName     string
	Email        string
	Username     string
	ProjectTitle string

	GitHub       string
	Presentation string
	Report       string
	Blog         string
	Demo         string
	ProfilePage  string
}

// Validate enforces the required-field contract for a cleaned roster row.
func (s Student) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Email, validation.Required, is.EmailFormat),
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.ProjectTitle, validation.Required),
	)
}

// SplitName divides the display name into first and remaining parts; a
// single-token name falls back to the username for the first name.
func (s Student) SplitName() (first, last string) {
	parts := strings.Fields(s.Name)
	if len(parts) == 0 {
		return s.Username, ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// CourseInfo identifies one course offering, parsed from a roster filename
// such as 2025_Summer_MSDS692.csv.
type CourseInfo struct {
	Year     string
	Semester string
	Course   string
	// FolderName is the on-disk directory for the offering,
	// e.g. 2025_summer_msds692.
	FolderName  string
	DisplayName string
}

// IsPracticum1 reports whether the offering is the first practicum course.
func (c CourseInfo) IsPracticum1() bool {
	return strings.Contains(strings.ToLower(c.Course), "msds692")
}

// CourseNumber returns the spaced display form, e.g. "MSDS 692".
func (c CourseInfo) CourseNumber() string {
	if c.IsPracticum1() {
		return "MSDS 692"
	}
	return "MSDS 696"
}

// PracticumNumeral returns "I" or "II" for README and profile text.
func (c CourseInfo) PracticumNumeral() string {
	if c.IsPracticum1() {
		return "I"
	}
	return "II"
}

// SemesterLabel formats the offering as "Summer 2025".
func (c CourseInfo) SemesterLabel() string {
	return titleCase(c.Semester) + " " + c.Year
}

// GraduationLabel estimates graduation as May of the following year.
func (c CourseInfo) GraduationLabel() string {
	year, err := strconv.Atoi(c.Year)
	if err != nil {
		return "May " + c.Year
	}
	return fmt.Sprintf("May %d", year+1)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
