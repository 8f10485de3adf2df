package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

var requiredColumns = []string{"Student Name", "Email", "Username", "Project Title"}

// RowError records one rejected roster row. Row numbers are one-based and
// include the header line, matching what a spreadsheet shows.
type RowError struct {
	Row    int
	Name   string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %s", e.Row, e.Name, e.Reason)
}

// Result carries everything one roster file produced: the course parsed from
// the filename, accepted students, skipped demo accounts, and per-row
// rejections. Row problems never abort the load.
type Result struct {
	Course   CourseInfo
	Students []Student
	Skipped  int
	Errors   []RowError
}

// Loader reads roster CSV exports into cleaned student records.
type Loader struct {
	logger interfaces.Logger
}

func NewLoader(provider interfaces.LoggerProvider) *Loader {
	return &Loader{logger: logging.RosterLogger(provider)}
}

// LoadFile reads one roster export, deriving the course from the filename.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roster: open %s: %w", path, err)
	}
	defer f.Close()

	return l.Read(f, ParseCourseCode(path))
}

// Read parses roster rows from r for the given course. A missing required
// column fails the whole load; individual bad rows are reported in the
// result and skipped.
func (l *Loader) Read(r io.Reader, course CourseInfo) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("roster: read header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("roster: missing required column %q", name)
		}
	}

	result := &Result{Course: course}

	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: row, Reason: err.Error()})
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		username := CleanUsername(field("Username"))
		if username != "" && IsDemoAccount(username) {
			l.logger.Debug("roster.row.skipped", "row", row, "username", username, "reason", "demo account")
			result.Skipped++
			continue
		}

		student := Student{
			Name:         field("Student Name"),
			Email:        CleanEmail(field("Email")),
			Username:     username,
			ProjectTitle: field("Project Title"),
			GitHub:       field("GitHub"),
			Presentation: field("Presentation"),
			Report:       field("Report"),
			Blog:         field("Blog"),
			Demo:         field("Demo"),
			ProfilePage:  field("Profile Page"),
		}
		student.FirstName, student.LastName = student.SplitName()

		if err := student.Validate(); err != nil {
			l.logger.Warn("roster.row.invalid", "row", row, "name", student.Name, "error", err)
			result.Errors = append(result.Errors, RowError{Row: row, Name: student.Name, Reason: err.Error()})
			continue
		}

		result.Students = append(result.Students, student)
	}

	l.logger.Info("roster.load.complete",
		"course", course.DisplayName,
		"students", len(result.Students),
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)
	return result, nil
}
