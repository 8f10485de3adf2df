package roster

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseCourseCode extracts course information from a roster export filename:
// 2025_Summer_MSDS692.csv yields year 2025, semester summer, course msds692.
// Filenames that do not follow the year_semester_course convention fall back
// to a default offering keeping the base name as the folder.
func ParseCourseCode(filename string) CourseInfo {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	parts := strings.Split(base, "_")

	if len(parts) < 3 {
		return CourseInfo{
			Year:        "2025",
			Semester:    "spring",
			Course:      "msds692",
			FolderName:  base,
			DisplayName: base,
		}
	}

	year := parts[0]
	semester := strings.ToLower(parts[1])
	course := strings.ToLower(parts[2])

	return CourseInfo{
		Year:        year,
		Semester:    semester,
		Course:      course,
		FolderName:  fmt.Sprintf("%s_%s_%s", year, semester, course),
		DisplayName: fmt.Sprintf("%s - %s %s", strings.ToUpper(course), titleCase(semester), year),
	}
}
