package summary

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/campusfolio/go-portfolio/internal/roster"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(nil)
	svc.now = func() time.Time { return time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "00000000-0000-0000-0000-000000000001" }
	return svc
}

func testEntries() []StudentEntry {
	return []StudentEntry{
		{
			Username:    "jrivera008",
			Name:        "Jordan Rivera",
			Email:       "jrivera@regis.edu",
			Semester:    "Summer 2025",
			Course:      "2025_summer_msds692",
			ProfilePath: "data/2025_summer_msds692/jrivera008/profile.md",
			ProfilePage: "profiles/jrivera008.html",
			Files:       []FileRef{{Name: "report.pdf", URL: "https://example.com/report.pdf"}},
		},
	}
}

func TestBuild(t *testing.T) {
	svc := newTestService(t)
	course := roster.ParseCourseCode("2025_Summer_MSDS692.csv")

	doc := svc.Build(course, testEntries(), "")

	if doc.Course.Code != "2025_SUMMER_MSDS692" {
		t.Fatalf("course code mismatch: %q", doc.Course.Code)
	}
	if doc.Course.Semester != "Summer 2025" || doc.Course.Year != "2025" {
		t.Fatalf("course meta mismatch: %#v", doc.Course)
	}
	if doc.University.Name != "Regis University" {
		t.Fatalf("university block missing: %#v", doc.University)
	}
	if doc.Statistics.TotalStudents != 1 || doc.Statistics.TotalProjects != 1 {
		t.Fatalf("statistics mismatch: %#v", doc.Statistics)
	}
	if doc.Metadata.SyncRunID != "00000000-0000-0000-0000-000000000001" {
		t.Fatalf("run id not generated: %q", doc.Metadata.SyncRunID)
	}
	if doc.Metadata.SyncedAt != "2025-08-30T12:00:00Z" {
		t.Fatalf("synced timestamp mismatch: %q", doc.Metadata.SyncedAt)
	}
}

func TestBuildKeepsSuppliedRunID(t *testing.T) {
	svc := newTestService(t)
	doc := svc.Build(roster.CourseInfo{FolderName: "x", Course: "msds696", Year: "2025"}, nil, "run-42")
	if doc.Metadata.SyncRunID != "run-42" {
		t.Fatalf("supplied run id dropped: %q", doc.Metadata.SyncRunID)
	}
	if doc.Students == nil || len(doc.Students) != 0 {
		t.Fatalf("nil students should encode as an empty array: %#v", doc.Students)
	}
}

func TestEncodeValidates(t *testing.T) {
	svc := newTestService(t)
	course := roster.ParseCourseCode("2025_Summer_MSDS692.csv")

	encoded, err := svc.Encode(svc.Build(course, testEntries(), ""))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"course", "university", "students", "spotlight", "statistics", "metadata"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("top-level key %q missing", key)
		}
	}
}

func TestEncodeRejectsInvalidDocument(t *testing.T) {
	svc := newTestService(t)

	// Empty course code violates the schema's minLength.
	doc := svc.Build(roster.CourseInfo{}, nil, "run")
	doc.Course.Code = ""
	doc.Course.Name = ""

	if _, err := svc.Encode(doc); err == nil {
		t.Fatalf("expected schema validation failure")
	} else if !strings.Contains(err.Error(), "schema validation") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWrite(t *testing.T) {
	svc := newTestService(t)
	dir := t.TempDir()
	course := roster.ParseCourseCode("2025_Summer_MSDS692.csv")

	path, err := svc.Write(dir, svc.Build(course, testEntries(), ""))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "2025_summer_msds692.json" {
		t.Fatalf("file name mismatch: %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(data), `"username": "jrivera008"`) {
		t.Fatalf("student entry missing:\n%s", string(data))
	}
}
