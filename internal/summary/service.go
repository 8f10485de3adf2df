package summary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/internal/roster"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

const summaryVersion = "1.0"

// Service builds and writes per-course JSON summaries. The clock and run-id
// generator are injectable so tests get stable output.
type Service struct {
	logger interfaces.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(provider interfaces.LoggerProvider) *Service {
	return &Service{
		logger: logging.SummaryLogger(provider),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Build assembles the summary document for one course offering. The run id
// ties every summary written by the same sync invocation together.
func (s *Service) Build(course roster.CourseInfo, students []StudentEntry, runID string) CourseSummary {
	if runID == "" {
		runID = s.newID()
	}
	now := s.now().Format(time.RFC3339)

	if students == nil {
		students = []StudentEntry{}
	}

	return CourseSummary{
		Course: CourseMeta{
			Code:     strings.ToUpper(course.FolderName),
			Name:     "Data Science Practicum - " + strings.ToUpper(course.Course),
			Semester: course.SemesterLabel(),
			Year:     course.Year,
			Description: fmt.Sprintf(
				"Student portfolios for %s - Data Science Practicum course at Regis University.",
				strings.ToUpper(course.Course)),
		},
		University: DefaultUniversity,
		Students:   students,
		Spotlight:  []StudentEntry{},
		Statistics: Statistics{
			TotalStudents: len(students),
			TotalProjects: len(students),
			LastUpdated:   now,
		},
		Metadata: RunMeta{
			DataSource: "campusfolio repository",
			SyncedAt:   now,
			SyncRunID:  runID,
			Version:    summaryVersion,
		},
	}
}

// Encode marshals a summary after checking it against the embedded schema.
func (s *Service) Encode(doc CourseSummary) ([]byte, error) {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("summary: encode: %w", err)
	}

	// Validate the exact bytes being written, not the in-memory struct, so
	// the schema sees what the site pipeline will see.
	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, fmt.Errorf("summary: decode for validation: %w", err)
	}
	if err := validateDocument(decoded); err != nil {
		return nil, err
	}
	return encoded, nil
}

// Write encodes and writes the summary as <folder name>.json under dir.
func (s *Service) Write(dir string, doc CourseSummary) (string, error) {
	encoded, err := s.Encode(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("summary: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, strings.ToLower(doc.Course.Code)+".json")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("summary: write %s: %w", path, err)
	}

	s.logger.Info("summary.written",
		"path", path,
		"students", doc.Statistics.TotalStudents,
		"run_id", doc.Metadata.SyncRunID,
	)
	return path, nil
}
