package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/internal/profile"
	"github.com/campusfolio/go-portfolio/internal/roster"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// studentSubdirs are created under every student directory.
var studentSubdirs = []string{"reports", "presentations", "assets"}

// Config controls where student trees are created.
type Config struct {
	// StudentsDir is the directory the site sync reads from; one tree is
	// created under StudentsDir/<username>/.
	StudentsDir string
}

// Service creates per-student directory trees from roster records. An
// existing profile.md is never overwritten so student edits survive
// re-scaffolding; the README is regenerated on every run.
type Service struct {
	cfg    Config
	logger interfaces.Logger
	now    func() time.Time
}

func NewService(cfg Config, provider interfaces.LoggerProvider) *Service {
	if cfg.StudentsDir == "" {
		cfg.StudentsDir = "."
	}
	return &Service{
		cfg:    cfg,
		logger: logging.ScaffoldLogger(provider),
		now:    time.Now,
	}
}

// StudentResult reports what one scaffold produced.
type StudentResult struct {
	Username       string
	Dir            string
	ProfileCreated bool
}

// ScaffoldStudent creates the directory tree for one roster record and
// returns where it landed.
func (s *Service) ScaffoldStudent(student roster.Student, course roster.CourseInfo) (*StudentResult, error) {
	dir := filepath.Join(s.cfg.StudentsDir, student.Username)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scaffold: create %s: %w", dir, err)
	}
	for _, sub := range studentSubdirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("scaffold: create %s/%s: %w", dir, sub, err)
		}
	}

	result := &StudentResult{Username: student.Username, Dir: dir}

	profilePath := filepath.Join(dir, "profile.md")
	if _, err := os.Stat(profilePath); os.IsNotExist(err) {
		content := profileContent(student, course)
		if err := os.WriteFile(profilePath, content, 0o644); err != nil {
			return nil, fmt.Errorf("scaffold: write %s: %w", profilePath, err)
		}
		result.ProfileCreated = true
		s.logger.Info("scaffold.profile.created", "username", student.Username, "path", profilePath)
	} else if err == nil {
		s.logger.Debug("scaffold.profile.exists", "username", student.Username, "path", profilePath)
	} else {
		return nil, fmt.Errorf("scaffold: stat %s: %w", profilePath, err)
	}

	readmePath := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readmePath, s.readmeContent(student, course), 0o644); err != nil {
		return nil, fmt.Errorf("scaffold: write %s: %w", readmePath, err)
	}

	return result, nil
}

// ScaffoldCourse runs ScaffoldStudent over a whole roster result. Individual
// failures are logged and reported, never abort the batch.
func (s *Service) ScaffoldCourse(result *roster.Result) ([]StudentResult, []error) {
	var (
		created []StudentResult
		errs    []error
	)
	for _, student := range result.Students {
		res, err := s.ScaffoldStudent(student, result.Course)
		if err != nil {
			s.logger.Error("scaffold.student.failed", "username", student.Username, "error", err)
			errs = append(errs, err)
			continue
		}
		created = append(created, *res)
	}
	return created, errs
}

// profileContent seeds the initial profile.md from the roster record.
func profileContent(student roster.Student, course roster.CourseInfo) []byte {
	key := profile.SectionPracticum1
	if !course.IsPracticum1() {
		key = profile.SectionPracticum2
	}

	return profile.RenderTemplate(profile.TemplateData{
		Name:       student.Name,
		FirstName:  student.FirstName,
		LastName:   student.LastName,
		Email:      student.Email,
		Username:   student.Username,
		Semester:   course.SemesterLabel(),
		Graduation: course.GraduationLabel(),
		Project: interfaces.Project{
			Title:  student.ProjectTitle,
			GitHub: student.GitHub,
		},
		Key: key,
	})
}
