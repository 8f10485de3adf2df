package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/internal/profile"
	"github.com/campusfolio/go-portfolio/internal/roster"
	"github.com/campusfolio/go-portfolio/internal/summary"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// Config controls one sync run.
type Config struct {
	// StudentsDir holds one sub-directory per student, each with a
	// profile.md and uploaded artefacts.
	StudentsDir string
	// OutputDir receives rendered pages (under profiles/) and the
	// per-course summary JSON files.
	OutputDir string
	// BaseURL is the published root for raw student assets.
	BaseURL string
	// Year and Semester identify the current offering, e.g. "2025",
	// "summer".
	Year     string
	Semester string
}

// StudentError records one student whose processing failed. A sync degrades
// per student, it never aborts on one bad profile.
type StudentError struct {
	Username string
	Err      error
}

func (e StudentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Username, e.Err)
}

// SyncResult summarises one run.
type SyncResult struct {
	RunID             string
	StudentsProcessed int
	PagesWritten      int
	SummaryPaths      []string
	Errors            []StudentError
}

// Service walks the students directory, renders a page per practicum course a
// student participates in, and regenerates the per-course summary JSON files.
type Service struct {
	cfg       Config
	renderer  interfaces.ProfileRenderer
	summaries *summary.Service
	resolver  *Resolver
	logger    interfaces.Logger
	newRunID  func() string

	// history caches the previously published summary per course folder so
	// URLs that survive from the last publish keep pointing at the same
	// artefacts even when the local files moved or disappeared.
	history map[string]summaryIndex
}

func NewService(cfg Config, renderer interfaces.ProfileRenderer, summaries *summary.Service, provider interfaces.LoggerProvider) (*Service, error) {
	if strings.TrimSpace(cfg.StudentsDir) == "" {
		return nil, fmt.Errorf("site: students dir is required")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = cfg.StudentsDir
	}
	if renderer == nil {
		return nil, fmt.Errorf("site: renderer is required")
	}
	if summaries == nil {
		return nil, fmt.Errorf("site: summary service is required")
	}
	return &Service{
		cfg:       cfg,
		renderer:  renderer,
		summaries: summaries,
		resolver:  NewResolver(cfg.BaseURL),
		logger:    logging.SiteLogger(provider),
		newRunID:  uuid.NewString,
	}, nil
}

// Sync runs one full pass. Documents are processed sequentially and
// independently; a failure for one student is recorded and the run moves on.
func (s *Service) Sync(ctx context.Context) (*SyncResult, error) {
	entries, err := os.ReadDir(s.cfg.StudentsDir)
	if err != nil {
		return nil, fmt.Errorf("site: read students dir %s: %w", s.cfg.StudentsDir, err)
	}

	result := &SyncResult{RunID: s.newRunID()}
	courses := map[string][]summary.StudentEntry{}
	// Previous summaries are snapshotted up front; they are consulted while
	// students are processed and rewritten only at the end of the run.
	s.history = map[string]summaryIndex{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		username := entry.Name()
		if err := s.syncStudent(ctx, username, courses, result); err != nil {
			s.logger.Error("site.student.failed", "username", username, "error", err)
			result.Errors = append(result.Errors, StudentError{Username: username, Err: err})
			continue
		}
		result.StudentsProcessed++
	}

	// Summaries are written in a stable order so repeated runs produce the
	// same file sequence.
	folders := make([]string, 0, len(courses))
	for folder := range courses {
		folders = append(folders, folder)
	}
	sort.Strings(folders)

	for _, folder := range folders {
		students := courses[folder]
		sort.Slice(students, func(i, j int) bool { return students[i].Username < students[j].Username })

		doc := s.summaries.Build(s.courseInfo(folder), students, result.RunID)
		path, err := s.summaries.Write(s.cfg.OutputDir, doc)
		if err != nil {
			return nil, err
		}
		result.SummaryPaths = append(result.SummaryPaths, path)
	}

	s.logger.Info("site.sync.complete",
		"run_id", result.RunID,
		"students", result.StudentsProcessed,
		"pages", result.PagesWritten,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (s *Service) syncStudent(ctx context.Context, username string, courses map[string][]summary.StudentEntry, result *SyncResult) error {
	studentDir := filepath.Join(s.cfg.StudentsDir, username)
	profilePath := filepath.Join(studentDir, "profile.md")

	raw, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	doc, err := profile.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}
	doc.FilePath = profilePath

	files := s.resolver.FindStudentFiles(studentDir, "students", username)

	urls := interfaces.FileURLs{
		Avatar:     files.AvatarURL,
		CV:         files.CVURL,
		Practicum1: s.projectURLs(files, username, true),
		Practicum2: s.projectURLs(files, username, false),
	}

	page, err := s.renderer.Render(ctx, doc, urls)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	pagePath, err := s.writePage(username, page)
	if err != nil {
		return err
	}
	result.PagesWritten++

	entry := summary.StudentEntry{
		Username:    username,
		Name:        studentDisplayName(doc.Metadata, username),
		Email:       doc.Metadata.Get("email", ""),
		Semester:    doc.Metadata.Get("semester", s.semesterLabel()),
		ProfilePath: filepath.ToSlash(profilePath),
		ProfilePage: filepath.ToSlash(pagePath),
		AvatarPath:  files.AvatarURL,
		Files:       files.AllFiles(),
	}

	if !doc.Sections.Practicum1.Empty() {
		s.addCourseEntry(courses, true, entry)
	}
	if !doc.Sections.Practicum2.Empty() {
		s.addCourseEntry(courses, false, entry)
	}

	logger := logging.WithStudentContext(s.logger, profilePath, username, doc.Metadata.Get("course", ""))
	logger.Debug("site.student.synced", "page", pagePath)
	return nil
}

// projectURLs combines local file detection with the URLs carried by the
// previously published course summary. Summary URLs win; detection fills the
// gaps.
func (s *Service) projectURLs(files *StudentFiles, username string, practicum1 bool) interfaces.ProjectURLs {
	local := files.ProjectURLs(practicum1)

	if s.history == nil {
		s.history = map[string]summaryIndex{}
	}
	folder := s.courseFolder(practicum1)
	index, ok := s.history[folder]
	if !ok {
		index = loadSummaryIndex(filepath.Join(s.cfg.OutputDir, folder+".json"))
		s.history[folder] = index
	}
	return index.projectURLs(username, practicum1, local)
}

func (s *Service) addCourseEntry(courses map[string][]summary.StudentEntry, practicum1 bool, entry summary.StudentEntry) {
	folder := s.courseFolder(practicum1)
	entry.Course = folder
	courses[folder] = append(courses[folder], entry)
}

func (s *Service) writePage(username string, page []byte) (string, error) {
	dir := filepath.Join(s.cfg.OutputDir, "profiles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create profiles dir: %w", err)
	}
	path := filepath.Join(dir, username+".html")
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return "", fmt.Errorf("write page %s: %w", path, err)
	}
	return path, nil
}

func (s *Service) courseFolder(practicum1 bool) string {
	course := "msds696"
	if practicum1 {
		course = "msds692"
	}
	return fmt.Sprintf("%s_%s_%s", s.cfg.Year, strings.ToLower(s.cfg.Semester), course)
}

// courseInfo recovers the offering from a folder name produced by
// courseFolder.
func (s *Service) courseInfo(folder string) roster.CourseInfo {
	return roster.ParseCourseCode(folder + ".csv")
}

func (s *Service) semesterLabel() string {
	if s.cfg.Semester == "" {
		return ""
	}
	return strings.ToUpper(s.cfg.Semester[:1]) + strings.ToLower(s.cfg.Semester[1:]) + " " + s.cfg.Year
}

func studentDisplayName(meta interfaces.Metadata, username string) string {
	name := strings.TrimSpace(meta.Get("firstName", "") + " " + meta.Get("lastName", ""))
	if name == "" {
		name = meta.Get("name", username)
	}
	return name
}
