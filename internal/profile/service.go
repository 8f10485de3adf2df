package profile

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// Config controls how the profile service discovers and merges documents.
type Config struct {
	// BasePath is the root directory where student profile trees live.
	BasePath string
	// Pattern limits discovered files to those matching the supplied glob
	// (defaults to "profile.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// CurrentSemester is stamped into the header block on every merge
	// (e.g. "Summer 2025"). Empty leaves existing values untouched.
	CurrentSemester string
}

// Service implements interfaces.ProfileService for filesystem-backed profiles.
type Service struct {
	cfg    Config
	fs     fs.FS
	logger interfaces.Logger
}

// NewService constructs a profile service rooted at cfg.BasePath.
func NewService(cfg Config, provider interfaces.LoggerProvider) (*Service, error) {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("profile service: stat base path %s: %w", basePath, err)
	}
	cfg.BasePath = basePath

	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = "profile.md"
	}

	return &Service{
		cfg:    cfg,
		fs:     os.DirFS(basePath),
		logger: logging.ProfileLogger(provider),
	}, nil
}

var _ interfaces.ProfileService = (*Service)(nil)

// Parse satisfies interfaces.ProfileService.
func (s *Service) Parse(raw []byte) (*interfaces.Document, error) {
	return parseWithLogger(raw, s.logger)
}

// Load reads and parses a single profile relative to the configured base path.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rel, err := s.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(s.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("profile loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(s.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("profile loader stat %s: %w", rel, err)
	}

	doc, err := parseWithLogger(data, logging.WithStudentContext(s.logger, rel, "", ""))
	if err != nil {
		return nil, err
	}
	doc.FilePath = rel
	doc.LastModified = info.ModTime()
	sum := sha256.Sum256(data)
	doc.Checksum = sum[:]

	return doc, nil
}

// LoadDirectory discovers profile files under dir and returns parsed documents
// sorted by file path.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	root, err := s.makeRelative(dir)
	if err != nil {
		return nil, err
	}
	root = filepath.ToSlash(filepath.Clean(root))

	var docs []*interfaces.Document

	walkErr := fs.WalkDir(s.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if !s.shouldRecurse(root, path, opts.Recursive) {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel := filepath.ToSlash(path)
		if !s.matchesPattern(rel, opts.Pattern) {
			return nil
		}

		doc, err := s.Load(ctx, rel, opts)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})
	return docs, nil
}

func (s *Service) shouldRecurse(root, current string, override *bool) bool {
	recursive := s.cfg.Recursive
	if override != nil {
		recursive = *override
	}
	if recursive {
		return true
	}
	// If recursion is disabled, only walk the root directory.
	return filepath.Clean(root) == filepath.Clean(current)
}

func (s *Service) matchesPattern(path string, override string) bool {
	pattern := override
	if strings.TrimSpace(pattern) == "" {
		pattern = s.cfg.Pattern
	}
	pattern = filepath.ToSlash(pattern)
	var target string
	if strings.Contains(pattern, "/") {
		target = path
	} else {
		target = filepath.Base(path)
	}
	match, err := filepath.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func (s *Service) makeRelative(path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	rel, err := filepath.Rel(s.cfg.BasePath, clean)
	if err != nil {
		return "", fmt.Errorf("profile loader: make relative %s: %w", path, err)
	}
	return rel, nil
}
