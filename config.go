// Package portfolio assembles the student portfolio toolkit: roster
// ingestion, profile parsing and merging, HTML rendering, and site sync.
package portfolio

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrLoggingProviderUnknown = errors.New("portfolio config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("portfolio config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("portfolio config: logging format is invalid")

// Config aggregates settings for the portfolio toolkit. Fields use simple
// types so host applications can populate them from flags or environment.
type Config struct {
	Roster  RosterConfig
	Site    SiteConfig
	Logging LoggingConfig
}

// RosterConfig controls CSV ingestion.
type RosterConfig struct {
	// CSVDir holds roster exports named year_semester_course.csv.
	CSVDir string
}

// SiteConfig controls the sync run that publishes profile pages.
type SiteConfig struct {
	// StudentsDir holds one sub-directory per student. Roster ingestion
	// scaffolds into the same directory, so the two commands compose.
	StudentsDir string
	OutputDir   string
	BaseURL     string
	Year        string
	Semester    string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the baseline configuration for a local checkout.
func DefaultConfig() Config {
	return Config{
		Roster: RosterConfig{
			CSVDir: "rosters",
		},
		Site: SiteConfig{
			StudentsDir: "data/students",
			OutputDir:   "site",
			BaseURL:     "https://raw.githubusercontent.com/regis-practicum/student-portfolios/main",
			Year:        "2025",
			Semester:    "summer",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate checks required fields and the logging provider options.
func (cfg Config) Validate() error {
	if err := validation.ValidateStruct(&cfg.Site,
		validation.Field(&cfg.Site.StudentsDir, validation.Required),
		validation.Field(&cfg.Site.Year, validation.Required, validation.Length(4, 4)),
		validation.Field(&cfg.Site.Semester, validation.Required),
	); err != nil {
		return err
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Logging.Provider))
	switch provider {
	case "", "console", "gologger":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
