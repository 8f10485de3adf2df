package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	portfolio "github.com/campusfolio/go-portfolio"
	"github.com/campusfolio/go-portfolio/cmd/internal/bootstrap"
	sitecmd "github.com/campusfolio/go-portfolio/internal/commands/site"
)

func main() {
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("site sync: %v", err)
	}
}

func runSync(args []string) error {
	defaults := portfolio.DefaultConfig()

	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	studentsDir := fs.String("students-dir", defaults.Site.StudentsDir, "Directory holding one sub-directory per student")
	outputDir := fs.String("output-dir", defaults.Site.OutputDir, "Directory rendered pages and summaries are written to")
	baseURL := fs.String("base-url", defaults.Site.BaseURL, "Published root student assets are served from")
	year := fs.String("year", defaults.Site.Year, "Offering year, e.g. 2025")
	semester := fs.String("semester", defaults.Site.Semester, "Offering semester, e.g. summer")
	logLevel := fs.String("log-level", defaults.Logging.Level, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", defaults.Logging.Format, "Log format (json, console, pretty)")
	logFocus := fs.String("log-focus", "", "Comma separated module list to focus logging on")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaults
	cfg.Site.StudentsDir = *studentsDir
	cfg.Site.OutputDir = *outputDir
	cfg.Site.BaseURL = *baseURL
	cfg.Site.Year = *year
	cfg.Site.Semester = *semester
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	cfg.Logging.Focus = bootstrap.SplitFocus(*logFocus)
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := bootstrap.LoggerProvider(cfg.Logging)
	if err != nil {
		return err
	}

	handler := sitecmd.NewSyncSiteHandler(provider)
	cmd := sitecmd.SyncSiteCommand{
		StudentsDir: cfg.Site.StudentsDir,
		OutputDir:   cfg.Site.OutputDir,
		BaseURL:     cfg.Site.BaseURL,
		Year:        cfg.Site.Year,
		Semester:    cfg.Site.Semester,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}

	fmt.Fprintln(os.Stdout, "site sync command executed successfully")
	return nil
}
