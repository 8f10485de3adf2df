package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	portfolio "github.com/campusfolio/go-portfolio"
	"github.com/campusfolio/go-portfolio/cmd/internal/bootstrap"
	rostercmd "github.com/campusfolio/go-portfolio/internal/commands/roster"
)

func main() {
	if err := runIngest(os.Args[1:]); err != nil {
		log.Fatalf("roster ingest: %v", err)
	}
}

func runIngest(args []string) error {
	defaults := portfolio.DefaultConfig()

	fs := flag.NewFlagSet("roster", flag.ExitOnError)
	csvPath := fs.String("csv", "", "Roster CSV export, e.g. 2025_Summer_MSDS692.csv")
	csvDir := fs.String("csv-dir", defaults.Roster.CSVDir, "Directory bare -csv filenames are resolved against")
	studentsDir := fs.String("students-dir", defaults.Site.StudentsDir, "Directory student trees are created under; the sync command reads the same directory")
	dryRun := fs.Bool("dry-run", false, "List students without creating directories or profiles")
	logLevel := fs.String("log-level", defaults.Logging.Level, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", defaults.Logging.Format, "Log format (json, console, pretty)")
	logFocus := fs.String("log-focus", "", "Comma separated module list to focus logging on")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *csvPath == "" {
		return fmt.Errorf("-csv is required")
	}
	csv := *csvPath
	if filepath.Dir(csv) == "." && *csvDir != "" {
		csv = filepath.Join(*csvDir, csv)
	}

	cfg := defaults
	cfg.Roster.CSVDir = *csvDir
	cfg.Site.StudentsDir = *studentsDir
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

	handler := rostercmd.NewIngestRosterHandler(provider)
	cmd := rostercmd.IngestRosterCommand{
		CSVPath:     csv,
		StudentsDir: cfg.Site.StudentsDir,
		DryRun:      *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute ingest command: %w", err)
	}

	fmt.Fprintln(os.Stdout, "roster ingest command executed successfully")
	return nil
}
