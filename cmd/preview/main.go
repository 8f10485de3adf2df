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
	"github.com/campusfolio/go-portfolio/internal/profile"
	"github.com/campusfolio/go-portfolio/internal/render"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("profile preview: %v", err)
	}
}

func runPreview(args []string) error {
	defaults := portfolio.DefaultConfig()

	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	filePath := fs.String("file", "", "Profile markdown file to preview")
	outPath := fs.String("out", "", "Write the rendered page to this path instead of stdout")
	logLevel := fs.String("log-level", defaults.Logging.Level, "Log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", defaults.Logging.Format, "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *filePath == "" {
		return fmt.Errorf("-file is required")
	}

	cfg := defaults
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	if err := cfg.Validate(); err != nil {
		return err
	}

	provider, err := bootstrap.LoggerProvider(cfg.Logging)
	if err != nil {
		return err
	}

	ctx := context.Background()

	profiles, err := profile.NewService(profile.Config{
		BasePath: filepath.Dir(*filePath),
	}, provider)
	if err != nil {
		return err
	}

	doc, err := profiles.Load(ctx, filepath.Base(*filePath), interfaces.LoadOptions{})
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	renderer, err := render.NewRenderer(provider)
	if err != nil {
		return err
	}
	page, err := renderer.Render(ctx, doc, interfaces.FileURLs{})
	if err != nil {
		return fmt.Errorf("render profile: %w", err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, page, 0o644); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		fmt.Fprintf(os.Stdout, "preview written to %s\n", *outPath)
		return nil
	}

	_, err = os.Stdout.Write(page)
	return err
}
