package rostercmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/campusfolio/go-portfolio/internal/commands"
	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/internal/roster"
	"github.com/campusfolio/go-portfolio/internal/scaffold"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

const ingestOperation = "roster.ingest"

var _ command.Commander[IngestRosterCommand] = (*IngestRosterHandler)(nil)

// IngestRosterHandler drives one roster ingestion end to end: CSV load,
// demo-account filtering, and per-student scaffolding.
type IngestRosterHandler struct {
	inner *commands.Handler[IngestRosterCommand]
}

// NewIngestRosterHandler wires the loader and scaffolder behind the shared
// command handler foundation.
func NewIngestRosterHandler(provider interfaces.LoggerProvider, opts ...commands.HandlerOption[IngestRosterCommand]) *IngestRosterHandler {
	logger := commands.CommandLogger(provider, "roster")
	loader := roster.NewLoader(provider)

	exec := func(ctx context.Context, msg IngestRosterCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := loader.LoadFile(msg.CSVPath)
		if err != nil {
			return err
		}

		if msg.DryRun {
			for _, student := range result.Students {
				logger.Info("roster.ingest.would_scaffold",
					"username", student.Username,
					"course", result.Course.FolderName,
				)
			}
			return nil
		}

		scaffolder := scaffold.NewService(scaffold.Config{StudentsDir: msg.StudentsDir}, provider)
		created, errs := scaffolder.ScaffoldCourse(result)

		fields := map[string]any{
			"course":         result.Course.FolderName,
			"students":       len(result.Students),
			"scaffolded":     len(created),
			"skipped":        result.Skipped,
			"row_errors":     len(result.Errors),
			"scaffold_fails": len(errs),
		}
		logging.WithFields(logger, fields).Info("roster.ingest.completed")

		if len(errs) > 0 {
			return errs[0]
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[IngestRosterCommand]{
		commands.WithLogger[IngestRosterCommand](logger),
		commands.WithOperation[IngestRosterCommand](ingestOperation),
		commands.WithMessageFields(func(msg IngestRosterCommand) map[string]any {
			fields := map[string]any{
				"csv_path":     msg.CSVPath,
				"students_dir": msg.StudentsDir,
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &IngestRosterHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[IngestRosterCommand].
func (h *IngestRosterHandler) Execute(ctx context.Context, msg IngestRosterCommand) error {
	return h.inner.Execute(ctx, msg)
}
