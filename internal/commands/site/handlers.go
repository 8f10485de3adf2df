package sitecmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/campusfolio/go-portfolio/internal/commands"
	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/internal/render"
	"github.com/campusfolio/go-portfolio/internal/site"
	"github.com/campusfolio/go-portfolio/internal/summary"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

const syncOperation = "site.sync"

var _ command.Commander[SyncSiteCommand] = (*SyncSiteHandler)(nil)

// SyncSiteHandler drives one full site regeneration via the shared command
// handler foundation.
type SyncSiteHandler struct {
	inner *commands.Handler[SyncSiteCommand]
}

func NewSyncSiteHandler(provider interfaces.LoggerProvider, opts ...commands.HandlerOption[SyncSiteCommand]) *SyncSiteHandler {
	logger := commands.CommandLogger(provider, "site")

	exec := func(ctx context.Context, msg SyncSiteCommand) error {
		renderer, err := render.NewRenderer(provider)
		if err != nil {
			return err
		}

		svc, err := site.NewService(site.Config{
			StudentsDir: msg.StudentsDir,
			OutputDir:   msg.OutputDir,
			BaseURL:     msg.BaseURL,
			Year:        msg.Year,
			Semester:    msg.Semester,
		}, renderer, summary.NewService(provider), provider)
		if err != nil {
			return err
		}

		result, err := svc.Sync(ctx)
		if err != nil {
			return err
		}

		logging.WithFields(logger, map[string]any{
			"run_id":    result.RunID,
			"students":  result.StudentsProcessed,
			"pages":     result.PagesWritten,
			"summaries": len(result.SummaryPaths),
			"errors":    len(result.Errors),
		}).Info("site.sync.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncSiteCommand]{
		commands.WithLogger[SyncSiteCommand](logger),
		commands.WithOperation[SyncSiteCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncSiteCommand) map[string]any {
			return map[string]any{
				"students_dir": msg.StudentsDir,
				"output_dir":   msg.OutputDir,
				"year":         msg.Year,
				"semester":     msg.Semester,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SyncSiteCommand].
func (h *SyncSiteHandler) Execute(ctx context.Context, msg SyncSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
