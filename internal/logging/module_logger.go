package logging

import (
	"context"
	"strings"

	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

const (
	rootModule     = "portfolio"
	profileModule  = "portfolio.profile"
	renderModule   = "portfolio.render"
	rosterModule   = "portfolio.roster"
	scaffoldModule = "portfolio.scaffold"
	summaryModule  = "portfolio.summary"
	siteModule     = "portfolio.site"
)

const (
	fieldProfilePath = "profile_path"
	fieldUsername    = "username"
	fieldCourse      = "course"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ProfileLogger returns the logger namespace reserved for the profile parser.
func ProfileLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, profileModule)
}

// RenderLogger returns the logger namespace reserved for the HTML renderer.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// RosterLogger returns the logger namespace reserved for CSV ingestion.
func RosterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rosterModule)
}

// ScaffoldLogger returns the logger namespace reserved for directory scaffolding.
func ScaffoldLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, scaffoldModule)
}

// SummaryLogger returns the logger namespace reserved for JSON summary output.
func SummaryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, summaryModule)
}

// SiteLogger returns the logger namespace reserved for the sync orchestrator.
func SiteLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, siteModule)
}

// WithStudentContext enriches the provided logger with common per-student
// fields such as profile path, username, and course. Empty values are ignored.
func WithStudentContext(logger interfaces.Logger, path, username, course string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldProfilePath] = trimmed
	}
	if trimmed := strings.TrimSpace(username); trimmed != "" {
		fields[fieldUsername] = trimmed
	}
	if trimmed := strings.TrimSpace(course); trimmed != "" {
		fields[fieldCourse] = trimmed
	}
	return WithFields(logger, fields)
}

// WithFields attaches persistent structured fields when the logger supports
// the FieldsLogger extension; other loggers are returned unchanged. The field
// map is copied so callers can reuse theirs after the call.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return fieldsLogger.WithFields(copied)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
