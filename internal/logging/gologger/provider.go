// Package gologger adapts go-logger to the portfolio logging contract. It is
// the only package that imports glog directly; everything else works against
// pkg/interfaces.
package gologger

import (
	"context"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/campusfolio/go-portfolio/internal/logging"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// Config mirrors the portfolio LoggingConfig fields that reach the adapter.
// Zero values produce a console logger at info level with no focus filter.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Provider hands out named child loggers backed by a shared go-logger root.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the provider for the given config. Unknown levels and
// formats degrade to the info/console defaults rather than failing, so a typo
// in a -log-format flag never takes the tooling down.
func NewProvider(cfg Config) *Provider {
	options := []glog.Option{
		glog.WithLevel(levelFor(cfg.Level)),
		formatOption(cfg.Format),
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	root := glog.NewLogger(options...)
	if focus := focusNames(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}
}

// GetLogger satisfies interfaces.LoggerProvider. A blank name yields the root
// logger itself.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return adapt(p.root)
	}
	return adapt(p.root.GetLogger(name))
}

func levelFor(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return glog.Info
	}
}

func formatOption(format string) glog.Option {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return glog.WithLoggerTypeJSON()
	case "pretty":
		return glog.WithLoggerTypePretty()
	default:
		return glog.WithLoggerTypeConsole()
	}
}

// focusNames trims the configured focus list and qualifies bare module names
// under the portfolio namespace, so -log-focus=roster matches the
// portfolio.roster logger.
func focusNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if !strings.Contains(trimmed, ".") {
			trimmed = "portfolio." + trimmed
		}
		out = append(out, trimmed)
	}
	return out
}

func adapt(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &glogAdapter{inner: inner}
}

type glogAdapter struct {
	inner glog.Logger
}

func (a *glogAdapter) Trace(msg string, args ...any) { a.inner.Trace(msg, args...) }
func (a *glogAdapter) Debug(msg string, args ...any) { a.inner.Debug(msg, args...) }
func (a *glogAdapter) Info(msg string, args ...any)  { a.inner.Info(msg, args...) }
func (a *glogAdapter) Warn(msg string, args ...any)  { a.inner.Warn(msg, args...) }
func (a *glogAdapter) Error(msg string, args ...any) { a.inner.Error(msg, args...) }
func (a *glogAdapter) Fatal(msg string, args ...any) { a.inner.Fatal(msg, args...) }

func (a *glogAdapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return a
	}
	if inner, ok := a.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for key, value := range fields {
			copied[key] = value
		}
		return adapt(inner.WithFields(copied))
	}
	if inner, ok := a.inner.(interface{ With(...any) *glog.BaseLogger }); ok {
		return adapt(inner.With(fieldPairs(fields)...))
	}
	return a
}

func (a *glogAdapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return a
	}
	return adapt(a.inner.WithContext(ctx))
}

// fieldPairs flattens a field map into key/value pairs with deterministic
// ordering for loggers that only support With.
func fieldPairs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, key, fields[key])
	}
	return pairs
}
