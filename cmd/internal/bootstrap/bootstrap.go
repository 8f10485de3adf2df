// Package bootstrap wires shared CLI concerns: logging provider construction
// and config assembly from flags.
package bootstrap

import (
	"fmt"
	"strings"

	portfolio "github.com/campusfolio/go-portfolio"
	"github.com/campusfolio/go-portfolio/internal/logging/gologger"
	"github.com/campusfolio/go-portfolio/pkg/interfaces"
)

// LoggerProvider builds the logger provider described by the config. An empty
// provider name yields nil, which every service treats as no-op logging.
func LoggerProvider(cfg portfolio.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "":
		return nil, nil
	case "console":
		return gologger.NewProvider(gologger.Config{
			Level:  cfg.Level,
			Format: "console",
			Focus:  cfg.Focus,
		}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		}), nil
	default:
		return nil, fmt.Errorf("bootstrap: unsupported logging provider %q", cfg.Provider)
	}
}

// SplitFocus parses a comma separated module list into a trimmed slice.
func SplitFocus(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	focus := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			focus = append(focus, trimmed)
		}
	}
	return focus
}
