package bootstrap

import (
	"testing"

	portfolio "github.com/campusfolio/go-portfolio"
)

func TestLoggerProviderEmptyIsNil(t *testing.T) {
	provider, err := LoggerProvider(portfolio.LoggingConfig{})
	if err != nil {
		t.Fatalf("LoggerProvider() error = %v", err)
	}
	if provider != nil {
		t.Fatal("expected nil provider for empty config")
	}
}

func TestLoggerProviderGologger(t *testing.T) {
	provider, err := LoggerProvider(portfolio.LoggingConfig{
		Provider: "gologger",
		Level:    "debug",
		Format:   "json",
	})
	if err != nil {
		t.Fatalf("LoggerProvider() error = %v", err)
	}
	if provider == nil {
		t.Fatal("expected provider")
	}
	if provider.GetLogger("portfolio.profile") == nil {
		t.Fatal("expected module logger")
	}
}

func TestLoggerProviderUnknown(t *testing.T) {
	if _, err := LoggerProvider(portfolio.LoggingConfig{Provider: "syslog"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestSplitFocus(t *testing.T) {
	focus := SplitFocus(" portfolio.profile , ,portfolio.site ")
	if len(focus) != 2 || focus[0] != "portfolio.profile" || focus[1] != "portfolio.site" {
		t.Fatalf("SplitFocus() = %v", focus)
	}
}
