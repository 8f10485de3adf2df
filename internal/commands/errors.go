package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so portfolio failures can be
// filtered in aggregated logs.
const (
	CodeValidationFailed = "PORTFOLIO_COMMAND_VALIDATION_FAILED"
	CodeCancelled        = "PORTFOLIO_COMMAND_CANCELLED"
	CodeDeadlineExceeded = "PORTFOLIO_COMMAND_DEADLINE_EXCEEDED"
	CodeContextError     = "PORTFOLIO_COMMAND_CONTEXT_ERROR"
	CodeExecutionFailed  = "PORTFOLIO_COMMAND_EXECUTION_FAILED"
)

// wrapError tags err with a go-errors category and a portfolio text code.
// Already-wrapped errors pass through unchanged so the innermost
// categorisation wins.
func wrapError(err error, category goerrors.Category, code, message string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}

func wrapValidationError(err error) error {
	return wrapError(err, goerrors.CategoryValidation, CodeValidationFailed,
		"portfolio command validation failed")
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return wrapError(err, goerrors.CategoryCommand, CodeCancelled,
			"portfolio command cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return wrapError(err, goerrors.CategoryCommand, CodeDeadlineExceeded,
			"portfolio command deadline exceeded")
	default:
		return wrapError(err, goerrors.CategoryCommand, CodeContextError,
			"portfolio command context error")
	}
}

func wrapExecuteError(err error) error {
	return wrapError(err, goerrors.CategoryCommand, CodeExecutionFailed,
		"portfolio command execution failed")
}
