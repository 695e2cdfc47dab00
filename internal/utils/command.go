package utils

import (
	"log/slog"
	"time"
)

// CommandExecutor provides standardized stage execution for CLI commands
type CommandExecutor struct {
	Operation string
	Target    string
	Logger    *slog.Logger
	start     time.Time
}

// NewCommandExecutor creates a new standardized command executor
func NewCommandExecutor(logger *slog.Logger, operation string, target string) *CommandExecutor {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandExecutor{
		Operation: operation,
		Target:    target,
		Logger:    logger.With("operation", operation, "target", target),
		start:     time.Now(),
	}
}

// Stage runs fn as a named stage, logging its duration and any failure
func (ce *CommandExecutor) Stage(stage string, fn func() error) error {
	ce.Logger.Debug("Starting stage", "stage", stage)
	started := time.Now()

	if err := fn(); err != nil {
		ce.Logger.Debug("Stage failed", "stage", stage, "duration", time.Since(started), "error", err)
		return err
	}

	ce.Logger.Debug("Stage completed", "stage", stage, "duration", time.Since(started))
	return nil
}

// Finish logs the overall result and returns err unchanged
func (ce *CommandExecutor) Finish(err error) error {
	elapsed := time.Since(ce.start)
	if err != nil {
		ce.Logger.Debug("Operation failed", "duration", elapsed, "exit_code", int(ExitCode(err)))
		return err
	}
	ce.Logger.Debug("Operation completed", "duration", elapsed)
	return nil
}
