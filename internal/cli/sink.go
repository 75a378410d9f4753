package cli

import (
	"fmt"
	"log/slog"
	"os"
)

// ConsoleSink reports run feedback on the terminal. Success lines go to
// stdout, failures to stderr, attached reports through the logger.
type ConsoleSink struct {
	logger *slog.Logger
	quiet  bool
}

// NewConsoleSink creates a console sink. Quiet suppresses the stdout
// summary (used in JSON mode, where stdout carries machine output).
func NewConsoleSink(logger *slog.Logger, quiet bool) *ConsoleSink {
	return &ConsoleSink{logger: logger, quiet: quiet}
}

func (s *ConsoleSink) AttachInfo(category string, objectIDs []string, message string) error {
	s.logger.Info("report attached", "category", category, "objects", len(objectIDs), "summary", message)
	return nil
}

func (s *ConsoleSink) MarkRunSuccess(message string) {
	if s.quiet {
		return
	}
	fmt.Println(message)
}

func (s *ConsoleSink) MarkRunFailed(message string) {
	fmt.Fprintln(os.Stderr, "Run failed:", message)
}
