package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/stackcards/internal/logger"
)

// newLogger builds the command logger. Logs go to --log-file when set and are
// discarded otherwise, since the interactive UI owns the terminal.
func newLogger(flags *rootFlags) (*logger.Logger, io.Closer, error) {
	if flags.logFile == "" {
		return logger.Nop(), io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: file})
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, file, nil
}
