package utils

import (
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/logfmt"
)

// NewLogger returns a logfmt logger writing to output, or stderr when output
// is nil. debug forces the debug level.
func NewLogger(level log.Level, debug bool, output io.Writer) *log.Logger {
	logger := &log.Logger{}

	if debug {
		logger.Level = log.DebugLevel
	} else {
		logger.Level = level
	}

	if output == nil {
		output = os.Stderr
	}

	logger.Handler = logfmt.New(output)

	return logger
}
