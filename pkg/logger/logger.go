package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger writing to stderr, stdout is kept for the seeding report.
// format is "text" or "json".
func New(level, format string) (*logrus.Logger, error) {
	return newWithOutput(os.Stderr, level, format)
}

func newWithOutput(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("Error during parsing log level with: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("Error during building logger with: unknown format %q", format)
	}

	return l, nil
}

// Discard returns a logger that drops everything
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
