// Package logging builds the structured logger shared by all components.
// Log lines are side-channel observability, never part of the functional
// contract.
package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a configured logrus logger. Unknown levels fall back to info
// rather than failing startup.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if strings.ToLower(format) == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
