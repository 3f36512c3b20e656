// internal/utils/logging.go
package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/jobtracker/internal/config"
)

// ConfigureLogger sets the global logrus level and formatter.
func ConfigureLogger(cfg config.LogConfig) {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if err != nil && cfg.Level != "" {
		logrus.WithField("level", cfg.Level).Warn("Unknown log level, using info")
	}
}
