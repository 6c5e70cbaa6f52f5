package logger

import (
	"os"
	"posyandu-console/internal/app/config"
	"posyandu-console/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

const accessLogFileName = "access.log"

// NewAccessLogger returns the logrus logger behind the per-request access log.
// Production writes JSON lines to access.log; everything else gets text on stderr.
func NewAccessLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	if internalConfig.App.Env != constvars.AppEnvProduction {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return logger
	}

	logger.SetFormatter(&logrus.JSONFormatter{})
	file, err := os.OpenFile(accessLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.WithError(err).Warn("failed to open access log file, using stderr")
		return logger
	}
	logger.SetOutput(file)
	return logger
}
