package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger: JSON output to stdout at the
// given level.
func Init(level string) {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	logrus.Info("logger initialized")
}
