package shared

import (
	"os"

	"github.com/sirupsen/logrus"
)

// GetLogger returns a new logger.
func GetLogger(debug bool) (*logrus.Logger, error) {
	logger := logrus.StandardLogger()

	formatter := logrus.TextFormatter{
		FullTimestamp: true,
		PadLevelText:  true,
	}

	logger.SetFormatter(&formatter)
	logger.SetOutput(os.Stdout)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger, nil
}
