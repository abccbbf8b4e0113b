package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var logger = logrus.New()

func setupLogging(ctx *cli.Context) error {
	logger.SetOutput(os.Stderr)
	switch {
	case debugFlag:
		logger.SetLevel(logrus.DebugLevel)
	case verboseFlag:
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
	return nil
}

func logVerbose(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

func logDebug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}
