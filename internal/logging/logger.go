package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

// Init routes logs to stdout plus a size-capped rolling file. Safe to call
// once at startup; before that Logger writes to stderr with defaults.
func Init(logFile string) {
	out := io.Writer(os.Stdout)

	if logFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	Logger.SetOutput(out)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Logger.SetLevel(logrus.InfoLevel)
}
