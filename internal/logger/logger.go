package logger

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Options configures Setup.
type Options struct {
	File    string
	Level   string
	Console bool
}

// Setup initializes Logrus on a rotating file and returns the writer it uses,
// so access logs can share it.
func Setup(opts Options) io.Writer {
	// 1) Lumberjack for file rotation
	var out io.Writer = &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}
	if opts.File == "" {
		out = os.Stdout
	} else if opts.Console {
		out = io.MultiWriter(out, os.Stdout)
	}

	// 2) Configure Logrus to write to that file
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level) // SQL is logged at debug

	return out
}

// GormLogger returns the standard Logrus logger for GORM
func GormLogger() *logrus.Logger {
	return logrus.StandardLogger()
}
