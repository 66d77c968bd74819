package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logsDir = "logs"

// NewLogger builds the service logger. Entries are JSON encoded and written to
// stdout; when file is non-empty they are also appended, asynchronously, to
// logs/<file>.
func NewLogger(level, file string) (*logrus.Logger, error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(level))

	if file == "" {
		logger.SetOutput(os.Stdout)
		return logger, nil
	}

	logFile := filepath.Clean(filepath.Join(logsDir, file))
	if !strings.HasPrefix(logFile, logsDir+string(filepath.Separator)) {
		return nil, ErrInvalidLogPath
	}
	if err := os.MkdirAll(logsDir, 0750); err != nil {
		return nil, err
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger, nil
}

func parseLevel(level string) logrus.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
