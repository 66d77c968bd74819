package logger

import "errors"

var ErrInvalidLogPath = errors.New("invalid log file path: must be in logs directory")
