package util

import (
	"fmt"
	"strings"
	"sync"
)

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// InitLogger initializes the global logger once. Logging stays disabled when
// it is never called, which keeps package tests quiet.
func InitLogger(logLevel, logFile, logFormat string, debugToConsole bool) error {
	format, err := ParseLogFormat(logFormat)
	if err != nil {
		return err
	}
	loggerOnce.Do(func() {
		var l *Logger
		if l, err = NewLogger(logLevel, logFile, debugToConsole); err == nil {
			l.SetFormat(format)
			globalLogger = l
		}
	})
	return err
}

// CloseLogger closes the file output of the global logger.
func CloseLogger() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Close()
}

// ParseLogFormat accepts "text" (or empty) and "json".
func ParseLogFormat(format string) (LogFormat, error) {
	switch strings.ToLower(format) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported log format: %s (text, json)", format)
	}
}

func LogInfo(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Info(msg, fields...)
	}
}

func LogDebug(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Debug(msg, fields...)
	}
}

func LogWarn(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Warn(msg, fields...)
	}
}

func LogError(msg string, fields ...Field) {
	if globalLogger != nil {
		globalLogger.Error(msg, fields...)
	}
}
