package utils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Diagnostics go to stderr so they never interleave with the status
// lines the load cycle writes to stdout.
var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetDebug enables or disables debug-level log output.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// LogMessage logs a diagnostic message; debug messages are suppressed
// unless debug logging is enabled.
func LogMessage(message string, debug bool) {
	if debug {
		logger.Debug(message)
	} else {
		logger.Info(message)
	}
}

// FormatSize converts bytes to a human-readable string (KB, MB, GB).
func FormatSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	if size >= GB {
		return fmt.Sprintf("%.2fGB", float64(size)/float64(GB))
	}
	if size >= MB {
		return fmt.Sprintf("%.2fMB", float64(size)/float64(MB))
	}
	if size >= KB {
		return fmt.Sprintf("%.2fKB", float64(size)/float64(KB))
	}

	return fmt.Sprintf("%dB", size)
}
