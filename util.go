package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "riddlegrid",
})

// setLogLevel applies a level name such as "debug" or "warn".
func setLogLevel(name string) {
	if name == "" {
		return
	}
	lvl, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		logWarn("Unknown log level %q, keeping %s", name, logger.GetLevel())
		return
	}
	logger.SetLevel(lvl)
}

// dirExists returns true if the given path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logWarn("Error checking directory existence: %v", err)
		}
		return false
	}
	return info.IsDir()
}

// formatUptime returns a human-readable string for a duration.
func formatUptime(d time.Duration) string {
	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())
	switch {
	case hours > 0:
		return fmt.Sprintf("%d hour%s, %d minute%s, %d second%s",
			hours, plural(hours),
			minutes, plural(minutes),
			seconds, plural(seconds))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s, %d second%s",
			minutes, plural(minutes),
			seconds, plural(seconds))
	default:
		return fmt.Sprintf("%d second%s", seconds, plural(seconds))
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func logDebug(format string, v ...any) {
	logger.Debugf(format, v...)
}

func logInfo(format string, v ...any) {
	logger.Infof(format, v...)
}

func logWarn(format string, v ...any) {
	logger.Warnf(format, v...)
}

func logFatal(format string, v ...any) {
	logger.Fatalf(format, v...)
}
