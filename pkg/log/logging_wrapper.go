package log

import (
	"strings"

	"github.com/tacusci/logging/v2"
)

var Debug = func(format string, a ...interface{}) {
	logging.Debug(format, a...) //nolint
}

var Info = func(format string, a ...interface{}) {
	logging.Info(format, a...) //nolint
}

var Warn = func(format string, a ...interface{}) {
	logging.Warn(format, a...) //nolint
}

var Error = func(format string, a ...interface{}) {
	logging.Error(format, a...) //nolint
}

var Fatal = func(format string, a ...interface{}) {
	logging.Fatal(format, a...) //nolint
}

// SetLevel maps a level name onto the logging level, anything
// unrecognised falls back to warn.
func SetLevel(name string) {
	logging.CallbackLabel = false
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		logging.CurrentLoggingLevel = logging.SilentLevel
	case "info":
		logging.CurrentLoggingLevel = logging.InfoLevel
	case "debug":
		logging.CurrentLoggingLevel = logging.DebugLevel
		logging.CallbackLabel = true
	default:
		logging.CurrentLoggingLevel = logging.WarnLevel
	}
}
