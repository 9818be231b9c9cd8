package gui

import (
	"log/slog"
	"os"
)

// logLevel gates GUI debug output. It starts at Info, so Debug records are
// dropped until SetVerbose(true).
var logLevel = new(slog.LevelVar)

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose switches GUI debug logging on or off. Call it from main after
// parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
