package util

import (
	"log/slog"
	"time"
)

// Trace logs msg at debug level and returns a func that logs the elapsed time.
//
//	defer util.Trace("remove background")()
func Trace(msg string) func() {
	start := time.Now()
	slog.Debug("enter", "op", msg)
	return func() {
		slog.Debug("exit", "op", msg, "elapsed", time.Since(start))
	}
}
