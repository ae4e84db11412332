package runtime

import (
	"log/slog"
	"os"
)

// logLevel controls runtime debug logging. The default, LevelInfo,
// suppresses Debug records.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the runtime and the
// widgets built on it. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Verbose reports whether debug logging is enabled.
func Verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// defaultLogger writes to stderr. Terminal apps should redirect it with
// AppConfig.Logger, since stderr shares the screen.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Logger returns the shared runtime logger.
func Logger() *slog.Logger {
	return defaultLogger
}

// NewFileLogger opens path for appending and returns a logger that honors
// SetVerbose. The caller closes the returned file.
func NewFileLogger(path string) (*slog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel})), f, nil
}
