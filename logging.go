package moqsub

import (
	"log/slog"
	"os"
)

const componentKey = "component"

func init() {
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     nil,
	})
	defaultLogger = slog.New(h)
}

var defaultLogger *slog.Logger

// SetLogHandler replaces the handler used by all loggers created after the
// call.
func SetLogHandler(handler slog.Handler) {
	defaultLogger = slog.New(handler)
}

// componentLogger tags a logger with the engine component it belongs to.
func componentLogger(parent *slog.Logger, component string) *slog.Logger {
	return parent.With(componentKey, component)
}
