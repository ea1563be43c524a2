package simulation

import (
	"os"

	logging "github.com/op/go-logging"
)

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
)

// NewLogger returns a module-scoped logger at the given level, falling
// back to INFO if level does not parse (matching the pack's own
// logger.NewLogger behavior for an invalid level string).
func NewLogger(level, module string) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logFormat)
	leveled := logging.AddModuleLevel(formatted)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	logging.SetBackend(leveled)

	return logging.MustGetLogger(module)
}
