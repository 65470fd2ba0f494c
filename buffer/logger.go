package buffer

import (
	"log/slog"

	"github.com/gogpu/tesser"
)

// slogger returns the logger configured with tesser.SetLogger.
func slogger() *slog.Logger { return tesser.Logger() }
