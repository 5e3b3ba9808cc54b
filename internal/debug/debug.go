package debug

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// logger is a no-op unless MVVM_DEBUG names a writable file.
var logger = zerolog.Nop()

func init() {
	path := os.Getenv("MVVM_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	logger = zerolog.New(f).With().Timestamp().Logger()
}

// Log appends a formatted debug message to the MVVM_DEBUG file.
func Log(format string, args ...any) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}
