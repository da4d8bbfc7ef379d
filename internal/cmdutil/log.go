// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/charmbracelet/log"

	"motifscan/internal/config"
)

// NewLogger builds the stderr logger for a run. Quiet wins over LogLevel.
func NewLogger(dst io.Writer, s config.Settings) *log.Logger {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		lvl = log.WarnLevel
	}
	if s.Quiet {
		lvl = log.ErrorLevel
	}
	return log.NewWithOptions(dst, log.Options{
		Level:  lvl,
		Prefix: "motifscan",
	})
}
