// Package config handles converter configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the diagnostics logger of the converter. Debug mode
// enables extended logging, quiet mode limits the output to errors. The
// generated listing never goes through the logger, it is written to the
// output file only.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
