package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger writes diagnostics to stderr so stdout stays reserved for the
// fix confirmation line and check reports.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// configureLogger applies the resolved verbosity. Called after koanf
// has merged flags, env vars, and the config file.
func configureLogger() {
	if getBoolWithFallback("verbose", "verbose", false) {
		logger.SetLevel(log.DebugLevel)
		return
	}
	logger.SetLevel(log.WarnLevel)
}
