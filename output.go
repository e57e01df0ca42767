package twfix

import (
	"io"
	"os"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit --quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, will be suppressed by the caller
	}

	// Explicit format flag wins
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "json":
		return OutputJSON
	}

	// Default follows golangci-lint's UX: issues only (clean, fast, consistent everywhere)
	return OutputIssues
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		// Issues in golangci-lint format
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
}
