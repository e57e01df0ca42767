package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seblw/twfix"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report pending rewrites without touching the file",
	Long: `Run the rewrite patterns against the target file and report every
change a fix run would make, in golangci-lint format. Mangled classList
calls are errors, unprefixed class tokens are warnings. Exits 1 when the
file still needs fixing, which makes check usable as a CI gate.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.String("output-format", "", "Output format: issues|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (twfix) suffix on issues")
}

func runCheck(args []string) error {
	config := buildCheckConfig(args)

	logger.Debug("checking target", "file", config.TargetFile, "prefix", config.Prefix)

	result, err := twfix.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	logger.Debug("check complete",
		"errors", result.ErrorCount,
		"warnings", result.WarningCount,
		"truncated", result.TruncatedCount)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := twfix.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		twfix.WriteOutput(os.Stdout, result, format, config)
	}

	// Any pending rewrite fails the build
	if !result.Clean() {
		os.Exit(1)
	}

	return nil
}
