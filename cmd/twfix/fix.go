package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seblw/twfix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [file]",
	Short: "Rewrite the target file in place",
	Long: `Apply the three rewrite passes to the target file and write the result
back atomically. The passes run in a fixed order: repair classList.tw-add(
calls, repair classList.tw-remove( calls, then prefix every class token
inside className = "..." assignments. Running fix twice is a no-op.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runFix(args)
	},
}

// runFix is shared between `twfix` and `twfix fix`.
func runFix(args []string) error {
	config := buildFixConfig(args)

	logger.Debug("fixing target", "file", config.TargetFile, "prefix", config.Prefix)

	result, err := twfix.Fix(config)
	if err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}

	logger.Debug("rewrite complete",
		"changed", result.Changed,
		"add_calls", result.AddCallsFixed,
		"remove_calls", result.RemoveCallsFixed,
		"literals", result.LiteralsRewritten,
		"tokens_prefixed", result.TokensPrefixed,
		"tokens_kept", result.TokensKept)

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Println("✓ Fixed Tailwind prefixes")
	}

	return nil
}
