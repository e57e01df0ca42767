package main

import (
	"github.com/spf13/cobra"

	"github.com/seblw/twfix"
)

var rootCmd = &cobra.Command{
	Use:   "twfix [file]",
	Short: "Repair Tailwind namespace prefixes in a generated source file",
	Long: `Fix the two kinds of damage a textual prefixing step leaves behind:
mangled classList.tw-add( / classList.tw-remove( calls are restored to
the real DOM methods, and every class token inside className = "..."
assignments receives the tw- prefix.`,
	Args: cobra.MaximumNArgs(1),
	// Default behavior: run fix when no subcommand is given.
	// We must call loadConfig here because PreRunE of fixCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runFix(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("prefix", twfix.DefaultPrefix, "Namespace prefix for class tokens")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".twfix.yaml", "Config file path")

	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
