package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twfix.yaml config file",
	Long:  `Create a .twfix.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twfix.yaml"); err == nil && !force {
			return fmt.Errorf(".twfix.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twfix.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .twfix.yaml")
		return nil
	},
}

const defaultConfig = `# twfix configuration
# Docs: https://github.com/seblw/twfix

# Shared settings
file: src/index.ts
prefix: tw-
verbose: false

# Check settings
check:
  output-format: issues    # issues | json
  max-issues: 0            # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
