package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/seblw/twfix"
)

var k = koanf.New(".")

// checkFlagKeys maps the check command's local flag names onto their
// nested config file keys. posflag skips an unset flag only when its
// key already exists in koanf, so flag and file values must meet under
// the same key or the flag's default shadows the file.
var checkFlagKeys = map[string]string{
	"output-format":     "check.output-format",
	"max-issues":        "check.max-issues",
	"print-lines":       "check.print-lines",
	"print-linter-name": "check.print-linter-name",
}

// flagConfigKey resolves a flag name to the koanf key it merges under.
func flagConfigKey(name string) string {
	if key, ok := checkFlagKeys[name]; ok {
		return key
	}
	return name
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".twfix.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	// Merge flags from the specific command and its parent (root) flags,
	// with check-local flags merged under their nested config keys.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return flagConfigKey(f.Name), posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	configureLogger()

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWFIX_* prefix)
	if err := k.Load(env.Provider("TWFIX_", ".", func(s string) string {
		// TWFIX_FILE -> file
		// TWFIX_PREFIX -> prefix
		// TWFIX_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TWFIX_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildFixConfig constructs the library's Config struct from koanf state
// and the optional positional argument.
func buildFixConfig(args []string) twfix.Config {
	return twfix.Config{
		TargetFile: targetFile(args),
		Prefix:     getStringWithFallback("prefix", "prefix", twfix.DefaultPrefix),
	}
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf
// state and the optional positional argument.
func buildCheckConfig(args []string) twfix.CheckConfig {
	return twfix.CheckConfig{
		TargetFile:       targetFile(args),
		Prefix:           getStringWithFallback("prefix", "prefix", twfix.DefaultPrefix),
		MaxIssues:        getIntWithFallback("max-issues", "check.max-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// targetFile resolves the target path: positional argument first, then
// the file config key, then the conventional generated-file location.
func targetFile(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return getStringWithFallback("file", "file", twfix.DefaultTargetFile)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
