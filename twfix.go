// Package twfix repairs Tailwind namespace prefixes in a generated source file.
//
// A namespace prefix like "tw-" keeps generated utility classes from
// colliding with handwritten CSS, but the prefixing step that adds it
// is purely textual and overshoots: it mangles classList.add and
// classList.remove calls into classList.tw-add / classList.tw-remove,
// and it skips the class tokens inside className = "..." assignments
// entirely. twfix runs the three compensating rewrites in one pass.
//
// # Fixing
//
// Rewrite a file in place:
//
//	result, err := twfix.Fix(twfix.Config{
//		TargetFile: "src/index.ts",
//		Prefix:     "tw-",
//	})
//
// The rewrite is idempotent: running Fix on an already fixed file is a
// byte-identical no-op.
//
// # Checking
//
// Report the pending rewrites without touching the file:
//
//	report, err := twfix.Check(twfix.CheckConfig{
//		TargetFile: "src/index.ts",
//	})
//
// # CLI Tool
//
// twfix also provides a CLI tool. Install with:
//
//	go install github.com/seblw/twfix/cmd/twfix@latest
package twfix

// Public API:
// - Fix(config Config) (*FixResult, error)
// - Check(config CheckConfig) (*CheckResult, error)
// - DetermineOutputFormat(requested string, quiet bool) OutputFormat
// - WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig)
