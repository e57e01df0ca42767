package twfix

// Defaults for the fix pipeline. The target file default mirrors the
// build pipeline this tool cleans up after, which always emits to
// src/index.ts.
const (
	// DefaultTargetFile is the file patched when no path is given.
	DefaultTargetFile = "src/index.ts"
	// DefaultPrefix is the namespace prefix applied to class tokens.
	DefaultPrefix = "tw-"
)

// Config holds fix configuration
type Config struct {
	TargetFile string // "src/index.ts"
	Prefix     string // "tw-"
}

// FixResult contains fix pipeline stats
type FixResult struct {
	TargetFile        string
	Changed           bool // false when the rewrite was byte-identical
	AddCallsFixed     int  // classList.tw-add( occurrences repaired
	RemoveCallsFixed  int  // classList.tw-remove( occurrences repaired
	LiteralsRewritten int  // className = "..." literals whose value changed
	TokensPrefixed    int  // class tokens that received the prefix
	TokensKept        int  // class tokens that already carried the prefix
}

// CheckConfig holds check (dry-run) configuration
type CheckConfig struct {
	TargetFile string
	Prefix     string

	// Output configuration, golangci-style
	MaxIssues        int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (twfix) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)
}

// CheckResult contains check analysis results
type CheckResult struct {
	TargetFile     string
	Issues         []Issue // All issues found, in file order
	ErrorCount     int     // Mangled classList calls
	WarningCount   int     // Unprefixed class tokens
	TruncatedCount int     // Issues removed due to MaxIssues
}

// Clean reports whether the target file needs no rewrites.
func (r *CheckResult) Clean() bool {
	return r.ErrorCount == 0 && r.WarningCount == 0
}

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
