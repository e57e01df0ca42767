package twfix

// linterName tags every issue this tool emits.
const linterName = "twfix"

// Issue represents a single pending rewrite in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "twfix"
	Text        string   `json:"Text"`        // "mangled classList call \"classList.tw-add(\" ..."
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/index.ts"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the match)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats matching the two rewrite categories
const (
	IssueMangledCall     = "mangled classList call %q should be %q"
	IssueUnprefixedClass = "class token %q is missing the %q namespace prefix"
)
