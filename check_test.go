package twfix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ReportsPendingRewrites(t *testing.T) {
	path := writeTarget(t, "panel.classList.tw-add('open');\nlabel.className = \"badge wide\";\n")

	result, err := Check(CheckConfig{TargetFile: path})
	require.NoError(t, err)

	assert.Equal(t, path, result.TargetFile)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)
	assert.Zero(t, result.TruncatedCount)
	assert.False(t, result.Clean())

	require.Len(t, result.Issues, 3)

	mangled := result.Issues[0]
	assert.Equal(t, "twfix", mangled.FromLinter)
	assert.Equal(t, SeverityError, mangled.Severity)
	assert.Equal(t, `mangled classList call "classList.tw-add(" should be "classList.add("`, mangled.Text)
	assert.Equal(t, path, mangled.Pos.Filename)
	assert.Equal(t, 1, mangled.Pos.Line)
	assert.Equal(t, 7, mangled.Pos.Column) // Position of 'c' in "classList"
	require.Len(t, mangled.SourceLines, 1)
	assert.Equal(t, "panel.classList.tw-add('open');", mangled.SourceLines[0])

	badge := result.Issues[1]
	assert.Equal(t, SeverityWarning, badge.Severity)
	assert.Equal(t, `class token "badge" is missing the "tw-" namespace prefix`, badge.Text)
	assert.Equal(t, 2, badge.Pos.Line)
	assert.Equal(t, 20, badge.Pos.Column) // Position of 'b' in "badge"

	wide := result.Issues[2]
	assert.Equal(t, SeverityWarning, wide.Severity)
	assert.Equal(t, `class token "wide" is missing the "tw-" namespace prefix`, wide.Text)
	assert.Equal(t, 2, wide.Pos.Line)
	assert.Equal(t, 26, wide.Pos.Column)
}

func TestCheck_CleanFile(t *testing.T) {
	path := writeTarget(t, "panel.classList.add('open');\nlabel.className = \"tw-badge tw-wide\";\n")

	result, err := Check(CheckConfig{TargetFile: path})
	require.NoError(t, err)

	assert.Empty(t, result.Issues)
	assert.Zero(t, result.ErrorCount)
	assert.Zero(t, result.WarningCount)
	assert.True(t, result.Clean())
}

func TestCheck_MaxIssuesTruncates(t *testing.T) {
	path := writeTarget(t, "panel.classList.tw-add('open');\nlabel.className = \"badge wide\";\n")

	result, err := Check(CheckConfig{TargetFile: path, MaxIssues: 1})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, 2, result.TruncatedCount)

	// Severity counts cover all findings, not just the shown ones
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)
	assert.False(t, result.Clean())
}

func TestCheck_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ts")

	_, err := Check(CheckConfig{TargetFile: path})
	require.Error(t, err)
	assert.ErrorContains(t, err, "read target file")
}

func TestCheck_DoesNotModifyFile(t *testing.T) {
	content := "el.classList.tw-add('a');\n"
	path := writeTarget(t, content)

	_, err := Check(CheckConfig{TargetFile: path})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestScanIssues_SortedByPosition(t *testing.T) {
	rw := NewRewriter("tw-")

	// The warning appears before the error in the file; the report
	// must follow file order, not severity order.
	content := "a.className = \"x\";\nb.classList.tw-add('y');\n"
	issues := rw.scanIssues(content, "src/index.ts")

	require.Len(t, issues, 2)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, 1, issues[0].Pos.Line)
	assert.Equal(t, SeverityError, issues[1].Severity)
	assert.Equal(t, 2, issues[1].Pos.Line)
}

func TestFieldSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []fieldSpan
	}{
		{
			name:  "two tokens",
			input: "a b",
			want:  []fieldSpan{{0, 1}, {2, 3}},
		},
		{
			name:  "leading whitespace",
			input: "  lead",
			want:  []fieldSpan{{2, 6}},
		},
		{
			name:  "trailing whitespace",
			input: "trail  ",
			want:  []fieldSpan{{0, 5}},
		},
		{
			name:  "tabs and newlines as separators",
			input: "a\tb\nc",
			want:  []fieldSpan{{0, 1}, {2, 3}, {4, 5}},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fieldSpans(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionAt(t *testing.T) {
	content := "ab\ncd\n\nef"

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{"start of content", 0, 1, 1},
		{"second byte of first line", 1, 1, 2},
		{"start of second line", 3, 2, 1},
		{"second byte of second line", 4, 2, 2},
		{"empty line", 6, 3, 1},
		{"after empty line", 7, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := positionAt(content, tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestLineAt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offset  int
		want    string
	}{
		{"single line", "hello", 2, "hello"},
		{"first line", "ab\ncd", 0, "ab"},
		{"second line", "ab\ncd", 3, "cd"},
		{"trailing newline", "ab\ncd\n", 3, "cd"},
		{"carriage return stripped", "ab\r\ncd", 0, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineAt(tt.content, tt.offset))
		})
	}
}

func TestLimitIssues(t *testing.T) {
	issues := make([]Issue, 5)

	kept, truncated := limitIssues(issues, 2)
	assert.Len(t, kept, 2)
	assert.Equal(t, 3, truncated)

	kept, truncated = limitIssues(issues, 0)
	assert.Len(t, kept, 5)
	assert.Zero(t, truncated)

	kept, truncated = limitIssues(issues, 10)
	assert.Len(t, kept, 5)
	assert.Zero(t, truncated)
}
