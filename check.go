package twfix

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Check runs the rewrite patterns against the target file without
// modifying it and reports every change a Fix run would make as an
// issue. A clean result means the file is already in fixed form.
func Check(config CheckConfig) (*CheckResult, error) {
	path := targetOrDefault(config.TargetFile)

	content, err := readTarget(path)
	if err != nil {
		return nil, err
	}

	rw := NewRewriter(config.Prefix)

	result := &CheckResult{
		TargetFile: path,
		Issues:     rw.scanIssues(content, path),
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	if config.MaxIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config.MaxIssues)
	}

	return result, nil
}

// scanIssues reports every change Apply would make to content, sorted
// by position. Mangled classList calls are errors since the browser
// API they target does not exist under the mangled name; unprefixed
// class tokens are warnings. Positions are 1-based line and column in
// the unmodified text.
func (rw *Rewriter) scanIssues(content, filename string) []Issue {
	var issues []Issue

	for _, loc := range rw.mangledAdd.FindAllStringIndex(content, -1) {
		issues = append(issues, rw.mangledCallIssue(content, filename, loc, classListAdd))
	}
	for _, loc := range rw.mangledRemove.FindAllStringIndex(content, -1) {
		issues = append(issues, rw.mangledCallIssue(content, filename, loc, classListRemove))
	}

	for _, match := range rw.classNames.FindAllStringSubmatchIndex(content, -1) {
		// match[2]:match[3] spans the captured class string.
		value := content[match[2]:match[3]]

		for _, span := range fieldSpans(value) {
			token := value[span.start:span.end]
			if strings.HasPrefix(token, rw.prefix) {
				continue
			}

			offset := match[2] + span.start
			line, column := positionAt(content, offset)
			issues = append(issues, Issue{
				FromLinter:  linterName,
				Text:        fmt.Sprintf(IssueUnprefixedClass, token, rw.prefix),
				Severity:    SeverityWarning,
				SourceLines: []string{lineAt(content, offset)},
				Pos: IssuePos{
					Filename: filename,
					Line:     line,
					Column:   column,
				},
			})
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	return issues
}

// mangledCallIssue builds the error issue for one mangled call match.
func (rw *Rewriter) mangledCallIssue(content, filename string, loc []int, fixed string) Issue {
	line, column := positionAt(content, loc[0])
	return Issue{
		FromLinter:  linterName,
		Text:        fmt.Sprintf(IssueMangledCall, content[loc[0]:loc[1]], fixed),
		Severity:    SeverityError,
		SourceLines: []string{lineAt(content, loc[0])},
		Pos: IssuePos{
			Filename: filename,
			Line:     line,
			Column:   column,
		},
	}
}

// fieldSpan is the byte range of one whitespace-separated token.
type fieldSpan struct {
	start, end int
}

// fieldSpans returns the byte ranges of the tokens strings.Fields
// would produce, so issue columns line up with the exact characters
// the rewrite pass would touch.
func fieldSpans(s string) []fieldSpan {
	var spans []fieldSpan

	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, fieldSpan{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, fieldSpan{start, len(s)})
	}

	return spans
}

// positionAt converts a byte offset into a 1-based line and column.
func positionAt(content string, offset int) (line, column int) {
	before := content[:offset]
	line = 1 + strings.Count(before, "\n")

	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		column = offset - idx
	} else {
		column = offset + 1
	}

	return line, column
}

// lineAt returns the text of the line containing offset, without the
// line terminator.
func lineAt(content string, offset int) string {
	start := 0
	if idx := strings.LastIndexByte(content[:offset], '\n'); idx >= 0 {
		start = idx + 1
	}

	end := len(content)
	if idx := strings.IndexByte(content[offset:], '\n'); idx >= 0 {
		end = offset + idx
	}

	return strings.TrimSuffix(content[start:end], "\r")
}

// limitIssues truncates the issue list to max entries and reports how
// many were dropped.
func limitIssues(issues []Issue, max int) ([]Issue, int) {
	if max <= 0 || len(issues) <= max {
		return issues, 0
	}
	return issues[:max], len(issues) - max
}
