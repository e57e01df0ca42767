package twfix

import (
	"fmt"
	"os"
)

// Fix loads the target file, runs the rewrite pipeline, and writes the
// result back over the same path. The write happens even when nothing
// matched, so a run with no work to do is a byte-identical rewrite
// rather than a skip; Changed on the result tells the two apart.
func Fix(config Config) (*FixResult, error) {
	path := targetOrDefault(config.TargetFile)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read target file: %w", err)
	}

	content, err := readTarget(path)
	if err != nil {
		return nil, err
	}

	rw := NewRewriter(config.Prefix)
	rewritten, stats := rw.Apply(content)

	if err := writeFileAtomic(path, []byte(rewritten), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("write target file: %w", err)
	}

	return &FixResult{
		TargetFile:        path,
		Changed:           rewritten != content,
		AddCallsFixed:     stats.AddCalls,
		RemoveCallsFixed:  stats.RemoveCalls,
		LiteralsRewritten: stats.LiteralsRewritten,
		TokensPrefixed:    stats.TokensPrefixed,
		TokensKept:        stats.TokensKept,
	}, nil
}

// readTarget reads the whole target file into memory. The files this
// tool rewrites are single generated sources, so no streaming.
func readTarget(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read target file: %w", err)
	}
	return string(data), nil
}

// targetOrDefault resolves an empty target path to the conventional
// location of the generated file.
func targetOrDefault(path string) string {
	if path == "" {
		return DefaultTargetFile
	}
	return path
}
