package twfix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.ts")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFix_RewritesFileInPlace(t *testing.T) {
	path := writeTarget(t, `toggle.classList.tw-add('visible');
toggle.classList.tw-remove("hidden");
label.className = "badge badge-small";
`)

	result, err := Fix(Config{TargetFile: path})
	require.NoError(t, err)

	assert.Equal(t, path, result.TargetFile)
	assert.True(t, result.Changed)
	assert.Equal(t, 1, result.AddCallsFixed)
	assert.Equal(t, 1, result.RemoveCallsFixed)
	assert.Equal(t, 1, result.LiteralsRewritten)
	assert.Equal(t, 2, result.TokensPrefixed)
	assert.Equal(t, 0, result.TokensKept)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `toggle.classList.add('visible');
toggle.classList.remove("hidden");
label.className = "tw-badge tw-badge-small";
`, string(data))
}

func TestFix_Idempotent(t *testing.T) {
	path := writeTarget(t, `el.classList.tw-add('a');
el.className = "one two";
`)

	first, err := Fix(Config{TargetFile: path})
	require.NoError(t, err)
	require.True(t, first.Changed)

	afterFirst, err := os.ReadFile(path)
	require.NoError(t, err)

	second, err := Fix(Config{TargetFile: path})
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Zero(t, second.TokensPrefixed)
	assert.Equal(t, 2, second.TokensKept)

	afterSecond, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, afterFirst, afterSecond)
}

func TestFix_NoMatchesLeavesContentIdentical(t *testing.T) {
	content := `export function mount() {
	return document.querySelector('#app');
}
`
	path := writeTarget(t, content)

	result, err := Fix(Config{TargetFile: path})
	require.NoError(t, err)
	assert.False(t, result.Changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestFix_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ts")

	_, err := Fix(Config{TargetFile: path})
	require.Error(t, err)
	assert.ErrorContains(t, err, "read target file")

	// A failed run must not create the target
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFix_PreservesFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.ts")
	require.NoError(t, os.WriteFile(path, []byte(`el.classList.tw-add('a');`), 0755))

	_, err := Fix(Config{TargetFile: path})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestFix_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.ts")
	require.NoError(t, os.WriteFile(path, []byte(`el.className = "btn";`), 0644))

	_, err := Fix(Config{TargetFile: path})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.ts", entries[0].Name())
}

func TestFix_DefaultTargetFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.MkdirAll("src", 0755))
	require.NoError(t, os.WriteFile("src/index.ts", []byte(`el.className = "btn";`), 0644))

	result, err := Fix(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTargetFile, result.TargetFile)

	data, err := os.ReadFile("src/index.ts")
	require.NoError(t, err)
	assert.Equal(t, `el.className = "tw-btn";`, string(data))
}

func TestFix_CustomPrefix(t *testing.T) {
	path := writeTarget(t, `el.classList.app-add('x');
el.className = "btn app-done";
`)

	result, err := Fix(Config{TargetFile: path, Prefix: "app-"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AddCallsFixed)
	assert.Equal(t, 1, result.TokensPrefixed)
	assert.Equal(t, 1, result.TokensKept)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `el.classList.add('x');
el.className = "app-btn app-done";
`, string(data))
}
