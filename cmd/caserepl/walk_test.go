package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/twinfer/caserepl"
)

func newTestLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	return logger.Sugar()
}

func TestApplyTreeRewritesMatchingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/main.go", []byte("var fooBar = 1"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/readme.md", []byte("fooBar is here too"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/sub/nested.go", []byte("fooBar again"), 0o644))

	r := caserepl.New()
	require.NoError(t, r.AddReplacement("foo bar", "baz qux", caserepl.PreserveCase, false))

	opts := runOptions{recursive: true, renameFiles: true, extensions: []string{"*.go"}}
	result, err := applyTree(fs, "/repo", r, opts, newTestLogger(t))
	require.NoError(t, err)

	require.Equal(t, 2, result.filesScanned)
	require.Equal(t, 2, result.filesChanged)

	got, err := afero.ReadFile(fs, "/repo/main.go")
	require.NoError(t, err)
	require.Equal(t, "var bazQux = 1", string(got))

	unchanged, err := afero.ReadFile(fs, "/repo/readme.md")
	require.NoError(t, err)
	require.Equal(t, "fooBar is here too", string(unchanged))
}

func TestApplyTreeNonRecursiveSkipsSubdirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/top.go", []byte("fooBar"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/repo/sub/nested.go", []byte("fooBar"), 0o644))

	r := caserepl.New()
	require.NoError(t, r.AddReplacement("foo bar", "baz qux", caserepl.PreserveCase, false))

	opts := runOptions{recursive: false, extensions: []string{"*.go"}}
	result, err := applyTree(fs, "/repo", r, opts, newTestLogger(t))
	require.NoError(t, err)
	require.Equal(t, 1, result.filesScanned)
}

func TestApplyTreeDryRunLeavesFilesUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/main.go", []byte("fooBar"), 0o644))

	r := caserepl.New()
	require.NoError(t, r.AddReplacement("foo bar", "baz qux", caserepl.PreserveCase, false))

	opts := runOptions{recursive: true, dryRun: true, extensions: []string{"*.go"}}
	result, err := applyTree(fs, "/repo", r, opts, newTestLogger(t))
	require.NoError(t, err)
	require.Equal(t, 1, result.filesChanged)

	got, err := afero.ReadFile(fs, "/repo/main.go")
	require.NoError(t, err)
	require.Equal(t, "fooBar", string(got))
}

func TestApplyTreeRenamesFilesWhenEnabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/repo/fooBar.go", []byte("package repo"), 0o644))

	r := caserepl.New()
	require.NoError(t, r.AddReplacement("foo bar", "baz qux", caserepl.PreserveCase, false))

	opts := runOptions{recursive: true, renameFiles: true, extensions: []string{"*.go"}}
	result, err := applyTree(fs, "/repo", r, opts, newTestLogger(t))
	require.NoError(t, err)
	require.Equal(t, 1, result.filesRenamed)

	exists, err := afero.Exists(fs, "/repo/bazQux.go")
	require.NoError(t, err)
	require.True(t, exists)
}
