package ioartifact_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/internal/ioartifact"
	"github.com/gnames/gnlang/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	ee, err := os.ReadDir(dir)
	require.NoError(t, err)
	var res []string
	for _, e := range ee {
		res = append(res, e.Name())
	}
	return res
}

func TestStageCommit(t *testing.T) {
	dir := t.TempDir()
	same := filepath.Join(dir, "same.txt")
	require.NoError(t, os.WriteFile(same, []byte("same"), 0644))
	old := filepath.Join(dir, "old.txt")
	require.NoError(t, os.WriteFile(old, []byte("old"), 0644))
	deep := filepath.Join(dir, "lang", "lang_gen.go")

	s := ioartifact.NewStage()
	for _, a := range []ioartifact.Artifact{
		{Path: same, Content: []byte("same")},
		{Path: old, Content: []byte("new")},
		{Path: deep, Content: []byte("package lang\n")},
	} {
		_, err := s.Add(a)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{old, deep}, s.Paths())
	assert.Equal(t, []string{same}, s.Unchanged())

	// targets are untouched until commit
	content, err := os.ReadFile(old)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	require.NoError(t, s.Commit())

	content, err = os.ReadFile(old)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
	content, err = os.ReadFile(deep)
	require.NoError(t, err)
	assert.Equal(t, "package lang\n", string(content))

	info, err := os.Stat(deep)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	assert.ElementsMatch(t, []string{"lang", "old.txt", "same.txt"}, listDir(t, dir))
}

func TestStageDiscard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	s := ioartifact.NewStage()
	changed, err := s.Add(ioartifact.Artifact{Path: path, Content: []byte("new")})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, listDir(t, dir), 2)

	s.Discard()
	assert.Equal(t, []string{"README.md"}, listDir(t, dir))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	// nothing left to commit
	require.NoError(t, s.Commit())
}

func TestStageTempPathBlocked(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "lang")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	s := ioartifact.NewStage()
	_, err := s.TempPath(filepath.Join(file, "lang_gen.go"))
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
	assert.Equal(t, []string{"lang"}, listDir(t, dir))
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	fresh := filepath.Join(dir, "fresh.txt")
	require.NoError(t, os.WriteFile(fresh, []byte("ok"), 0644))
	stale := filepath.Join(dir, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))
	missing := filepath.Join(dir, "missing.txt")

	res, err := ioartifact.Stale([]ioartifact.Artifact{
		{Path: fresh, Content: []byte("ok")},
		{Path: stale, Content: []byte("new")},
		{Path: missing, Content: []byte("new")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{stale, missing}, res)

	err = ioartifact.StaleArtifactError(stale, 2)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.StaleArtifactError, gnErr.Code)
}

func TestGoFormatter(t *testing.T) {
	f := ioartifact.NewFormatter("")
	res, err := f.Format(context.Background(), []byte("package lang\nvar  X=1"))
	require.NoError(t, err)
	assert.Equal(t, "package lang\n\nvar X = 1\n", string(res))

	_, err = f.Format(context.Background(), []byte("package lang\nvar {"))
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.FormatSourceError, gnErr.Code)
}

func TestExecFormatter(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat is not available")
	}
	f := ioartifact.NewFormatter("cat -")
	assert.Equal(t, ioartifact.ExecFormatter{Name: "cat", Args: []string{"-"}}, f)

	res, err := f.Format(context.Background(), []byte("package lang\n"))
	require.NoError(t, err)
	assert.Equal(t, "package lang\n", string(res))

	f = ioartifact.NewFormatter("gnlang-no-such-formatter")
	_, err = f.Format(context.Background(), []byte("package lang\n"))
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.FormatSourceError, gnErr.Code)
}
