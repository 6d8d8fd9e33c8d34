package iofs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
	"github.com/gnames/gnlang/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies config and log
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	for _, dir := range []string{
		filepath.Join(tmpDir, ".config", "gnlang"),
		filepath.Join(tmpDir, ".local", "share", "gnlang", "logs"),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
	}
}

// TestEnsureDirs_Idempotent verifies repeated calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}
}

// TestTouchDir_ExistingDirectory verifies existing directory
// is not modified.
func TestTouchDir_ExistingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	existingDir := filepath.Join(tmpDir, "existing")
	require.NoError(t, os.MkdirAll(existingDir, 0700))

	err := touchDir(existingDir)
	require.NoError(t, err)

	info, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

// TestTouchDir_FileInTheWay verifies a file blocking the
// directory path results in CreateDirError.
func TestTouchDir_FileInTheWay(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := touchDir(filepath.Join(path, "sub"))
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
	assert.NoDirExists(t, filepath.Join(path, "sub"))
}

// TestMakeDir verifies nested directories are created and a path that
// is a file is rejected.
func TestMakeDir(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "a", "b", "c")

	require.NoError(t, MakeDir(dir))
	assert.DirExists(t, dir)
	require.NoError(t, MakeDir(dir), "existing directory is fine")

	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	for _, path := range []string{file, filepath.Join(file, "sub", "deeper")} {
		err := MakeDir(path)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), path)
		assert.Equal(t, errcode.CreateDirError, gnErr.Code, path)
	}
}

// TestEnsureConfigFile_ContentCorrect verifies config file
// content matches embedded template.
func TestEnsureConfigFile_ContentCorrect(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	err := EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "gnlang", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, templates.ConfigYAML, string(content))
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gnlang", "config.yaml")
	customContent := "# Custom config\noutput:\n  package: mylang\n"
	require.NoError(t, os.WriteFile(configPath, []byte(customContent), 0644))

	require.NoError(t, EnsureConfigFile(tmpDir))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content))
}

// TestReadFile verifies content is returned and missing files
// give ReadFileError.
func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	res, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(res))
	assert.True(t, Exists(path))

	missing := filepath.Join(tmpDir, "missing.txt")
	_, err = ReadFile(missing)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "missing.txt")
	assert.False(t, Exists(missing))
}
