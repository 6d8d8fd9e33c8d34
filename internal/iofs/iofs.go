// Package iofs manages gnlang directories and files in the user home.
package iofs

import (
	"fmt"
	"os"

	"github.com/gnames/gnlang/pkg/config"
	"github.com/gnames/gnlang/pkg/templates"
	"github.com/gnames/gnsys"
)

// EnsureDirs creates config and log directories if they do not exist.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}
	return MakeDir(dir)
}

// MakeDir creates dir with its parents. It fails if dir does not end up
// being a directory, for example when a file blocks one of its parents.
func MakeDir(dir string) error {
	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return CreateDirError(dir, err)
	}
	if !info.IsDir() {
		return CreateDirError(dir, fmt.Errorf("%s is not a directory", dir))
	}
	return nil
}

// EnsureConfigFile writes the reference config.yaml into the config
// directory. An existing file is never overwritten.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ReadFile reads the whole file and wraps a failure into ReadFileError.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// Exists returns true if path points to an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
