// Package ioartifact writes generated artifacts.
//
// Artifacts are first staged into temporary files next to their targets.
// When every artifact is staged, Commit renames temporary files over the
// targets. Discard removes staged files leaving targets untouched.
package ioartifact

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnlang/internal/iofs"
)

// Artifact is the complete content of a generated file.
type Artifact struct {
	Path    string
	Content []byte
}

type staged struct {
	tmp  string
	path string
}

// Stage keeps staged artifacts until they are committed or discarded.
type Stage struct {
	files     []staged
	unchanged []string
}

// NewStage creates an empty Stage.
func NewStage() *Stage {
	return &Stage{}
}

// Add stages an artifact. If the target already has the same content,
// nothing is staged and false is returned.
func (s *Stage) Add(a Artifact) (bool, error) {
	same, err := sameContent(a)
	if err != nil {
		return false, err
	}
	if same {
		s.unchanged = append(s.unchanged, a.Path)
		return false, nil
	}

	tmp, err := s.TempPath(a.Path)
	if err != nil {
		return false, err
	}
	if err = os.WriteFile(tmp, a.Content, 0644); err != nil {
		return false, iofs.WriteFileError(tmp, err)
	}
	s.Attach(a.Path, tmp)
	return true, nil
}

// TempPath reserves an empty temporary file in the directory of path.
// The caller fills it and then registers it with Attach.
func (s *Stage) TempPath(path string) (string, error) {
	dir := filepath.Dir(path)
	if err := iofs.MakeDir(dir); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", iofs.WriteFileError(path, err)
	}
	tmp := f.Name()
	if err = f.Close(); err == nil {
		err = os.Chmod(tmp, 0644)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", iofs.WriteFileError(tmp, err)
	}
	return tmp, nil
}

// Attach registers a filled temporary file as the new content of path.
func (s *Stage) Attach(path, tmp string) {
	s.files = append(s.files, staged{tmp: tmp, path: path})
}

// Paths returns targets of staged artifacts in the order of staging.
func (s *Stage) Paths() []string {
	res := make([]string, len(s.files))
	for i, v := range s.files {
		res[i] = v.path
	}
	return res
}

// Unchanged returns targets that already had the right content.
func (s *Stage) Unchanged() []string {
	return s.unchanged
}

// Commit renames staged files over their targets. If a rename fails,
// the remaining staged files are discarded.
func (s *Stage) Commit() error {
	for i, v := range s.files {
		if err := os.Rename(v.tmp, v.path); err != nil {
			s.files = s.files[i:]
			s.Discard()
			return iofs.WriteFileError(v.path, err)
		}
		slog.Debug("Artifact written", "path", v.path)
	}
	s.files = nil
	return nil
}

// Discard removes all staged files.
func (s *Stage) Discard() {
	for _, v := range s.files {
		if err := os.Remove(v.tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Cannot remove temporary file", "path", v.tmp, "error", err)
		}
	}
	s.files = nil
}

// Stale returns paths of artifacts that differ from files on disk.
// A missing file is stale.
func Stale(aa []Artifact) ([]string, error) {
	var res []string
	for _, a := range aa {
		same, err := sameContent(a)
		if err != nil {
			return nil, err
		}
		if !same {
			res = append(res, a.Path)
		}
	}
	return res, nil
}

func sameContent(a Artifact) (bool, error) {
	old, err := os.ReadFile(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, iofs.ReadFileError(a.Path, err)
	}
	return bytes.Equal(old, a.Content), nil
}
