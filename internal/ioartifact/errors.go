package ioartifact

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// FormatSourceError is returned when the formatter rejects generated
// source.
func FormatSourceError(formatter string, err error) error {
	msg := "Formatter <em>%s</em> failed on generated source"
	vars := []any{formatter}
	return &gn.Error{
		Code: errcode.FormatSourceError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("formatter %s: %w", formatter, err),
	}
}

// StaleArtifactError is returned when a file on disk differs from what
// the sources produce.
func StaleArtifactError(path string, total int) error {
	msg := `Artifact <em>%s</em> is out of date (%d stale in total)

<em>How to fix:</em>
  Run 'gnlang generate'`
	vars := []any{path, total}
	return &gn.Error{
		Code: errcode.StaleArtifactError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("stale artifact %s", path),
	}
}
