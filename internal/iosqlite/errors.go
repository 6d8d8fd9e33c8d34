package iosqlite

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// SQLiteExportError is returned when the SQLite snapshot cannot be built.
func SQLiteExportError(path string, err error) error {
	msg := "Cannot export languages to SQLite <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SQLiteExportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("sqlite export %s: %w", path, err),
	}
}
