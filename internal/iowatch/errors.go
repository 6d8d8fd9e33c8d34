package iowatch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// WatchError is returned when file watching cannot start.
func WatchError(dir string, err error) error {
	msg := "Cannot watch <em>%s</em> for changes"
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.WatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("watch %s: %w", dir, err),
	}
}
