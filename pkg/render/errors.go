package render

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// RenderError creates an error for a failed template execution.
func RenderError(artifact string, err error) error {
	msg := "Cannot render <em>%s</em>"
	vars := []any{artifact}
	return &gn.Error{
		Code: errcode.RenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot render %s: %w", artifact, err),
	}
}
