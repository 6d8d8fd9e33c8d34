package ioregistry

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// ParseRegistryError is returned for a malformed registry CSV.
func ParseRegistryError(source string, err error) error {
	msg := "Cannot parse language registry <em>%s</em>"
	vars := []any{source}
	return &gn.Error{
		Code: errcode.ParseRegistryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse registry %s: %w", source, err),
	}
}

// MissingFieldError is returned for a registry row that has a code but
// lacks a required field.
func MissingFieldError(source string, row int, field string) error {
	msg := `Row %d of <em>%s</em> has no <em>%s</em>

<em>How to fix:</em>
  Fill in the field or remove the language code from the row`
	vars := []any{row, source, field}
	return &gn.Error{
		Code: errcode.MissingFieldError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%s: row %d: missing required field %s",
			source, row, field),
	}
}
