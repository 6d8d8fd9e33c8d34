package ioalphabet

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// ParseAlphabetError is returned for malformed raw alphabets YAML.
func ParseAlphabetError(source string, err error) error {
	msg := `Cannot parse alphabets <em>%s</em>

The file must contain 'latin_based' and 'others' mappings`
	vars := []any{source}
	return &gn.Error{
		Code: errcode.ParseAlphabetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse alphabets %s: %w", source, err),
	}
}
