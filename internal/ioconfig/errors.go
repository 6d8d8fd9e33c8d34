package ioconfig

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlang/pkg/errcode"
)

// ConfigFileNotFoundError is returned when an explicitly given config file
// does not exist.
func ConfigFileNotFoundError(path string, err error) error {
	msg := "Config file <em>%s</em> does not exist"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ConfigFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("config file not found %s: %w", path, err),
	}
}

// ReadConfigError is returned when a config file cannot be parsed.
func ReadConfigError(path string, err error) error {
	msg := `Cannot read config file <em>%s</em>

<em>How to fix:</em>
  Compare the file with ~/.config/gnlang/config.yaml`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read config %s: %w", path, err),
	}
}
